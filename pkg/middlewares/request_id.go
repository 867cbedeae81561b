package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader는 요청 ID를 주고받는 헤더 이름입니다
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey는 fiber Locals에 저장되는 요청 ID 키입니다
	RequestIDKey = "requestid"
)

// RequestID는 요청마다 ID를 부여하고 응답 헤더에 담습니다.
// 클라이언트가 보낸 ID가 있으면 그대로 사용합니다.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDHeader, id)
		c.Locals(RequestIDKey, id)

		return c.Next()
	}
}

// GetRequestID는 현재 요청의 ID를 반환합니다
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
