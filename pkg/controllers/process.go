package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	middleware "github.com/sh5080/emotion-tips-go/pkg/middlewares"
	responseDto "github.com/sh5080/emotion-tips-go/pkg/types/dtos/responses"
	model "github.com/sh5080/emotion-tips-go/pkg/types/models"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// Process는 입력 텍스트의 감정을 분석하고 추천 검색 결과를 반환하는 핸들러입니다
func Process(processService _interface.ProcessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := utils.ParseProcessInput(c.Body())
		if err != nil {
			return errorResponse(c, err)
		}

		result, err := processService.Process(c.UserContext(), input)
		if err != nil {
			return errorResponse(c, err)
		}

		return c.JSON(responseDto.Process{
			Emotion: string(result.Emotion),
			Tips:    result.Tips,
		})
	}
}

// errorResponse는 에러 종류에 맞는 상태 코드와 공개 메시지로 응답합니다.
// 내부 원인은 로그에만 남깁니다.
func errorResponse(c *fiber.Ctx, err error) error {
	status := model.StatusCode(err)
	if status >= http.StatusInternalServerError {
		utils.Error("process", "요청 처리 실패 (request=%s): %v", middleware.GetRequestID(c), err)
	} else {
		utils.Debug("process", "요청 거부 (request=%s, status=%d): %v", middleware.GetRequestID(c), status, err)
	}

	return c.Status(status).JSON(responseDto.Error{Error: model.PublicMessage(err)})
}
