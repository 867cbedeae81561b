package routes

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/emotion-tips-go/pkg/controllers"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
)

// SetupProcessRoutes는 감정 분석 라우트를 설정합니다
func SetupProcessRoutes(endpoint string, router fiber.Router, services *_interface.ServiceContainer) {
	router.Post(endpoint, controller.Process(services.ProcessService))
}
