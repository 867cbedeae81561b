package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, config *configs.EnvConfig, services *_interface.ServiceContainer, isServerless bool) {
	SetupProcessRoutes("/process", app, services)
	SetupAppRoutes(app, config, services, isServerless)
}
