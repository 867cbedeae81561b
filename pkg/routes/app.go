package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	controller "github.com/sh5080/emotion-tips-go/pkg/controllers"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
)

// SetupAppRoutes는 애플리케이션 관련 라우트를 설정합니다
func SetupAppRoutes(app *fiber.App, config *configs.EnvConfig, services *_interface.ServiceContainer, isServerless bool) {
	// 상태 확인 API
	app.Get("/health", controller.Health(config.Server.AppName, services.ServerStatusService))
	app.Get("/status", controller.Status(services.ServerStatusService))

	// 서버리스 환경에서는 인스턴스별 스크랩이 의미가 없으므로 메트릭 API를 노출하지 않음
	if !isServerless {
		app.Get("/metrics", controller.Metrics())
	}
}
