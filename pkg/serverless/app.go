package serverless

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	middleware "github.com/sh5080/emotion-tips-go/pkg/middlewares"
	route "github.com/sh5080/emotion-tips-go/pkg/routes"
	service "github.com/sh5080/emotion-tips-go/pkg/services"
	constants "github.com/sh5080/emotion-tips-go/pkg/types"
	responseDto "github.com/sh5080/emotion-tips-go/pkg/types/dtos/responses"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// NewApp은 미들웨어와 라우트가 설정된 fiber 앱을 생성합니다.
// isServerless가 false일 때만 Prometheus 요청 메트릭을 수집합니다.
func NewApp(config *configs.EnvConfig, services *_interface.ServiceContainer, isServerless bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		DisableStartupMessage: isServerless, // 서버리스 환경에서는 시작 메시지 비활성화
		ErrorHandler:          ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
	}))
	app.Use(cors.New())
	if !isServerless {
		app.Use(middleware.Prometheus(config.Server.AppName))
	}

	route.SetupRoutes(app, config, services, isServerless)

	return app
}

// ErrorHandler는 핸들러가 직접 응답하지 못한 에러를 {"error": ...} 형태로 변환합니다.
// fiber.Error(404, 405 등)는 메시지를 그대로 쓰고 그 외에는 내부 내용을 숨깁니다.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(responseDto.Error{Error: fiberErr.Message})
	}

	utils.Error("app", "처리되지 않은 에러 (request=%s): %v", middleware.GetRequestID(c), err)
	return c.Status(fiber.StatusInternalServerError).JSON(responseDto.Error{
		Error: constants.MSG_SERVER_ERROR + "internal error",
	})
}

var (
	app     *fiber.App
	appOnce sync.Once
)

// GetApp은 서버리스 환경용 애플리케이션 인스턴스를 반환합니다.
// 콜드 스타트 이후 호출에서는 같은 인스턴스를 재사용합니다.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		config := configs.GetConfig()
		app = NewApp(config, service.NewServiceContainer(config), true)
	})
	return app
}
