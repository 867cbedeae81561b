package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	responseDto "github.com/sh5080/emotion-tips-go/pkg/types/dtos/responses"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

// Health는 인스턴스 식별 정보와 가동 시간을 반환하는 핸들러입니다
func Health(appName string, statusService _interface.ServerStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := statusService.GetServerStatus()

		health := "ok"
		if !status.IsHealthy {
			health = "degraded"
		}

		response := responseDto.HealthResponse{
			Status:     health,
			AppName:    appName,
			InstanceID: status.InstanceID,
			Time:       time.Now(),
			Version:    configs.AppVersion,
			Uptime:     time.Since(startTime).String(),
			GoVersion:  GoVersion,
		}
		return c.JSON(response)
	}
}

// Status는 현재 인스턴스의 부하 스냅샷을 반환하는 핸들러입니다
func Status(statusService _interface.ServerStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(statusService.GetServerStatus())
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
