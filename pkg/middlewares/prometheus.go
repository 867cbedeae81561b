package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// serverMetricInterval은 요청 경로에서 서버 게이지를 다시 계산하는 최소 간격입니다
const serverMetricInterval = 10 * time.Second

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus(serverName string) fiber.Handler {
	throttle := &metricThrottle{interval: serverMetricInterval}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// 에러 핸들러가 아직 실행되지 않았으므로 fiber.Error의 코드를 우선 사용
		status := c.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}

		utils.RecordRequest(c.Method(), c.Route().Path, status, time.Since(start).Seconds())

		// 모든 요청마다 시스템 메트릭을 읽지 않도록 주기적으로만 갱신
		if throttle.allow(time.Now()) {
			cpuUsage, memoryUsage := utils.GetSystemMetrics()
			utils.UpdateServerLoadMetrics(serverName, utils.CalculateServerLoad(cpuUsage, memoryUsage))
		}

		return err
	}
}

// metricThrottle은 동시 요청 사이에서 갱신 시점을 하나만 허용합니다
type metricThrottle struct {
	mu       sync.Mutex
	last     time.Time
	interval time.Duration
}

func (t *metricThrottle) allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
