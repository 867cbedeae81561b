package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sh5080/emotion-tips-go/pkg/configs"
	"github.com/sh5080/emotion-tips-go/pkg/serverless"
	service "github.com/sh5080/emotion-tips-go/pkg/services"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

func main() {
	// 메트릭 초기화
	utils.InitMetrics()

	config := configs.GetConfig()
	services := service.NewServiceContainer(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 인스턴스 상태 하트비트
	go services.ServerStatusService.Run(ctx)

	app := serverless.NewApp(config, services, false) // false: 서버리스 환경 아님을 표시

	go func() {
		<-ctx.Done()
		utils.Info("server", "종료 신호 수신, 서버를 종료합니다")
		if err := app.Shutdown(); err != nil {
			utils.Error("server", "서버 종료 실패: %v", err)
		}
	}()

	if err := app.Listen(":" + config.Server.Port); err != nil {
		utils.Fatal("server", "서버 실행 실패: %v", err)
	}
}
