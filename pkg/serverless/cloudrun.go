package serverless

import (
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// CloudRunMain은 Cloud Run 컨테이너 진입점입니다. $PORT(기본 3000)에서 대기합니다.
func CloudRunMain() {
	port := configs.GetConfig().Server.Port
	if err := GetApp().Listen(":" + port); err != nil {
		utils.Fatal("cloudrun", "서버 실행 실패: %v", err)
	}
}
