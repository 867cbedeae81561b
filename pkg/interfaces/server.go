package _interface

import (
	"context"

	model "github.com/sh5080/emotion-tips-go/pkg/types/models"
)

// ServerStatusService는 서버 상태 관리 서비스 인터페이스입니다
type ServerStatusService interface {
	GetServerStatus() *model.ServerStatus
	// Run은 ctx가 끝날 때까지 주기적으로 상태를 기록합니다
	Run(ctx context.Context)
}

// ServerStatusRepository는 서버 상태 저장소입니다
type ServerStatusRepository interface {
	UpdateServerStatus(ctx context.Context, status *model.ServerStatus) error
}
