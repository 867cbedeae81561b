package external

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	model "github.com/sh5080/emotion-tips-go/pkg/types/models"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// ServerStatusService는 인스턴스 상태를 계산하고 주기적으로 기록하는 서비스입니다.
type ServerStatusService struct {
	serverStatusRepo _interface.ServerStatusRepository
	instanceID       string
	appName          string
	version          string
	interval         time.Duration
	ttl              time.Duration
	sample           func() (float64, float64)
}

// 인터페이스 구현 확인
var _ _interface.ServerStatusService = (*ServerStatusService)(nil)

// NewServerStatusService는 새로운 서버 상태 서비스를 생성합니다.
// serverStatusRepo가 nil이면 상태는 메트릭으로만 노출됩니다.
func NewServerStatusService(serverStatusRepo _interface.ServerStatusRepository, config *configs.EnvConfig) *ServerStatusService {
	return &ServerStatusService{
		serverStatusRepo: serverStatusRepo,
		instanceID:       uuid.NewString(),
		appName:          config.Server.AppName,
		version:          configs.AppVersion,
		interval:         config.Status.Interval,
		ttl:              config.Status.TTL,
		sample:           utils.GetSystemMetrics,
	}
}

// GetServerStatus는 현재 서버의 상태 정보를 반환합니다.
func (s *ServerStatusService) GetServerStatus() *model.ServerStatus {
	cpuUsage, memoryUsage := s.sample()
	load := utils.CalculateServerLoad(cpuUsage, memoryUsage)
	now := time.Now().UTC()

	return &model.ServerStatus{
		InstanceID:  s.instanceID,
		AppName:     s.appName,
		Version:     s.version,
		LastUpdated: now,
		ExpiresAt:   now.Add(s.ttl),

		Load:      load.Load,
		IsHealthy: load.IsHealthy,
		Capacity:  load.Capacity,

		CpuUsage:    load.CpuUsage,
		MemoryUsage: load.MemoryUsage,
	}
}

// UpdateServerStatus는 현재 상태를 Prometheus 게이지에 반영하고 저장소에 기록합니다.
func (s *ServerStatusService) UpdateServerStatus(ctx context.Context) error {
	status := s.GetServerStatus()

	utils.UpdateServerLoadMetrics(s.appName, utils.ServerLoad{
		CpuUsage:    status.CpuUsage,
		MemoryUsage: status.MemoryUsage,
		Load:        status.Load,
		Capacity:    status.Capacity,
		IsHealthy:   status.IsHealthy,
	})

	if s.serverStatusRepo == nil {
		return nil
	}
	return s.serverStatusRepo.UpdateServerStatus(ctx, status)
}

// Run은 ctx가 취소될 때까지 interval마다 상태를 갱신합니다.
// 기록 실패는 로그만 남기고 다음 주기에 다시 시도합니다.
func (s *ServerStatusService) Run(ctx context.Context) {
	if s.interval <= 0 {
		utils.Warn("status", "상태 갱신 주기가 0 이하이므로 하트비트를 비활성화합니다")
		return
	}

	utils.Info("status", "서버 상태 하트비트 시작 (인스턴스: %s, 주기: %s)", s.instanceID, s.interval)

	if err := s.UpdateServerStatus(ctx); err != nil {
		utils.Warn("status", "서버 상태 갱신 실패: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("status", "서버 상태 하트비트 종료")
			return
		case <-ticker.C:
			if err := s.UpdateServerStatus(ctx); err != nil {
				utils.Warn("status", "서버 상태 갱신 실패: %v", err)
			}
		}
	}
}
