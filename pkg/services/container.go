package service

import (
	"context"
	"time"

	client "github.com/sh5080/emotion-tips-go/pkg/clients"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	repository "github.com/sh5080/emotion-tips-go/pkg/repositories"
	"github.com/sh5080/emotion-tips-go/pkg/services/api"
	"github.com/sh5080/emotion-tips-go/pkg/services/external"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다.
// 분류기/검색 클라이언트는 여기서 한 번만 만들어 서비스에 주입합니다.
func NewServiceContainer(config *configs.EnvConfig) *_interface.ServiceContainer {
	classifier := client.NewHuggingFaceClient(config)
	searchClient := client.NewGoogleSearchClient(config)

	emotionService := api.NewEmotionService(classifier)
	recommendationService := api.NewRecommendationService(searchClient)

	return &_interface.ServiceContainer{
		ProcessService:      api.NewProcessService(emotionService, recommendationService),
		ServerStatusService: newServerStatusService(config),
	}
}

// newServerStatusService는 테이블이 설정된 경우에만 DynamoDB 저장소를 연결합니다
func newServerStatusService(config *configs.EnvConfig) *external.ServerStatusService {
	if !config.StatusEnabled() {
		return external.NewServerStatusService(nil, config)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo, err := repository.NewServerStatusRepository(ctx, config)
	if err != nil {
		utils.Warn("container", "서버 상태 저장소 초기화 실패, 메트릭만 기록합니다: %v", err)
		return external.NewServerStatusService(nil, config)
	}

	return external.NewServerStatusService(repo, config)
}
