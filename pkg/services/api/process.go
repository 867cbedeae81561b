package api

import (
	"context"

	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	constants "github.com/sh5080/emotion-tips-go/pkg/types"
	model "github.com/sh5080/emotion-tips-go/pkg/types/models"
	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
)

// ProcessImpl는 감정 분석 → 추천 검색 파이프라인 구현체입니다
type ProcessImpl struct {
	emotionService        _interface.EmotionService
	recommendationService _interface.RecommendationService
}

// NewProcessService는 새 파이프라인 서비스를 생성합니다
func NewProcessService(emotionService _interface.EmotionService, recommendationService _interface.RecommendationService) _interface.ProcessService {
	return &ProcessImpl{
		emotionService:        emotionService,
		recommendationService: recommendationService,
	}
}

// Process는 검증된 입력에 대해 감정을 분류하고 추천 결과를 최대 MAX_TIPS개 반환합니다.
// 실패 시 단계 정보를 담은 *model.ProcessError를 반환합니다.
func (s *ProcessImpl) Process(ctx context.Context, input string) (*structure.Recommendation, error) {
	emotion, err := s.emotionService.Analyze(ctx, input)
	if err != nil {
		return nil, model.NewProcessError(model.ErrClassification, model.StageClassification, err)
	}

	tips, err := s.recommendationService.Recommend(ctx, emotion)
	if err != nil {
		return nil, model.NewProcessError(model.ErrUpstream, model.StageLookup, err)
	}

	if len(tips) == 0 {
		return nil, model.NewProcessError(model.ErrNoResults, model.StageLookup, nil)
	}

	if len(tips) > constants.MAX_TIPS {
		tips = tips[:constants.MAX_TIPS]
	}

	return &structure.Recommendation{
		Emotion: emotion,
		Tips:    tips,
	}, nil
}
