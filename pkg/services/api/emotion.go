package api

import (
	"context"
	"fmt"

	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// EmotionImpl는 감정 분석 서비스 구현체입니다
type EmotionImpl struct {
	classifier _interface.EmotionClassifier
}

// NewEmotionService는 새 감정 분석 서비스를 생성합니다
func NewEmotionService(classifier _interface.EmotionClassifier) _interface.EmotionService {
	return &EmotionImpl{classifier: classifier}
}

// Analyze는 분류기 결과 중 점수가 가장 높은 라벨을 반환합니다
func (s *EmotionImpl) Analyze(ctx context.Context, text string) (structure.EmotionLabel, error) {
	scores, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return "", err
	}

	label, ok := TopLabel(scores)
	if !ok {
		return "", fmt.Errorf("분류 결과가 비어 있습니다")
	}

	utils.Debug("emotion", "감정 분류 결과: %s (%d개 라벨)", label, len(scores))
	utils.RecordEmotion(string(label))
	return label, nil
}

// TopLabel은 선형 탐색으로 최고 점수 라벨을 찾습니다.
// 동점이면 먼저 나온 라벨을 선택합니다.
func TopLabel(scores []structure.LabelScore) (structure.EmotionLabel, bool) {
	if len(scores) == 0 {
		return "", false
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score.Score > best.Score {
			best = score
		}
	}
	return structure.EmotionLabel(best.Label), true
}
