package _interface

import (
	"context"

	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
)

// EmotionClassifier는 사전 학습된 다중 라벨 감정 분류기입니다.
// 입력 하나에 대해 모든 라벨의 점수를 반환합니다.
type EmotionClassifier interface {
	Classify(ctx context.Context, text string) ([]structure.LabelScore, error)
}

// EmotionService는 감정 분석 서비스 인터페이스입니다
type EmotionService interface {
	// Analyze는 텍스트에서 가장 점수가 높은 감정 라벨을 반환합니다
	Analyze(ctx context.Context, text string) (structure.EmotionLabel, error)
}
