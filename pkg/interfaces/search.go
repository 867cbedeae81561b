package _interface

import (
	"context"

	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
)

// WebSearchClient는 외부 웹 검색 API 클라이언트입니다
type WebSearchClient interface {
	Search(ctx context.Context, query string) (*structure.GoogleSearchResponse, error)
}

// RecommendationService는 감정에 맞는 추천 검색 서비스 인터페이스입니다
type RecommendationService interface {
	// Recommend는 "<emotion> tips"로 검색한 결과 전체를 반환합니다
	Recommend(ctx context.Context, emotion structure.EmotionLabel) ([]structure.SearchResult, error)
}

// ProcessService는 감정 분석 → 추천 검색 파이프라인 인터페이스입니다
type ProcessService interface {
	Process(ctx context.Context, input string) (*structure.Recommendation, error)
}
