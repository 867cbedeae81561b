package api

import (
	"context"

	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	constants "github.com/sh5080/emotion-tips-go/pkg/types"
	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// RecommendationImpl는 추천 검색 서비스 구현체입니다
type RecommendationImpl struct {
	searchClient _interface.WebSearchClient
}

// NewRecommendationService는 새 추천 검색 서비스를 생성합니다
func NewRecommendationService(searchClient _interface.WebSearchClient) _interface.RecommendationService {
	return &RecommendationImpl{searchClient: searchClient}
}

// Recommend는 감정에 대한 팁을 검색합니다.
// 결과를 자르지 않고 전부 반환합니다 (개수 제한은 파이프라인에서 처리).
func (s *RecommendationImpl) Recommend(ctx context.Context, emotion structure.EmotionLabel) ([]structure.SearchResult, error) {
	query := BuildQuery(emotion)

	searchResp, err := s.searchClient.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := MapSearchItems(searchResp.Items)
	utils.Debug("recommendation", "검색어 %q 결과 %d건", query, len(results))
	return results, nil
}

// BuildQuery는 "<emotion> tips" 형태의 검색어를 만듭니다
func BuildQuery(emotion structure.EmotionLabel) string {
	return string(emotion) + " " + constants.QUERY_SUFFIX
}

// MapSearchItems는 검색 API 항목을 SearchResult로 변환합니다.
// title과 snippet은 이미 일반 텍스트이므로 그대로 사용하고,
// snippet이 없으면 기본 설명 문구를 사용합니다.
func MapSearchItems(items []structure.GoogleSearchItem) []structure.SearchResult {
	results := make([]structure.SearchResult, 0, len(items))
	for _, item := range items {
		description := constants.DEFAULT_DESCRIPTION
		if item.Snippet != nil {
			description = *item.Snippet
		}

		results = append(results, structure.SearchResult{
			Title:       item.Title,
			Link:        item.Link,
			Description: description,
		})
	}
	return results
}
