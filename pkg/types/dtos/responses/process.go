package response

import structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"

// Process는 감정 분석 및 추천 결과 응답입니다.
type Process struct {
	Emotion string                   `json:"emotion"`
	Tips    []structure.SearchResult `json:"tips"`
}

// Error는 모든 실패 응답의 공통 형태입니다.
type Error struct {
	Error string `json:"error"`
}
