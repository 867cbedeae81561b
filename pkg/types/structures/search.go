package structure

// GoogleSearchItem은 Custom Search API 결과 항목입니다.
// snippet은 없을 수 있으므로 포인터로 받습니다.
type GoogleSearchItem struct {
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Snippet *string `json:"snippet"`
}

type GoogleSearchResponse struct {
	Items []GoogleSearchItem `json:"items"`
}

// SearchResult는 클라이언트에 반환되는 정규화된 검색 결과입니다
type SearchResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Recommendation은 파이프라인 처리 결과입니다
type Recommendation struct {
	Emotion EmotionLabel
	Tips    []SearchResult
}
