package structure

// EmotionLabel은 분류기 라벨 집합 중 하나입니다 (joy, sadness, anger ...)
type EmotionLabel string

// LabelScore는 분류기가 반환하는 라벨별 점수입니다
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HuggingFaceRequest는 Inference API 요청 본문입니다
type HuggingFaceRequest struct {
	Inputs     string                `json:"inputs"`
	Parameters HuggingFaceParameters `json:"parameters"`
	Options    HuggingFaceOptions    `json:"options"`
}

type HuggingFaceParameters struct {
	TopK int `json:"top_k"`
}

type HuggingFaceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}
