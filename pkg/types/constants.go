package constants

// 응답 메시지
const (
	MSG_NO_INPUT      = "No input provided"
	MSG_INVALID_INPUT = "Invalid input. Only letters and spaces are allowed."
	MSG_NO_RESULTS    = "No results found for this emotion."
	MSG_SERVER_ERROR  = "Server error: "
)

// 검색 결과 설정
const (
	MAX_TIPS             = 5
	QUERY_SUFFIX         = "tips"
	DEFAULT_DESCRIPTION  = "No description available."
	GOOGLE_SEARCH_API    = "google_search"
	HUGGINGFACE_API      = "huggingface_inference"
	MAX_UPSTREAM_BODY    = 2 << 20
	MAX_ERROR_BODY_SHOWN = 512
)

// go_emotions 라벨 목록 (bhadresh-savani/bert-base-go-emotion)
var GO_EMOTION_LABELS = []string{
	"admiration",
	"amusement",
	"anger",
	"annoyance",
	"approval",
	"caring",
	"confusion",
	"curiosity",
	"desire",
	"disappointment",
	"disapproval",
	"disgust",
	"embarrassment",
	"excitement",
	"fear",
	"gratitude",
	"grief",
	"joy",
	"love",
	"nervousness",
	"optimism",
	"pride",
	"realization",
	"relief",
	"remorse",
	"sadness",
	"surprise",
	"neutral",
}
