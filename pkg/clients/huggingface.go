package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	constants "github.com/sh5080/emotion-tips-go/pkg/types"
	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// HuggingFaceClient는 Hugging Face Inference API로 감정 분류 모델을 호출합니다.
// 모델 주소와 토큰은 생성 시 한 번만 결정되며 이후 읽기 전용입니다.
type HuggingFaceClient struct {
	_interface.Service
	endpoint string
}

var _ _interface.EmotionClassifier = (*HuggingFaceClient)(nil)

// NewHuggingFaceClient는 새로운 Hugging Face 분류기 클라이언트를 생성합니다.
func NewHuggingFaceClient(config *configs.EnvConfig) *HuggingFaceClient {
	return &HuggingFaceClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: config.Classifier.Timeout,
			},
			Config: config,
		},
		endpoint: strings.TrimRight(config.Classifier.BaseURL, "/") + "/" + strings.TrimLeft(config.Classifier.Model, "/"),
	}
}

// Classify는 입력 텍스트에 대해 모든 라벨의 점수를 반환합니다.
// 반환 순서는 모델 응답 순서를 그대로 유지합니다.
func (c *HuggingFaceClient) Classify(ctx context.Context, text string) ([]structure.LabelScore, error) {
	payload, err := json.Marshal(structure.HuggingFaceRequest{
		Inputs:     text,
		Parameters: structure.HuggingFaceParameters{TopK: len(constants.GO_EMOTION_LABELS)},
		Options:    structure.HuggingFaceOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("요청 직렬화 실패: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Config.Classifier.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Config.Classifier.Token)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall(constants.HUGGINGFACE_API, 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("요청 실행 실패: %v", err)
	}
	defer resp.Body.Close()
	utils.RecordApiCall(constants.HUGGINGFACE_API, resp.StatusCode, time.Since(start).Seconds())

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("모델 API 오류 (%d): %s", resp.StatusCode, errorBody(resp, body))
	}

	scores, err := parseLabelScores(body)
	if err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %v", err)
	}

	return scores, nil
}

// parseLabelScores는 [[{label, score}...]] 또는 [{label, score}...] 형태를 모두 처리합니다
func parseLabelScores(body []byte) ([]structure.LabelScore, error) {
	var nested [][]structure.LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}

	var flat []structure.LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}
