package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	constants "github.com/sh5080/emotion-tips-go/pkg/types"
	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// GoogleSearchClient는 Google Custom Search JSON API 요청을 처리하는 클라이언트입니다.
type GoogleSearchClient struct {
	_interface.Service
}

var _ _interface.WebSearchClient = (*GoogleSearchClient)(nil)

// NewGoogleSearchClient는 새로운 Google 검색 클라이언트를 생성합니다.
func NewGoogleSearchClient(config *configs.EnvConfig) *GoogleSearchClient {
	return &GoogleSearchClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: config.Google.Timeout,
			},
			Config: config,
		},
	}
}

// Search는 검색 API를 한 번 호출하여 결과를 반환합니다. 재시도는 하지 않습니다.
// 200 이외의 응답은 에러이며, items가 없는 200 응답은 빈 결과입니다.
func (c *GoogleSearchClient) Search(ctx context.Context, query string) (*structure.GoogleSearchResponse, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("key", c.Config.Google.APIKey)
	params.Add("cx", c.Config.Google.CSEID)

	reqUrl := c.Config.Google.SearchURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %s", c.redact(err.Error()))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall(constants.GOOGLE_SEARCH_API, 0, time.Since(start).Seconds())
		// url.Error 메시지에 API 키가 포함된 URL이 들어가므로 가린다
		return nil, fmt.Errorf("요청 실행 실패: %s", c.redact(err.Error()))
	}
	defer resp.Body.Close()
	utils.RecordApiCall(constants.GOOGLE_SEARCH_API, resp.StatusCode, time.Since(start).Seconds())

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API 오류 (%d): %s", resp.StatusCode, c.redact(errorBody(resp, body)))
	}

	var searchResp structure.GoogleSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %v", err)
	}

	return &searchResp, nil
}

func (c *GoogleSearchClient) redact(message string) string {
	key := c.Config.Google.APIKey
	if key == "" {
		return message
	}
	message = strings.ReplaceAll(message, url.QueryEscape(key), "***")
	return strings.ReplaceAll(message, key, "***")
}
