package client

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	constants "github.com/sh5080/emotion-tips-go/pkg/types"
	"github.com/sh5080/emotion-tips-go/pkg/utils"
)

// readBody는 최대 MAX_UPSTREAM_BODY 바이트까지 응답 본문을 읽습니다.
// 본문이 한도를 넘으면 잘린 본문 대신 에러를 반환합니다.
func readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MAX_UPSTREAM_BODY+1))
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %v", err)
	}
	if len(body) > constants.MAX_UPSTREAM_BODY {
		return nil, fmt.Errorf("응답 본문이 최대 크기(%d바이트)를 초과했습니다", constants.MAX_UPSTREAM_BODY)
	}
	return body, nil
}

// errorBody는 에러 로그용 본문 요약을 만듭니다.
// 게이트웨이가 돌려준 HTML 오류 페이지는 텍스트만 남깁니다.
func errorBody(resp *http.Response, body []byte) string {
	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		text = utils.RemoveHTMLTags(text)
	}
	return truncateBody(text)
}

// truncateBody는 에러 로그용으로 응답 본문을 잘라냅니다
func truncateBody(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > constants.MAX_ERROR_BODY_SHOWN {
		return text[:constants.MAX_ERROR_BODY_SHOWN] + "..."
	}
	return text
}
