package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RemoveHTMLTags는 HTML 문서(예: 게이트웨이 오류 페이지)에서 텍스트만 추출합니다.
// 태그를 제거하고 엔티티를 디코딩하며, 파싱에 실패하면 원본을 공백만 정리해서 반환합니다.
func RemoveHTMLTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseSpaces(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpaces(s)
	}

	return collapseSpaces(doc.Text())
}

// 여러 공백 정리
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
