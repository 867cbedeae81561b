package utils

import (
	"encoding/json"
	"strings"
	"unicode"

	request "github.com/sh5080/emotion-tips-go/pkg/types/dtos/requests"
	model "github.com/sh5080/emotion-tips-go/pkg/types/models"
)

// ParseProcessInput은 요청 본문에서 input을 꺼내 검증합니다.
// 본문이 없거나 JSON이 아니거나 input이 없으면(null 포함) ErrMissingInput,
// 문자열이 아니거나 글자/공백 외 문자가 있으면 ErrInvalidFormat을
// validation 단계의 *model.ProcessError로 감싸 반환합니다.
// 성공 시 앞뒤 공백만 제거한 문자열을 반환합니다.
func ParseProcessInput(body []byte) (string, error) {
	var req request.Process
	if len(body) == 0 {
		return "", model.NewProcessError(model.ErrMissingInput, model.StageValidation, nil)
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "", model.NewProcessError(model.ErrMissingInput, model.StageValidation, err)
	}
	if !req.HasInput() {
		return "", model.NewProcessError(model.ErrMissingInput, model.StageValidation, nil)
	}

	var input string
	if err := json.Unmarshal(req.Input, &input); err != nil {
		return "", model.NewProcessError(model.ErrInvalidFormat, model.StageValidation, err)
	}

	trimmed := strings.TrimSpace(input)
	if !IsLettersAndSpaces(trimmed) {
		return "", model.NewProcessError(model.ErrInvalidFormat, model.StageValidation, nil)
	}

	return trimmed, nil
}

// IsLettersAndSpaces는 공백(' ')을 제거한 문자열이 비어 있지 않고
// 유니코드 글자로만 이루어져 있는지 확인합니다
func IsLettersAndSpaces(s string) bool {
	compact := strings.ReplaceAll(s, " ", "")
	if compact == "" {
		return false
	}

	for _, r := range compact {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
