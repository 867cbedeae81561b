package request

import (
	"bytes"
	"encoding/json"
)

// Process는 감정 분석 요청 본문입니다.
// input이 문자열이 아닐 수도 있으므로 원본 JSON 그대로 받습니다.
type Process struct {
	Input json.RawMessage `json:"input"`
}

// HasInput은 input 키가 존재하고 null이 아닌지 확인합니다
func (p *Process) HasInput() bool {
	trimmed := bytes.TrimSpace(p.Input)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
