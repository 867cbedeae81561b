package model

import (
	"errors"
	"fmt"
	"net/http"

	constants "github.com/sh5080/emotion-tips-go/pkg/types"
)

// 처리 단계별 에러 종류
var (
	ErrMissingInput   = errors.New(constants.MSG_NO_INPUT)
	ErrInvalidFormat  = errors.New(constants.MSG_INVALID_INPUT)
	ErrNoResults      = errors.New(constants.MSG_NO_RESULTS)
	ErrClassification = errors.New("emotion classification failed")
	ErrUpstream       = errors.New("web search failed")
)

// 처리 단계 이름
const (
	StageValidation     = "validation"
	StageClassification = "classification"
	StageLookup         = "lookup"
)

// ProcessError는 어느 단계에서 어떤 종류의 실패가 발생했는지 담습니다.
// Kind는 위의 에러 값 중 하나이며 Err는 내부 원인입니다 (로그 전용).
type ProcessError struct {
	Kind  error
	Stage string
	Err   error
}

func (e *ProcessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Stage, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Stage, e.Kind, e.Err)
}

func (e *ProcessError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewProcessError는 단계 실패를 감싼 ProcessError를 생성합니다
func NewProcessError(kind error, stage string, err error) *ProcessError {
	return &ProcessError{Kind: kind, Stage: stage, Err: err}
}

// StatusCode는 에러 종류에 맞는 HTTP 상태 코드를 반환합니다
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingInput), errors.Is(err, ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoResults):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage는 클라이언트에 노출해도 되는 에러 메시지를 반환합니다.
// 내부 원인(Err)의 내용은 포함하지 않습니다.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingInput):
		return ErrMissingInput.Error()
	case errors.Is(err, ErrInvalidFormat):
		return ErrInvalidFormat.Error()
	case errors.Is(err, ErrNoResults):
		return ErrNoResults.Error()
	case errors.Is(err, ErrClassification):
		return constants.MSG_SERVER_ERROR + ErrClassification.Error()
	case errors.Is(err, ErrUpstream):
		return constants.MSG_SERVER_ERROR + ErrUpstream.Error()
	default:
		return constants.MSG_SERVER_ERROR + "internal error"
	}
}
