package utils

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

var isDebugMode bool
var debugOnce sync.Once

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	logAt(2, level, service, format, args...)
}

// logAt은 skip 단계 위의 호출 위치를 기록합니다
func logAt(skip int, level LogLevel, service string, format string, args ...interface{}) {
	if level == DEBUG && !IsDebug() {
		return
	}

	_, file, line, _ := runtime.Caller(skip)
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			file = file[i+1:]
			break
		}
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s [%s] %s:%d - %s",
		timestamp, level.String(), service, file, line, message)

	// 에러 레벨 이상은 표준 에러로 출력하고 메트릭에 기록
	if level >= ERROR {
		fmt.Fprintln(os.Stderr, logLine)
		RecordError(service, level.String())
	} else {
		fmt.Fprintln(os.Stdout, logLine)
	}
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	logAt(2, DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	logAt(2, INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	logAt(2, WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	logAt(2, ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	logAt(2, FATAL, service, format, args...)
	os.Exit(1)
}
