package utils

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_tips_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emotion_tips_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// ApiCallCounter는 외부 API 호출 수를 추적합니다
	ApiCallCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_tips_api_calls_total",
		Help: "외부 API 호출 수",
	}, []string{"api", "status"})

	// ApiResponseTime은 외부 API 응답 시간을 측정합니다
	ApiResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "emotion_tips_api_response_time_seconds",
		Help:    "외부 API 응답 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"api"})

	// EmotionCounter는 감지된 감정 라벨 분포를 추적합니다
	EmotionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_tips_emotions_total",
		Help: "감지된 감정 라벨 수",
	}, []string{"emotion"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "emotion_tips_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ServerGauge는 서버 부하/상태/용량을 나타냅니다
	ServerGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "emotion_tips_server_status",
		Help: "서버 상태 지표 (load, healthy, capacity)",
	}, []string{"server", "metric"})
)

var metricsOnce sync.Once

// InitMetrics는 모든 메트릭을 기본 레지스트리에 등록합니다
func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			ResponseTime,
			ApiCallCounter,
			ApiResponseTime,
			EmotionCounter,
			ErrorCounter,
			ServerGauge,
		)
		Info("metrics", "메트릭 초기화 완료")
	})
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method string, path string, statusCode int, duration float64) {
	status := strconv.Itoa(statusCode)
	RequestCounter.WithLabelValues(method, path, status).Inc()
	ResponseTime.WithLabelValues(method, path, status).Observe(duration)
}

// RecordApiCall은 외부 API 호출 메트릭을 기록합니다.
// statusCode가 0이면 응답을 받지 못한 호출입니다.
func RecordApiCall(apiName string, statusCode int, duration float64) {
	status := "success"
	if statusCode < 200 || statusCode >= 400 {
		status = "error"
	}
	ApiCallCounter.WithLabelValues(apiName, status).Inc()
	ApiResponseTime.WithLabelValues(apiName).Observe(duration)
}

// RecordEmotion은 감지된 감정을 기록합니다
func RecordEmotion(emotion string) {
	EmotionCounter.WithLabelValues(emotion).Inc()
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(serverName string, metric string, value float64) {
	ServerGauge.WithLabelValues(serverName, metric).Set(value)
}

// UpdateServerLoadMetrics는 계산된 서버 부하를 게이지 세 개(load, healthy, capacity)에 반영합니다
func UpdateServerLoadMetrics(serverName string, load ServerLoad) {
	healthy := 0.0
	if load.IsHealthy {
		healthy = 1.0
	}
	UpdateServerMetric(serverName, "load", load.Load)
	UpdateServerMetric(serverName, "healthy", healthy)
	UpdateServerMetric(serverName, "capacity", load.Capacity)
}
