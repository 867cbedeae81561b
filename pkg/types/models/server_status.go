package model

import (
	"time"
)

// ServerStatus는 인스턴스의 현재 상태와 성능 지표를 나타냅니다
type ServerStatus struct {
	InstanceID  string    `json:"instanceId" dynamodbav:"InstanceID"` // 인스턴스 ID - 기본 키(Primary Key)
	AppName     string    `json:"appName" dynamodbav:"appName"`
	Version     string    `json:"version" dynamodbav:"version"`
	LastUpdated time.Time `json:"lastUpdated" dynamodbav:"lastUpdated"`
	ExpiresAt   time.Time `json:"expiresAt" dynamodbav:"expiresAt"` // DynamoDB TTL 속성

	Load      float64 `json:"load" dynamodbav:"load"`           // CPU와 메모리 가중 평균 (0-1)
	IsHealthy bool    `json:"isHealthy" dynamodbav:"isHealthy"`
	Capacity  float64 `json:"capacity" dynamodbav:"capacity"`

	CpuUsage    float64 `json:"cpuUsage" dynamodbav:"cpuUsage"`
	MemoryUsage float64 `json:"memoryUsage" dynamodbav:"memoryUsage"`
}
