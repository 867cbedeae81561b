package configs

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string `env:"PORT" envDefault:"3000"`
		AppName string `env:"APP_NAME" envDefault:"emotion-tips"`
		Env     string `env:"APP_ENV" envDefault:"prod"`
	}
	Google struct {
		APIKey    string        `env:"GOOGLE_API_KEY,required,notEmpty"`
		CSEID     string        `env:"GOOGLE_CSE_ID,required,notEmpty"`
		SearchURL string        `env:"GOOGLE_SEARCH_URL" envDefault:"https://www.googleapis.com/customsearch/v1"`
		Timeout   time.Duration `env:"GOOGLE_SEARCH_TIMEOUT" envDefault:"10s"`
	}
	Classifier struct {
		BaseURL string        `env:"HF_INFERENCE_URL" envDefault:"https://api-inference.huggingface.co/models"`
		Model   string        `env:"HF_MODEL" envDefault:"bhadresh-savani/bert-base-go-emotion"`
		Token   string        `env:"HF_API_TOKEN"`
		Timeout time.Duration `env:"HF_TIMEOUT" envDefault:"30s"`
	}
	AWS struct {
		AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
		SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
		Region           string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
		DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
		Tables           struct {
			ServerStatus string `env:"AWS_DYNAMODB_TABLE_SERVER_STATUS"`
		}
	}
	Status struct {
		Interval time.Duration `env:"STATUS_INTERVAL" envDefault:"30s"`
		TTL      time.Duration `env:"STATUS_TTL" envDefault:"90s"`
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// Load는 .env 파일(있을 경우)과 환경 변수를 읽어 설정을 구성합니다.
// 필수 값(GOOGLE_API_KEY, GOOGLE_CSE_ID)이 없으면 에러를 반환합니다.
func Load() (*EnvConfig, error) {
	// .env 파일은 선택 사항이므로 없어도 무시
	_ = godotenv.Load()

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("환경 변수 파싱 실패: %w", err)
	}

	return config, nil
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load()
		if err != nil {
			log.Fatalf("설정 로드 실패: %v", err)
		}
		configInstance = config
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}

// StatusEnabled는 DynamoDB 서버 상태 기록이 설정되어 있는지 확인합니다
func (c *EnvConfig) StatusEnabled() bool {
	return c.AWS.Tables.ServerStatus != ""
}
