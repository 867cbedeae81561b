package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sh5080/emotion-tips-go/pkg/configs"
	_interface "github.com/sh5080/emotion-tips-go/pkg/interfaces"
	model "github.com/sh5080/emotion-tips-go/pkg/types/models"
)

// DynamoDBAPI는 레포지토리가 사용하는 DynamoDB 클라이언트 메서드 집합입니다
type DynamoDBAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ServerStatusRepository는 인스턴스 상태 정보를 DynamoDB에 저장하고 조회하는 레포지토리입니다.
type ServerStatusRepository struct {
	client    DynamoDBAPI
	tableName string
}

var _ _interface.ServerStatusRepository = (*ServerStatusRepository)(nil)

// NewServerStatusRepository는 설정으로 DynamoDB 클라이언트를 만들고 테이블을 준비합니다.
func NewServerStatusRepository(ctx context.Context, cfg *configs.EnvConfig) (*ServerStatusRepository, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.AWS.Region)}

	// AWS 자격증명이 설정되어 있으면 고정 자격증명, 아니면 기본 프로바이더 체인 사용
	if cfg.AWS.AccessKeyID != "" && cfg.AWS.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %v", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.DynamoDBEndpoint)
		}
	})

	repo := NewServerStatusRepositoryWithClient(client, cfg.AWS.Tables.ServerStatus)
	if err := repo.CreateTableIfNotExists(ctx); err != nil {
		return nil, fmt.Errorf("서버 상태 테이블 생성 실패: %v", err)
	}

	return repo, nil
}

// NewServerStatusRepositoryWithClient는 주어진 클라이언트로 레포지토리를 생성합니다
func NewServerStatusRepositoryWithClient(client DynamoDBAPI, tableName string) *ServerStatusRepository {
	return &ServerStatusRepository{
		client:    client,
		tableName: tableName,
	}
}

// CreateTableIfNotExists는 서버 상태 테이블이 없을 경우 생성합니다.
func (r *ServerStatusRepository) CreateTableIfNotExists(ctx context.Context) error {
	exists, err := r.tableExists(ctx)
	if err != nil {
		return fmt.Errorf("테이블 존재 여부 확인 실패: %v", err)
	}

	if exists {
		return nil
	}

	_, err = r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String("InstanceID"),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String("InstanceID"),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("테이블 생성 실패: %v", err)
	}

	// 테이블 생성 완료될 때까지 대기
	waiter := dynamodb.NewTableExistsWaiter(r.client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	}, 2*time.Minute)
	if err != nil {
		return fmt.Errorf("테이블 생성 완료 대기 실패: %v", err)
	}

	return nil
}

// tableExists는 테이블이 존재하는지 확인합니다.
func (r *ServerStatusRepository) tableExists(ctx context.Context) (bool, error) {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// UpdateServerStatus는 인스턴스 상태를 저장(덮어쓰기)합니다.
func (r *ServerStatusRepository) UpdateServerStatus(ctx context.Context, status *model.ServerStatus) error {
	item, err := attributevalue.MarshalMap(status)
	if err != nil {
		return fmt.Errorf("서버 상태 마샬 실패: %v", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("서버 상태 저장 실패: %v", err)
	}

	return nil
}

// GetServerStatus는 인스턴스 ID로 상태를 조회합니다. 없으면 nil을 반환합니다.
func (r *ServerStatusRepository) GetServerStatus(ctx context.Context, instanceID string) (*model.ServerStatus, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"InstanceID": &types.AttributeValueMemberS{Value: instanceID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("서버 상태 조회 실패: %v", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var status model.ServerStatus
	if err := attributevalue.UnmarshalMap(result.Item, &status); err != nil {
		return nil, fmt.Errorf("서버 상태 언마샬 실패: %v", err)
	}

	return &status, nil
}
