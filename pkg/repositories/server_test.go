package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/sh5080/emotion-tips-go/pkg/types/models"
)

// fakeDynamoDB는 단일 테이블을 메모리에 흉내 냅니다
type fakeDynamoDB struct {
	tableCreated bool
	createCalls  int
	items        map[string]map[string]types.AttributeValue
}

func newFakeDynamoDB(tableCreated bool) *fakeDynamoDB {
	return &fakeDynamoDB{
		tableCreated: tableCreated,
		items:        map[string]map[string]types.AttributeValue{},
	}
}

func (f *fakeDynamoDB) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if !f.tableCreated {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   params.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeDynamoDB) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.createCalls++
	f.tableCreated = true
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	key := params.Item["InstanceID"].(*types.AttributeValueMemberS).Value
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key := params.Key["InstanceID"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func TestCreateTableIfNotExistsSkipsExistingTable(t *testing.T) {
	client := newFakeDynamoDB(true)
	repo := NewServerStatusRepositoryWithClient(client, "ServerStatus")

	require.NoError(t, repo.CreateTableIfNotExists(context.Background()))
	assert.Zero(t, client.createCalls)
}

func TestCreateTableIfNotExistsCreatesMissingTable(t *testing.T) {
	client := newFakeDynamoDB(false)
	repo := NewServerStatusRepositoryWithClient(client, "ServerStatus")

	require.NoError(t, repo.CreateTableIfNotExists(context.Background()))
	assert.Equal(t, 1, client.createCalls)
}

func TestUpdateAndGetServerStatus(t *testing.T) {
	repo := NewServerStatusRepositoryWithClient(newFakeDynamoDB(true), "ServerStatus")
	now := time.Now().UTC().Truncate(time.Second)

	status := &model.ServerStatus{
		InstanceID:  "instance-1",
		AppName:     "emotion-tips",
		Version:     "dev",
		LastUpdated: now,
		ExpiresAt:   now.Add(90 * time.Second),
		Load:        0.4,
		IsHealthy:   true,
		Capacity:    0.6,
	}
	require.NoError(t, repo.UpdateServerStatus(context.Background(), status))

	got, err := repo.GetServerStatus(context.Background(), "instance-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "emotion-tips", got.AppName)
	assert.True(t, got.LastUpdated.Equal(now))
	assert.InDelta(t, 0.6, got.Capacity, 1e-9)

	missing, err := repo.GetServerStatus(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
