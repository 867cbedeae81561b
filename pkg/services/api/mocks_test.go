package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	structure "github.com/sh5080/emotion-tips-go/pkg/types/structures"
)

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, text string) ([]structure.LabelScore, error) {
	args := m.Called(ctx, text)
	scores, _ := args.Get(0).([]structure.LabelScore)
	return scores, args.Error(1)
}

type mockSearchClient struct {
	mock.Mock
}

func (m *mockSearchClient) Search(ctx context.Context, query string) (*structure.GoogleSearchResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*structure.GoogleSearchResponse)
	return resp, args.Error(1)
}

func snippet(s string) *string {
	return &s
}

func searchItems(n int) []structure.GoogleSearchItem {
	items := make([]structure.GoogleSearchItem, 0, n)
	for i := 0; i < n; i++ {
		title := string(rune('A' + i))
		items = append(items, structure.GoogleSearchItem{
			Title:   title,
			Link:    "https://example.com/" + title,
			Snippet: snippet("snippet " + title),
		})
	}
	return items
}
