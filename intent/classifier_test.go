package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/ai/mock"
	"github.com/carvisor/carvisor/core"
	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownLabels(t *testing.T) {
	tests := []struct {
		reply string
		want  core.Intent
	}{
		{"recommendation", core.IntentRecommendation},
		{"retrieve_docs", core.IntentRetrieveDocs},
		{"search_news", core.IntentSearchNews},
		{"INVALID_QUESTION", core.IntentInvalidQuestion},
		{"  Recommendation \n", core.IntentRecommendation},
	}

	for _, tt := range tests {
		chatter := mock.NewMockChatter()
		chatter.EnqueueContent(tt.reply)
		classifier := NewClassifier(chatter)

		got := classifier.Classify(context.Background(), "some question")
		assert.Equal(t, tt.want, got, "reply %q", tt.reply)
	}
}

func TestClassify_UnrecognizedLabelDefaults(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.EnqueueContent("banana")
	classifier := NewClassifier(chatter)

	got := classifier.Classify(context.Background(), "Xe nào tiết kiệm xăng nhất?")
	assert.Equal(t, core.IntentRetrieveDocs, got)
}

func TestClassify_LLMFailureUsesKeywords(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.ChatFunc = func(ctx context.Context, msgs []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
		return nil, errors.New("connection refused")
	}
	classifier := NewClassifier(chatter)

	assert.Equal(t, core.IntentRecommendation,
		classifier.Classify(context.Background(), "Gợi ý xe cho gia đình"))
	assert.Equal(t, core.IntentSearchNews,
		classifier.Classify(context.Background(), "Tin tức xe điện mới nhất"))
	assert.Equal(t, core.IntentRetrieveDocs,
		classifier.Classify(context.Background(), "Thông số kỹ thuật Camry"))
}

func TestClassifyByKeywords_Default(t *testing.T) {
	assert.Equal(t, core.DefaultIntent, classifyByKeywords("how do brakes work"))
}
