package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentimentSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze-sentiment", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hôm nay thấy khá ổn", body["text"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"mood":          7,
			"mood_category": "high",
			"mood_label":    "Happy",
			"compound":      0.6,
			"scores": map[string]float64{
				"positive": 0.7,
				"neutral":  0.2,
				"negative": 0.1,
			},
		})
	}))
	defer server.Close()

	t.Setenv("SENTIMENT_API_URL", server.URL)

	result, err := AnalyzeSentiment(context.Background(), "hôm nay thấy khá ổn")
	assert.NoError(t, err)
	assert.Equal(t, 7, result.Mood)
	assert.Equal(t, "high", result.MoodCategory)
	assert.Equal(t, "Happy", result.MoodLabel)
	assert.InDelta(t, 0.7, result.Scores.Positive, 0.001)
}

func TestAnalyzeSentimentEmptyText(t *testing.T) {
	t.Setenv("SENTIMENT_API_URL", "http://localhost:9999")

	_, err := AnalyzeSentiment(context.Background(), "   ")
	assert.Error(t, err)
}

func TestAnalyzeSentimentMissingConfig(t *testing.T) {
	t.Setenv("SENTIMENT_API_URL", "")

	_, err := AnalyzeSentiment(context.Background(), "một câu bất kỳ")
	assert.Error(t, err)
}

func TestAnalyzeSentimentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "text is required"})
	}))
	defer server.Close()

	t.Setenv("SENTIMENT_API_URL", server.URL)

	_, err := AnalyzeSentiment(context.Background(), "abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "text is required")
}
