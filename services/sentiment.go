package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const sentimentTimeout = 10 * time.Second

// SentimentResult là kết quả trả về từ service phân tích sentiment bên ngoài
type SentimentResult struct {
	Mood         int     `json:"mood"`
	MoodCategory string  `json:"mood_category"`
	MoodLabel    string  `json:"mood_label"`
	Compound     float64 `json:"compound,omitempty"`
	Scores       struct {
		Positive float64 `json:"positive"`
		Neutral  float64 `json:"neutral"`
		Negative float64 `json:"negative"`
	} `json:"scores"`
}

// AnalyzeSentiment gửi text đến sentiment API và trả về mood score + label.
// Service này là collaborator bên ngoài, chỉ gọi qua HTTP.
func AnalyzeSentiment(ctx context.Context, text string) (*SentimentResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("text không được để trống")
	}

	baseURL := os.Getenv("SENTIMENT_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("SENTIMENT_API_URL chưa được cấu hình")
	}

	requestBody, err := json.Marshal(map[string]string{"text": trimmed})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, sentimentTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/analyze-sentiment", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi gọi sentiment API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errBody) == nil && errBody.Error != "" {
			return nil, fmt.Errorf("sentiment API trả về lỗi: %s", errBody.Error)
		}
		return nil, fmt.Errorf("sentiment API trả về status %d", resp.StatusCode)
	}

	var result SentimentResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("không parse được response từ sentiment API: %w", err)
	}

	return &result, nil
}
