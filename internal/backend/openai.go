package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/task"
)

// OpenAI calls an OpenAI-compatible chat-completions endpoint.
type OpenAI struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Client      *http.Client
}

func NewOpenAI(b config.Backend, bench config.Benchmark) *OpenAI {
	apiKey := ""
	if b.APIKeyEnv != "" {
		apiKey = os.Getenv(b.APIKeyEnv)
	}
	return &OpenAI{
		BaseURL:     strings.TrimSuffix(b.BaseURL, "/"),
		APIKey:      apiKey,
		Model:       bench.ModelID,
		MaxTokens:   bench.Decoding.MaxNewTokens,
		Temperature: bench.Decoding.Temperature,
		Client:      http.DefaultClient,
	}
}

func formatPrompt(t *task.Task) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant. Answer the following question in one short phrase.\n\n")
	if t.Context != "" {
		sb.WriteString("Context: " + t.Context + "\n")
	}
	sb.WriteString("Question: " + t.Question + "\nAnswer:")
	return sb.String()
}

func (o *OpenAI) Generate(ctx context.Context, t *task.Task) (string, error) {
	reqBody := map[string]interface{}{
		"model":       o.Model,
		"max_tokens":  o.MaxTokens,
		"temperature": o.Temperature,
		"messages": []map[string]string{
			{"role": "user", "content": formatPrompt(t)},
		},
	}
	bodyBytes, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", o.BaseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if o.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.APIKey)
	}

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errBody)
		return "", fmt.Errorf("backend returned %d: %v", resp.StatusCode, errBody)
	}

	var chatResult struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&chatResult); err != nil {
		return "", err
	}
	if len(chatResult.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return strings.TrimSpace(chatResult.Choices[0].Message.Content), nil
}
