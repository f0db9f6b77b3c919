package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openfactual/factbench/internal/backend"
	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/task"
)

func TestOfflineEchoesReference(t *testing.T) {
	tk := &task.Task{ID: "t1", Question: "Capital of France?", ReferenceAnswer: "Paris"}
	got, err := backend.Offline{}.Generate(context.Background(), tk)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Paris" {
		t.Errorf("got %q, want the reference answer", got)
	}
}

func TestOpenAIGenerate(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "  Paris\n"}},
			},
		})
	}))
	defer srv.Close()

	gen := backend.NewOpenAI(
		config.Backend{Kind: "openai", BaseURL: srv.URL},
		config.Benchmark{ModelID: "test-model", Decoding: config.Decoding{MaxNewTokens: 64}},
	)
	tk := &task.Task{ID: "t1", Question: "What is the capital of France?", ReferenceAnswer: "Paris"}
	got, err := gen.Generate(context.Background(), tk)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Paris" {
		t.Errorf("got %q, want trimmed response", got)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("model = %v", gotBody["model"])
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	content := msgs[0].(map[string]any)["content"].(string)
	if !strings.Contains(content, "What is the capital of France?") {
		t.Errorf("prompt missing question: %q", content)
	}
}

func TestOpenAIGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gen := backend.NewOpenAI(
		config.Backend{Kind: "openai", BaseURL: srv.URL},
		config.Benchmark{ModelID: "test-model"},
	)
	tk := &task.Task{ID: "t1", Question: "q", ReferenceAnswer: "a"}
	if _, err := gen.Generate(context.Background(), tk); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{Backend: config.Backend{Kind: "offline"}}
	gen, err := backend.FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if _, ok := gen.(backend.Offline); !ok {
		t.Errorf("expected Offline backend, got %T", gen)
	}

	cfg = &config.Config{
		Backend:   config.Backend{Kind: "openai", BaseURL: "http://localhost:9000"},
		Benchmark: config.Benchmark{ModelID: "m"},
	}
	gen, err = backend.FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if _, ok := gen.(*backend.OpenAI); !ok {
		t.Errorf("expected OpenAI backend, got %T", gen)
	}
}
