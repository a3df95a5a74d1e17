package ai_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"react_scaffold_server/config"
	"react_scaffold_server/internal/ai"
	"react_scaffold_server/internal/scaffold"
)

const testModel = "test-model"

var errTransport = errors.New("connection reset by peer")

type fakeResponse struct {
	content string
	err     error
}

// fakeLLM replays scripted responses in order and records every request.
type fakeLLM struct {
	mu        sync.Mutex
	responses []fakeResponse
	requests  []openai.ChatCompletionRequest
}

func newFakeLLM(responses ...fakeResponse) *fakeLLM {
	return &fakeLLM{responses: responses}
}

func (f *fakeLLM) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if len(f.responses) == 0 {
		return openai.ChatCompletionResponse{}, errors.New("unexpected chat completion")
	}

	next := f.responses[0]
	f.responses = f.responses[1:]
	if next.err != nil {
		return openai.ChatCompletionResponse{}, next.err
	}
	if next.content == "" {
		return openai.ChatCompletionResponse{}, nil
	}

	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: next.content},
		}},
	}, nil
}

func (f *fakeLLM) Requests() []openai.ChatCompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]openai.ChatCompletionRequest(nil), f.requests...)
}

func testConfig() config.Config {
	return config.Config{
		APIKey:                  "test-key",
		LLMModel:                testModel,
		DescriptionMaxTokens:    500,
		EncodedImagePrefixLimit: 10000,
	}
}

func newTestGenerator(t *testing.T, cfg config.Config, llm *fakeLLM) (*ai.Generator, billy.Filesystem) {
	t.Helper()

	fs := memfs.New()
	gen := ai.NewGeneratorWithClient(llm, cfg, scaffold.NewStore(fs))
	require.NotNil(t, gen)

	return gen, fs
}

func userContent(t *testing.T, req openai.ChatCompletionRequest) string {
	t.Helper()

	require.Len(t, req.Messages, 2)
	require.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	require.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)

	return req.Messages[1].Content
}
