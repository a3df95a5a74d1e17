package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"react_scaffold_server/config"
	"react_scaffold_server/internal/scaffold"
)

// ErrEmptyResponse is returned when the model answers without any content.
var ErrEmptyResponse = errors.New("llm returned empty response")

// ChatCompleter is the part of the OpenAI-compatible client the generator uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator turns images into descriptions and descriptions into React projects.
type Generator struct {
	client ChatCompleter
	store  *scaffold.Store

	model                   string
	descriptionMaxTokens    int
	encodedImagePrefixLimit int
	visionInput             bool
}

// NewGenerator builds a Generator talking to the hosted model described by cfg.
func NewGenerator(cfg config.Config, store *scaffold.Store) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.LLMBaseURL != "" {
		clientConfig.BaseURL = cfg.LLMBaseURL
	}

	return NewGeneratorWithClient(openai.NewClientWithConfig(clientConfig), cfg, store)
}

// NewGeneratorWithClient builds a Generator around an existing client.
func NewGeneratorWithClient(client ChatCompleter, cfg config.Config, store *scaffold.Store) *Generator {
	return &Generator{
		client:                  client,
		store:                   store,
		model:                   cfg.LLMModel,
		descriptionMaxTokens:    cfg.DescriptionMaxTokens,
		encodedImagePrefixLimit: cfg.EncodedImagePrefixLimit,
		visionInput:             cfg.VisionInput,
	}
}

// Store returns the project store the generator writes into.
func (g *Generator) Store() *scaffold.Store {
	return g.store
}

// chat sends one chat completion with the configured model.
func (g *Generator) chat(ctx context.Context, req openai.ChatCompletionRequest, purpose string) (openai.ChatCompletionResponse, error) {
	req.Model = g.model

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("chat completion for %s failed: %w", purpose, err)
	}
	return resp, nil
}

// complete sends one chat completion and returns the first choice's content.
func (g *Generator) complete(ctx context.Context, req openai.ChatCompletionRequest, purpose string) (string, error) {
	resp, err := g.chat(ctx, req, purpose)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("LLM usage for empty %s response: %+v", purpose, resp.Usage)
		return "", fmt.Errorf("%w for %s", ErrEmptyResponse, purpose)
	}

	return resp.Choices[0].Message.Content, nil
}
