package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"react_scaffold_server/internal/ai/prompts"
	"react_scaffold_server/internal/types"
)

// GenerateComponent asks the model for one component and returns its
// response verbatim.
func (g *Generator) GenerateComponent(ctx context.Context, componentName, requirements string) (string, error) {
	prompt, systemPrompt := prompts.GetComponentPrompt(componentName, requirements)

	return g.complete(ctx, openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}, "component "+componentName)
}

// GenerateComponents asks the model for a set of components as a JSON object
// and interprets the answer. Transport errors are returned; unusable or empty
// output yields the fallback variant.
func (g *Generator) GenerateComponents(ctx context.Context, requirements string) (types.ComponentResult, error) {
	prompt, systemPrompt := prompts.GetComponentsPrompt(requirements)

	resp, err := g.chat(ctx, openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}, "components")
	if err != nil {
		return types.ComponentResult{}, err
	}

	var llmOutput string
	if len(resp.Choices) > 0 {
		llmOutput = resp.Choices[0].Message.Content
	}

	return ParseComponents(llmOutput), nil
}
