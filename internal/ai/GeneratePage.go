package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"

	openai "github.com/sashabaranov/go-openai"

	"react_scaffold_server/internal/ai/prompts"
	"react_scaffold_server/internal/scaffold"
	"react_scaffold_server/internal/utils"
)

// ErrInvalidPageName indicates a page name unusable as a file name.
var ErrInvalidPageName = errors.New("invalid page name")

// GeneratePage adds a routed page component to an existing project and
// returns its project-relative path.
func (g *Generator) GeneratePage(ctx context.Context, projectName, pageName, requirements string) (string, error) {
	if err := scaffold.ValidateProjectName(projectName); err != nil {
		return "", err
	}
	if !utils.IsSafePathElement(pageName) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPageName, pageName)
	}
	if !g.store.Exists(projectName) {
		return "", fmt.Errorf("%w: %s", scaffold.ErrProjectNotFound, projectName)
	}

	prompt, systemPrompt := prompts.GetPagePrompt(pageName, requirements)
	source, err := g.complete(ctx, openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}, "page "+pageName)
	if err != nil {
		return "", err
	}

	rel := path.Join(scaffold.PagesDir, pageName+".js")
	if err := g.store.WriteFile(projectName, rel, source); err != nil {
		return "", err
	}

	log.Printf("Page %s added to project %s", pageName, projectName)
	return rel, nil
}
