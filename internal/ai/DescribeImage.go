package ai

import (
	"context"
	"encoding/base64"
	"log"
	"mime"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"react_scaffold_server/internal/ai/prompts"
)

// DescribeImageResult is the description produced for one image.
type DescribeImageResult struct {
	Description string
	// Truncated is set when only a prefix of the encoded image reached the model.
	Truncated bool
}

// DescribeImage asks the model for a UI-focused description of an image.
//
// In text mode the base64 encoding is embedded in the prompt and cut to the
// configured prefix limit, so larger images arrive incomplete. Vision mode
// attaches the whole image as a data URL instead.
func (g *Generator) DescribeImage(ctx context.Context, image []byte) (*DescribeImageResult, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	var (
		req       openai.ChatCompletionRequest
		truncated bool
	)
	if g.visionInput {
		req = g.visionDescriptionRequest(image, encoded)
	} else {
		if g.encodedImagePrefixLimit > 0 && len(encoded) > g.encodedImagePrefixLimit {
			log.Printf("WARN: encoded image truncated from %d to %d characters, the model receives an incomplete image. Set VISION_INPUT=true to send it whole.",
				len(encoded), g.encodedImagePrefixLimit)
			encoded = encoded[:g.encodedImagePrefixLimit]
			truncated = true
		}

		prompt, systemPrompt := prompts.GetImageDescriptionPrompt(encoded)
		req = openai.ChatCompletionRequest{
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}
	}
	req.MaxTokens = g.descriptionMaxTokens

	description, err := g.complete(ctx, req, "image description")
	if err != nil {
		return nil, err
	}

	log.Printf("Image described (%d bytes in, %d characters out, truncated=%t)", len(image), len(description), truncated)
	return &DescribeImageResult{Description: description, Truncated: truncated}, nil
}

func (g *Generator) visionDescriptionRequest(image []byte, encoded string) openai.ChatCompletionRequest {
	_, systemPrompt := prompts.GetImageDescriptionPrompt("")
	dataURL := "data:" + imageMediaType(image) + ";base64," + encoded

	return openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompts.GetVisionDescriptionPrompt()},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}
}

// imageMediaType sniffs the media type for a data URL. Parameters are
// stripped and anything that is not an image is sent as octet-stream.
func imageMediaType(image []byte) string {
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(image))
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "application/octet-stream"
	}
	return mediaType
}
