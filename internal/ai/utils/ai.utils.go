package utils

import (
	"strings"
)

// CleanLLMOutput strips surrounding whitespace and a Markdown code fence
// (with or without a language tag) from a model response.
func CleanLLMOutput(llmOutput string) string {
	cleanedOutput := strings.TrimSpace(llmOutput)
	if !strings.HasPrefix(cleanedOutput, "```") {
		return cleanedOutput
	}

	cleanedOutput = strings.TrimPrefix(cleanedOutput, "```")
	// Drop the language tag on the opening fence line, e.g. "json" or "jsx".
	if newline := strings.IndexByte(cleanedOutput, '\n'); newline != -1 {
		tag := strings.TrimSpace(cleanedOutput[:newline])
		if !strings.ContainsAny(tag, "{[\"") {
			cleanedOutput = cleanedOutput[newline+1:]
		}
	}
	cleanedOutput = strings.TrimSuffix(strings.TrimSpace(cleanedOutput), "```")

	return strings.TrimSpace(cleanedOutput)
}
