package prompts

import "fmt"

// GetImageDescriptionPrompt returns the user prompt embedding the encoded
// image and the system prompt for the image describer.
func GetImageDescriptionPrompt(encodedImage string) (string, string) {
	systemPrompt := `You are an expert at analyzing images. Provide a detailed description of the image, focusing on any text, UI elements, or design requirements that would be relevant for creating a React application.`

	prompt := fmt.Sprintf(`Please analyze this image and provide a detailed description focusing on UI elements and requirements: %s`, encodedImage)

	return prompt, systemPrompt
}

// GetVisionDescriptionPrompt is the text part sent next to an attached image.
func GetVisionDescriptionPrompt() string {
	return `Please analyze the attached image and provide a detailed description focusing on UI elements and requirements.`
}

// GetComponentPrompt asks for a single named component.
func GetComponentPrompt(componentName, requirements string) (string, string) {
	systemPrompt := `You are an expert React developer. Generate a complete React component with proper styling and functionality.`

	prompt := fmt.Sprintf(`Generate a React component named %s with these requirements: %s`, componentName, requirements)

	return prompt, systemPrompt
}

// GetComponentsPrompt asks for a JSON object mapping component names to code.
func GetComponentsPrompt(requirements string) (string, string) {
	systemPrompt := `
		You are an expert React developer. Based on the requirements, generate multiple React components.
		Return the response as a JSON object where keys are component names and values are the component code.
		Each component should be a complete, functional React component with proper styling.
	`

	prompt := fmt.Sprintf(`Generate React components for: %s`, requirements)

	return prompt, systemPrompt
}

// GetPagePrompt asks for a routed page component.
func GetPagePrompt(pageName, requirements string) (string, string) {
	systemPrompt := `You are an expert React developer. Generate a complete React page component with routing and proper styling.`

	prompt := fmt.Sprintf(`Generate a React page component named %s with these requirements: %s`, pageName, requirements)

	return prompt, systemPrompt
}
