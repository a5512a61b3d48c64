// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vision builds and dispatches multimodal chat-completion requests
// against an OpenAI-compatible endpoint.
package vision

// ExtractionPrompt is the instruction sent alongside every page image.
const ExtractionPrompt = "Please extract all text from this image and convert it to Markdown format, " +
	"attempting to preserve the original document formatting. " +
	"The output should be a Markdown representation of the original image/document text. " +
	"If there are tables in the image, recreate them as Markdown tables in the output. " +
	"Formatted Markdown output only, no HTML."

// ImageURL wraps an image reference, here always an inline data URI.
type ImageURL struct {
	URL string `json:"url"`
}

// ContentPart is one element of a multimodal message: either text or an
// image reference, selected by Type.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// Message is a role-tagged chat message with multimodal content.
type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// ChatRequest is the chat-completions request body.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// ChatResponse is the subset of the chat-completions response we read.
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// BuildRequest assembles the request body for one page: a single user
// message holding the extraction instruction and the page image as a data
// URI. No system message, no history; every page is a fresh conversation.
func BuildRequest(model, prompt, dataURI string) ChatRequest {
	return ChatRequest{
		Model: model,
		Messages: []Message{
			{
				Role: "user",
				Content: []ContentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &ImageURL{URL: dataURI}},
				},
			},
		},
	}
}
