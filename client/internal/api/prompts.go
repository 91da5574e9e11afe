package api

import (
	"context"
	"net/http"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// ImprovePrompt asks the service to rewrite a prompt.
func ImprovePrompt(ctx context.Context, httpClient HTTPClient, baseURL, prompt string) (*types.ImprovedPrompt, error) {
	const op = "improve prompt"
	if err := types.ValidateRequired(op, prompt, "prompt"); err != nil {
		return nil, err
	}
	var resp types.ImprovePromptResponse
	if err := do(ctx, httpClient, op, http.MethodPost, endpoint(baseURL, "prompt/improve"), types.ImprovePromptRequest{Prompt: prompt}, &resp); err != nil {
		return nil, err
	}
	return &resp.PromptGeneration, nil
}
