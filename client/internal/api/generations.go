package api

import (
	"context"
	"net/http"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// CreateGeneration submits an image generation job and returns its ID.
func CreateGeneration(ctx context.Context, httpClient HTTPClient, baseURL string, req types.GenerationRequest) (string, error) {
	const op = "create generation"
	if err := types.ValidateRequired(op, req.Prompt, "prompt"); err != nil {
		return "", err
	}
	var resp types.CreateGenerationResponse
	if err := do(ctx, httpClient, op, http.MethodPost, endpoint(baseURL, "generations"), req, &resp); err != nil {
		return "", err
	}
	if resp.SDGenerationJob.GenerationID == "" {
		return "", &errors.Error{Kind: errors.KindAPI, Op: op, StatusCode: http.StatusOK, Message: "response carried no generationId"}
	}
	return resp.SDGenerationJob.GenerationID, nil
}

// GetGeneration retrieves a generation and its images by ID.
func GetGeneration(ctx context.Context, httpClient HTTPClient, baseURL, generationID string) (*types.Generation, error) {
	const op = "get generation"
	if err := types.ValidateRequired(op, generationID, "generationId"); err != nil {
		return nil, err
	}
	var resp types.GetGenerationResponse
	if err := do(ctx, httpClient, op, http.MethodGet, endpoint(baseURL, "generations/%s", generationID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Generation == nil {
		return nil, &errors.Error{Kind: errors.KindAPI, Op: op, StatusCode: http.StatusNotFound, Message: "generation " + generationID + " not found"}
	}
	return resp.Generation, nil
}
