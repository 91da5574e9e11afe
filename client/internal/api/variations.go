package api

import (
	"context"
	"net/http"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// CreateUpscale submits a Universal Upscaler job for a generated image and
// returns the variation job ID.
func CreateUpscale(ctx context.Context, httpClient HTTPClient, baseURL, generatedImageID string) (string, error) {
	const op = "create upscale"
	if err := types.ValidateRequired(op, generatedImageID, "generatedImageId"); err != nil {
		return "", err
	}
	var resp types.CreateUpscaleResponse
	req := types.UpscaleRequest{ID: generatedImageID}
	if err := do(ctx, httpClient, op, http.MethodPost, endpoint(baseURL, "variations/upscale"), req, &resp); err != nil {
		return "", err
	}
	if resp.SDUpscaleJob.ID == "" {
		return "", &errors.Error{Kind: errors.KindAPI, Op: op, StatusCode: http.StatusOK, Message: "response carried no upscale job id"}
	}
	return resp.SDUpscaleJob.ID, nil
}

// GetVariation retrieves the state of a variation job. A response without
// variations is reported as pending, since the job may not be visible yet.
func GetVariation(ctx context.Context, httpClient HTTPClient, baseURL, variationID string) (*types.Variation, error) {
	const op = "get variation"
	if err := types.ValidateRequired(op, variationID, "variationId"); err != nil {
		return nil, err
	}
	var resp types.GetVariationResponse
	if err := do(ctx, httpClient, op, http.MethodGet, endpoint(baseURL, "variations/%s", variationID), nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Variations) == 0 {
		return &types.Variation{ID: variationID, Status: types.StatusPending}, nil
	}
	return &resp.Variations[0], nil
}
