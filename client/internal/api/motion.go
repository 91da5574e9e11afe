package api

import (
	"context"
	"net/http"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// CreateMotion submits an SVD motion job for an image and returns the
// generation ID to poll.
func CreateMotion(ctx context.Context, httpClient HTTPClient, baseURL string, req types.MotionRequest) (string, error) {
	const op = "create motion"
	if err := types.ValidateRequired(op, req.ImageID, "imageId"); err != nil {
		return "", err
	}
	var resp types.CreateMotionResponse
	if err := do(ctx, httpClient, op, http.MethodPost, endpoint(baseURL, "generations-motion-svd"), req, &resp); err != nil {
		return "", err
	}
	if resp.MotionSVDGenerationJob.GenerationID == "" {
		return "", &errors.Error{Kind: errors.KindAPI, Op: op, StatusCode: http.StatusOK, Message: "response carried no generationId"}
	}
	return resp.MotionSVDGenerationJob.GenerationID, nil
}
