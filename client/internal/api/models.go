package api

import (
	"context"
	"net/http"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// ListModels returns the platform models in server order.
func ListModels(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Model, error) {
	var resp types.ListModelsResponse
	if err := do(ctx, httpClient, "list models", http.MethodGet, endpoint(baseURL, "platformModels"), nil, &resp); err != nil {
		return nil, err
	}
	if resp.CustomModels == nil {
		return []types.Model{}, nil
	}
	return resp.CustomModels, nil
}
