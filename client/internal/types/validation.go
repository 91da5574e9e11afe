package types

import (
	"net/http"
	"strings"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Validation
// ------------------------------

// PhotoRealV2Models are the only models accepted with PhotoReal v2.
var PhotoRealV2Models = map[string]string{
	"Leonardo Kino XL":      "aa77f04e-3eec-4034-9c07-d0f619684628",
	"Leonardo Diffusion XL": "1e60896f-3c26-4296-8ecc-53e2afecc132",
	"Leonardo Vision XL":    "5c232a9e-9061-4777-980a-ddc8e65647c6",
}

// ValidateRequired rejects empty or whitespace-only values.
func ValidateRequired(op, value, field string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Validation(op, "%s must not be empty", field)
	}
	return nil
}

// ValidateGeneration checks a fully merged generation request. PhotoReal v2
// forces Alchemy on, which is why the request is taken by pointer.
func ValidateGeneration(op string, req *GenerationRequest) error {
	if err := ValidateRequired(op, req.Prompt, "prompt"); err != nil {
		return err
	}
	if req.NumImages < 1 {
		return errors.Validation(op, "num_images must be at least 1, got %d", req.NumImages)
	}
	if req.Width <= 0 || req.Height <= 0 {
		return errors.Validation(op, "width and height must be positive, got %dx%d", req.Width, req.Height)
	}
	if req.PhotoReal && req.PhotoRealVersion == "v2" {
		supported := false
		for _, id := range PhotoRealV2Models {
			if id == req.ModelID {
				supported = true
				break
			}
		}
		if !supported {
			return errors.Validation(op, "PhotoReal v2 requires modelId of Leonardo Kino XL, Leonardo Diffusion XL, or Leonardo Vision XL")
		}
		req.Alchemy = true
	}
	return nil
}
