package client

import "github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Generation     = types.Generation
	GeneratedImage = types.GeneratedImage
	Variation      = types.Variation
	MotionResult   = types.MotionResult
	Model          = types.Model
	ModelPreview   = types.ModelPreview
	UserInfo       = types.UserInfo
	ImprovedPrompt = types.ImprovedPrompt

	// Requests
	GenerationRequest = types.GenerationRequest
	MotionRequest     = types.MotionRequest

	JobStatus = types.JobStatus
)

const (
	StatusPending  = types.StatusPending
	StatusComplete = types.StatusComplete
	StatusFailed   = types.StatusFailed
)

// PhotoRealV2Models maps model names to the model IDs accepted with
// PhotoReal v2.
var PhotoRealV2Models = types.PhotoRealV2Models
