package types

// ------------------------------
// Request Types
// ------------------------------

// GenerationRequest is the body of POST /generations. Field names double as
// template parameter names; the merged parameter map is decoded into this
// struct by json tag.
type GenerationRequest struct {
	Prompt                string           `json:"prompt"`
	ModelID               string           `json:"modelId,omitempty"`
	NumImages             int              `json:"num_images"`
	Width                 int              `json:"width"`
	Height                int              `json:"height"`
	Alchemy               bool             `json:"alchemy"`
	PhotoReal             bool             `json:"photoReal"`
	PhotoRealVersion      string           `json:"photoRealVersion,omitempty"`
	PhotoRealStrength     *float64         `json:"photoRealStrength,omitempty"`
	PresetStyle           string           `json:"presetStyle,omitempty"`
	GuidanceScale         int              `json:"guidance_scale,omitempty"`
	NumInferenceSteps     int              `json:"num_inference_steps,omitempty"`
	NegativePrompt        string           `json:"negative_prompt,omitempty"`
	ContrastRatio         *float64         `json:"contrastRatio,omitempty"`
	Controlnets           []map[string]any `json:"controlnets,omitempty"`
	Elements              []map[string]any `json:"elements,omitempty"`
	ExpandedDomain        *bool            `json:"expandedDomain,omitempty"`
	FantasyAvatar         *bool            `json:"fantasyAvatar,omitempty"`
	HighContrast          *bool            `json:"highContrast,omitempty"`
	HighResolution        *bool            `json:"highResolution,omitempty"`
	ImagePrompts          []string         `json:"imagePrompts,omitempty"`
	ImagePromptWeight     *float64         `json:"imagePromptWeight,omitempty"`
	InitGenerationImageID string           `json:"init_generation_image_id,omitempty"`
	InitImageID           string           `json:"init_image_id,omitempty"`
	InitStrength          *float64         `json:"init_strength,omitempty"`
	PromptMagic           *bool            `json:"promptMagic,omitempty"`
	PromptMagicStrength   *float64         `json:"promptMagicStrength,omitempty"`
	PromptMagicVersion    string           `json:"promptMagicVersion,omitempty"`
	Public                *bool            `json:"public,omitempty"`
	Scheduler             string           `json:"scheduler,omitempty"`
	SDVersion             string           `json:"sd_version,omitempty"`
	Seed                  *int64           `json:"seed,omitempty"`
	Tiling                *bool            `json:"tiling,omitempty"`
	Transparency          string           `json:"transparency,omitempty"`
	Unzoom                *bool            `json:"unzoom,omitempty"`
	UnzoomAmount          *float64         `json:"unzoomAmount,omitempty"`
	UpscaleRatio          *float64         `json:"upscaleRatio,omitempty"`
}

// UpscaleRequest is the body of POST /variations/upscale.
type UpscaleRequest struct {
	ID string `json:"id"`
}

// MotionRequest is the body of POST /generations-motion-svd.
type MotionRequest struct {
	ImageID        string `json:"imageId"`
	IsPublic       bool   `json:"isPublic"`
	IsInitImage    bool   `json:"isInitImage"`
	IsVariation    bool   `json:"isVariation"`
	MotionStrength *int   `json:"motionStrength,omitempty"`
}

// ImprovePromptRequest is the body of POST /prompt/improve.
type ImprovePromptRequest struct {
	Prompt string `json:"prompt"`
}
