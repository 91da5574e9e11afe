package types

// ------------------------------
// Response Types
// ------------------------------

// CreateGenerationResponse wraps POST /generations.
type CreateGenerationResponse struct {
	SDGenerationJob struct {
		GenerationID  string `json:"generationId"`
		APICreditCost int    `json:"apiCreditCost"`
	} `json:"sdGenerationJob"`
}

// GetGenerationResponse wraps GET /generations/{id}.
type GetGenerationResponse struct {
	Generation *Generation `json:"generations_by_pk"`
}

// CreateUpscaleResponse wraps POST /variations/upscale.
type CreateUpscaleResponse struct {
	SDUpscaleJob struct {
		ID            string `json:"id"`
		APICreditCost int    `json:"apiCreditCost"`
	} `json:"sdUpscaleJob"`
}

// GetVariationResponse wraps GET /variations/{id}.
type GetVariationResponse struct {
	Variations []Variation `json:"generated_image_variation_generic"`
}

// CreateMotionResponse wraps POST /generations-motion-svd.
type CreateMotionResponse struct {
	MotionSVDGenerationJob struct {
		GenerationID  string `json:"generationId"`
		APICreditCost int    `json:"apiCreditCost"`
	} `json:"motionSvdGenerationJob"`
}

// ImprovePromptResponse wraps POST /prompt/improve.
type ImprovePromptResponse struct {
	PromptGeneration ImprovedPrompt `json:"promptGeneration"`
}

// ListModelsResponse wraps GET /platformModels.
type ListModelsResponse struct {
	CustomModels []Model `json:"custom_models"`
}

// MeResponse wraps GET /me.
type MeResponse struct {
	UserDetails []struct {
		User struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
		TokenRenewalDate        string `json:"tokenRenewalDate"`
		PaidTokens              int    `json:"paidTokens"`
		SubscriptionTokens      int    `json:"subscriptionTokens"`
		SubscriptionGptTokens   int    `json:"subscriptionGptTokens"`
		SubscriptionModelTokens int    `json:"subscriptionModelTokens"`
		APIConcurrencySlots     int    `json:"apiConcurrencySlots"`
		APIPaidTokens           *int   `json:"apiPaidTokens"`
		APISubscriptionTokens   *int   `json:"apiSubscriptionTokens"`
	} `json:"user_details"`
}
