package types

import (
	"github.com/samber/lo"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// JobStatus is the remote state of an asynchronous job.
type JobStatus string

const (
	StatusPending  JobStatus = "PENDING"
	StatusComplete JobStatus = "COMPLETE"
	StatusFailed   JobStatus = "FAILED"
)

// Terminal reports whether no further transitions are expected.
func (s JobStatus) Terminal() bool {
	return s == StatusComplete || s == StatusFailed
}

// Generation is an image (or motion) generation job as reported by
// GET /generations/{id}.
type Generation struct {
	ID             string           `json:"id"`
	Status         JobStatus        `json:"status"`
	Prompt         string           `json:"prompt,omitempty"`
	NegativePrompt string           `json:"negativePrompt,omitempty"`
	ModelID        string           `json:"modelId,omitempty"`
	ImageWidth     int              `json:"imageWidth,omitempty"`
	ImageHeight    int              `json:"imageHeight,omitempty"`
	Seed           int64            `json:"seed,omitempty"`
	PresetStyle    string           `json:"presetStyle,omitempty"`
	Public         bool             `json:"public"`
	CreatedAt      string           `json:"createdAt,omitempty"`
	Images         []GeneratedImage `json:"generated_images"`
}

// ImageIDs returns the identifiers of the generated images in server order.
func (g *Generation) ImageIDs() []string {
	return lo.Map(g.Images, func(img GeneratedImage, _ int) string { return img.ID })
}

// FailureReason describes a FAILED generation from the fields the service
// reported.
func (g *Generation) FailureReason() string {
	if g == nil {
		return "remote status FAILED"
	}
	reason := "generation " + g.ID + " reported status " + string(g.Status)
	if g.ModelID != "" {
		reason += " (model " + g.ModelID + ")"
	}
	return reason
}

// GeneratedImage is a single artifact of a completed generation.
type GeneratedImage struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	NSFW         bool   `json:"nsfw"`
	LikeCount    int    `json:"likeCount"`
	MotionMP4URL string `json:"motionMP4URL,omitempty"`
}

// Variation is an upscale (or other variation) job as reported by
// GET /variations/{id}.
type Variation struct {
	ID            string    `json:"id"`
	Status        JobStatus `json:"status"`
	URL           string    `json:"url"`
	TransformType string    `json:"transformType,omitempty"`
	CreatedAt     string    `json:"createdAt,omitempty"`
}

// FailureReason describes a FAILED variation job.
func (v *Variation) FailureReason() string {
	if v == nil {
		return "remote status FAILED"
	}
	kind := v.TransformType
	if kind == "" {
		kind = "variation"
	}
	return kind + " " + v.ID + " reported status " + string(v.Status)
}

// MotionResult is the resolved output of a motion generation.
type MotionResult struct {
	GenerationID string `json:"generationId"`
	MotionMP4URL string `json:"motionMP4URL"`
}

// Model describes a platform model.
type Model struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	NSFW           bool          `json:"nsfw"`
	Featured       bool          `json:"featured"`
	GeneratedImage *ModelPreview `json:"generated_image,omitempty"`
}

// ModelPreview is the sample image attached to a model.
type ModelPreview struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// UserInfo is the flattened view of GET /me.
type UserInfo struct {
	UserID                  string `json:"userId"`
	Username                string `json:"username"`
	TokenRenewalDate        string `json:"tokenRenewalDate,omitempty"`
	PaidTokens              int    `json:"paidTokens"`
	SubscriptionTokens      int    `json:"subscriptionTokens"`
	SubscriptionGPTTokens   int    `json:"subscriptionGptTokens"`
	SubscriptionModelTokens int    `json:"subscriptionModelTokens"`
	APIConcurrencySlots     int    `json:"apiConcurrencySlots"`
	APIPaidTokens           int    `json:"apiPaidTokens"`
	APISubscriptionTokens   int    `json:"apiSubscriptionTokens"`
}

// ImprovedPrompt is the result of POST /prompt/improve.
type ImprovedPrompt struct {
	Prompt        string `json:"prompt"`
	APICreditCost int    `json:"apiCreditCost"`
}
