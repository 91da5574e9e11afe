package client

import (
	"context"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/api"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/poll"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/templates"
)

// DefaultGenerationParams returns the parameters every generation starts
// from. Template presets and explicit options are layered on top.
func DefaultGenerationParams() map[string]any {
	return map[string]any{
		"num_images":          1,
		"width":               1024,
		"height":              1024,
		"guidance_scale":      7,
		"num_inference_steps": 15,
		"presetStyle":         "DYNAMIC",
		"alchemy":             false,
		"photoReal":           false,
	}
}

type generateSettings struct {
	template string
	params   map[string]any
	noWait   bool
}

// GenerateOption sets one explicit generation parameter. Explicit parameters
// take precedence over template presets and defaults.
type GenerateOption func(*generateSettings)

// WithTemplate applies the named preset from the client's templates.
func WithTemplate(name string) GenerateOption {
	return func(s *generateSettings) { s.template = name }
}

// WithParam sets any request field by its wire name, e.g. "contrastRatio".
func WithParam(key string, value any) GenerateOption {
	return func(s *generateSettings) { s.params[key] = value }
}

func WithModelID(id string) GenerateOption { return WithParam("modelId", id) }

func WithNumImages(n int) GenerateOption { return WithParam("num_images", n) }

func WithWidth(w int) GenerateOption { return WithParam("width", w) }

func WithHeight(h int) GenerateOption { return WithParam("height", h) }

func WithDimensions(width, height int) GenerateOption {
	return func(s *generateSettings) {
		s.params["width"] = width
		s.params["height"] = height
	}
}

func WithNegativePrompt(p string) GenerateOption { return WithParam("negative_prompt", p) }

func WithGuidanceScale(g int) GenerateOption { return WithParam("guidance_scale", g) }

func WithInferenceSteps(n int) GenerateOption { return WithParam("num_inference_steps", n) }

func WithSeed(seed int64) GenerateOption { return WithParam("seed", seed) }

func WithPresetStyle(style string) GenerateOption { return WithParam("presetStyle", style) }

func WithAlchemy(enabled bool) GenerateOption { return WithParam("alchemy", enabled) }

func WithPublic(public bool) GenerateOption { return WithParam("public", public) }

func WithScheduler(name string) GenerateOption { return WithParam("scheduler", name) }

// WithPhotoReal enables PhotoReal with the given version ("v1" or "v2").
// v2 only works with the models in PhotoRealV2Models and turns Alchemy on.
func WithPhotoReal(version string) GenerateOption {
	return func(s *generateSettings) {
		s.params["photoReal"] = true
		if version != "" {
			s.params["photoRealVersion"] = version
		}
	}
}

// WithoutWait makes GenerateImages return as soon as the job is accepted.
// The returned Generation then only carries its ID and a PENDING status.
func WithoutWait() GenerateOption {
	return func(s *generateSettings) { s.noWait = true }
}

// GenerateImages submits one generation job for prompt and, unless
// WithoutWait is given, waits until its images are available.
func (c *Client) GenerateImages(ctx context.Context, prompt string, opts ...GenerateOption) (*Generation, error) {
	const op = "generate images"
	if err := types.ValidateRequired(op, prompt, "prompt"); err != nil {
		return nil, err
	}

	s := generateSettings{params: map[string]any{}}
	for _, opt := range opts {
		opt(&s)
	}

	req, err := c.buildGenerationRequest(op, prompt, s)
	if err != nil {
		return nil, err
	}

	id, err := api.CreateGeneration(ctx, c.http, c.baseURL, req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("generation_id", id).Str("template", s.template).Int("num_images", req.NumImages).Msg("generation submitted")

	if s.noWait {
		return &Generation{ID: id, Status: StatusPending, Prompt: req.Prompt}, nil
	}
	return c.WaitForGeneration(ctx, id)
}

// GenerateFromTemplate is GenerateImages with the named template applied.
// An unknown template name fails before any request is sent.
func (c *Client) GenerateFromTemplate(ctx context.Context, prompt, template string, opts ...GenerateOption) (*Generation, error) {
	if err := types.ValidateRequired("generate from template", template, "template"); err != nil {
		return nil, err
	}
	return c.GenerateImages(ctx, prompt, append([]GenerateOption{WithTemplate(template)}, opts...)...)
}

// WaitForGeneration polls a generation until it is COMPLETE and returns it
// with its images.
func (c *Client) WaitForGeneration(ctx context.Context, generationID string) (*Generation, error) {
	const op = "wait for generation"
	if err := types.ValidateRequired(op, generationID, "generationId"); err != nil {
		return nil, err
	}
	g, err := poll.Until[*Generation](ctx, c.pollConfig(jobGeneration), op, generationID,
		func(ctx context.Context) (*Generation, types.JobStatus, error) {
			g, err := api.GetGeneration(ctx, c.http, c.baseURL, generationID)
			if err != nil {
				return nil, "", err
			}
			return g, g.Status, nil
		})
	jobsTotal.WithLabelValues(jobGeneration, jobOutcome(err)).Inc()
	return g, err
}

// buildGenerationRequest resolves defaults, the template preset and explicit
// parameters into the request body, in increasing order of precedence.
func (c *Client) buildGenerationRequest(op, prompt string, s generateSettings) (types.GenerationRequest, error) {
	var req types.GenerationRequest

	var preset templates.Preset
	if s.template != "" {
		p, ok := c.templates.Get(s.template)
		if !ok {
			return req, errors.Validation(op, "template %q not found", s.template)
		}
		preset = p
	}

	params := templates.Merge(DefaultGenerationParams(), preset, s.params)
	params["prompt"] = prompt

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      &req,
	})
	if err != nil {
		return req, err
	}
	if err := dec.Decode(params); err != nil {
		return req, &errors.Error{Kind: errors.KindValidation, Op: op, Message: "invalid generation parameters: " + err.Error(), Err: err}
	}

	if err := types.ValidateGeneration(op, &req); err != nil {
		return req, err
	}
	return req, nil
}

func (c *Client) pollConfig(job string) poll.Config {
	cfg := c.poll
	cfg.OnAttempt = func(int, types.JobStatus) {
		pollAttemptsTotal.WithLabelValues(job).Inc()
	}
	return cfg
}
