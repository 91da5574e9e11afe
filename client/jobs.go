package client

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/api"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/poll"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// --------------------------------------------------------------------
// Upscale
// --------------------------------------------------------------------

// UpscaleImage submits an upscale job for a generated image and waits for
// the upscaled image URL.
func (c *Client) UpscaleImage(ctx context.Context, generatedImageID string) (*Variation, error) {
	jobID, err := api.CreateUpscale(ctx, c.http, c.baseURL, generatedImageID)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("image_id", generatedImageID).Str("variation_id", jobID).Msg("upscale submitted")
	return c.WaitForUpscale(ctx, jobID)
}

// WaitForUpscale polls an upscale job until its URL is available.
func (c *Client) WaitForUpscale(ctx context.Context, variationID string) (*Variation, error) {
	const op = "wait for upscale"
	if err := types.ValidateRequired(op, variationID, "variationId"); err != nil {
		return nil, err
	}
	v, err := poll.Until[*Variation](ctx, c.pollConfig(jobUpscale), op, variationID,
		func(ctx context.Context) (*Variation, types.JobStatus, error) {
			v, err := api.GetVariation(ctx, c.http, c.baseURL, variationID)
			if err != nil {
				return nil, "", err
			}
			return v, v.Status, nil
		})
	jobsTotal.WithLabelValues(jobUpscale, jobOutcome(err)).Inc()
	return v, err
}

// --------------------------------------------------------------------
// Motion
// --------------------------------------------------------------------

// MotionOption adjusts a motion request.
type MotionOption func(*types.MotionRequest)

func WithMotionPublic(public bool) MotionOption {
	return func(r *types.MotionRequest) { r.IsPublic = public }
}

// WithMotionInitImage marks the source as an uploaded init image rather than
// a generated image.
func WithMotionInitImage(init bool) MotionOption {
	return func(r *types.MotionRequest) { r.IsInitImage = init }
}

// WithMotionVariation marks the source as a variation image.
func WithMotionVariation(variation bool) MotionOption {
	return func(r *types.MotionRequest) { r.IsVariation = variation }
}

// WithMotionStrength sets the amount of motion (1-10).
func WithMotionStrength(strength int) MotionOption {
	return func(r *types.MotionRequest) { r.MotionStrength = &strength }
}

// CreateMotionGeneration animates an image and waits for the MP4 URL.
func (c *Client) CreateMotionGeneration(ctx context.Context, imageID string, opts ...MotionOption) (*MotionResult, error) {
	req := types.MotionRequest{ImageID: imageID}
	for _, opt := range opts {
		opt(&req)
	}
	generationID, err := api.CreateMotion(ctx, c.http, c.baseURL, req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("image_id", imageID).Str("generation_id", generationID).Msg("motion submitted")
	return c.WaitForMotion(ctx, generationID)
}

// WaitForMotion polls a motion generation until its video is available.
func (c *Client) WaitForMotion(ctx context.Context, generationID string) (*MotionResult, error) {
	const op = "wait for motion"
	if err := types.ValidateRequired(op, generationID, "generationId"); err != nil {
		return nil, err
	}
	g, err := poll.Until[*Generation](ctx, c.pollConfig(jobMotion), op, generationID,
		func(ctx context.Context) (*Generation, types.JobStatus, error) {
			g, err := api.GetGeneration(ctx, c.http, c.baseURL, generationID)
			if err != nil {
				return nil, "", err
			}
			return g, g.Status, nil
		})
	if err == nil {
		err = motionReady(op, generationID, g)
	}
	jobsTotal.WithLabelValues(jobMotion, jobOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	return &MotionResult{GenerationID: generationID, MotionMP4URL: g.Images[0].MotionMP4URL}, nil
}

func motionReady(op, generationID string, g *Generation) error {
	if len(g.Images) == 0 || g.Images[0].MotionMP4URL == "" {
		return &errors.Error{Kind: errors.KindAPI, Op: op, StatusCode: http.StatusOK, Message: "generation " + generationID + " completed without a motion video"}
	}
	return nil
}

// --------------------------------------------------------------------
// Downloads
// --------------------------------------------------------------------

// DownloadImages saves each image as <dir>/<image id>.jpg and returns the
// written paths in input order. It stops at the first failure; the paths
// written so far are returned with the error.
func (c *Client) DownloadImages(ctx context.Context, images []GeneratedImage, dir string) ([]string, error) {
	const op = "download images"
	if err := types.ValidateRequired(op, dir, "dir"); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(images))
	for _, img := range images {
		if err := types.ValidateRequired(op, img.URL, "image url"); err != nil {
			return paths, err
		}
		if err := validateFileName(op, img.ID); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, img.ID+".jpg")
		if err := api.DownloadFile(ctx, c.http, img.URL, path); err != nil {
			return paths, err
		}
		log.Debug().Str("image_id", img.ID).Str("path", path).Msg("image downloaded")
		paths = append(paths, path)
	}
	return paths, nil
}

// validateFileName rejects image ids that are not a single path element, so
// a download can never land outside the target directory.
func validateFileName(op, id string) error {
	if err := types.ValidateRequired(op, id, "image id"); err != nil {
		return err
	}
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return errors.Validation(op, "image id %q is not a valid file name", id)
	}
	return nil
}

// DownloadGeneration waits for a generation and downloads all of its images
// into dir.
func (c *Client) DownloadGeneration(ctx context.Context, generationID, dir string) ([]string, error) {
	if err := types.ValidateRequired("download generation", dir, "dir"); err != nil {
		return nil, err
	}
	g, err := c.WaitForGeneration(ctx, generationID)
	if err != nil {
		return nil, err
	}
	return c.DownloadImages(ctx, g.Images, dir)
}
