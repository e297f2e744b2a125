// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/utils"
	"github.com/mlevkin/launchcopy/internal/validators"
	"github.com/mlevkin/launchcopy/models"
)

// Service is the [Generator] implementation backed by the Gemini
// generateContent REST API. All failures, from a missing API key to a
// response that does not satisfy the content contract, are wrapped in
// [ErrGenerationFailed] so callers have a single error to branch on.
type Service struct {
	cfg       *Config
	client    *utils.HTTPClient
	validator validators.Validator
	logger    *logger.Logger
}

// NewService constructs the API-backed copy generator.
func NewService(cfg *Config, log *logger.Logger) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Service{
		cfg:       cfg,
		client:    client,
		validator: validators.NewCopyValidator(),
		logger:    log,
	}
}

// Wire types of the generateContent endpoint.

type generateRequest struct {
	Contents         []promptContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type promptPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64        `json:"temperature"`
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

// Generate implements [Generator].
func (s *Service) Generate(ctx context.Context, input models.ProductInput) (*models.LandingPageCopy, error) {
	if s.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, ErrMissingAPIKey)
	}

	text, err := s.callGenerate(ctx, buildGenerationPrompt(input), landingPageSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var copyDoc models.LandingPageCopy
	if err := json.Unmarshal([]byte(text), &copyDoc); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrGenerationFailed, err)
	}

	if err := s.validator.Validate(ctx, &copyDoc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return &copyDoc, nil
}

// RegenerateSection implements [Generator]. Failures are logged and the
// current content is returned unchanged.
func (s *Service) RegenerateSection(ctx context.Context, name models.SectionName, current models.SectionContent, input models.ProductInput) (models.SectionContent, error) {
	log := logger.FromContext(ctx)

	rewritten, err := s.regenerateSection(ctx, name, current, input)
	if err != nil {
		log.Warn().Err(err).Str("section", string(name)).Msg("section regeneration failed, keeping current content")
		return current, nil
	}

	return rewritten, nil
}

func (s *Service) regenerateSection(ctx context.Context, name models.SectionName, current models.SectionContent, input models.ProductInput) (models.SectionContent, error) {
	if s.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	prompt, err := buildSectionPrompt(name, current, input)
	if err != nil {
		return nil, err
	}

	// No response schema here: the prompt embeds the current content and
	// asks for the same shape back.
	text, err := s.callGenerate(ctx, prompt, nil)
	if err != nil {
		return nil, err
	}

	rewritten, ok := models.EmptySection(name)
	if !ok {
		return nil, fmt.Errorf("unknown section %q", name)
	}
	if err := json.Unmarshal([]byte(text), rewritten); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if err := s.validator.Validate(ctx, rewritten); err != nil {
		return nil, err
	}

	return rewritten, nil
}

func (s *Service) callGenerate(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	reqBody := generateRequest{
		Contents: []promptContent{
			{Parts: []promptPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:      s.cfg.Temperature,
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", s.cfg.APIKey).
		SetBody(reqBody).
		Post(fmt.Sprintf("/models/%s:generateContent", s.cfg.Model))
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("generation API status %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	var result generateResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decoding generation API response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
