// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/models"
)

func testInput() models.ProductInput {
	return models.ProductInput{
		Name:       "Acme",
		Audience:   "indie hackers",
		Problem:    "slow launches",
		Features:   "speed, templates",
		Tone:       models.ToneBold,
		ColorTheme: models.ThemeIndigo,
	}
}

func validCopyJSON(t *testing.T) string {
	t.Helper()
	doc := models.LandingPageCopy{
		Hero: models.HeroSection{Headline: "Meet Acme", Subheadline: "s", CTAPrimary: "p", CTASecondary: "s"},
		Problem: models.ProblemSection{
			Headline: "h", Description: "d", PainPoints: []string{"a", "b", "c"},
		},
		Solution: models.SolutionSection{Headline: "h", Description: "d"},
		Features: models.FeaturesSection{
			Headline: "h",
			Items: []models.FeatureItem{
				{Title: "t1", Description: "d1"},
				{Title: "t2", Description: "d2"},
				{Title: "t3", Description: "d3"},
			},
		},
		HowItWorks: models.HowItWorksSection{
			Headline: "h", Steps: []models.Step{{Title: "t", Description: "d"}},
		},
		SocialProof: models.SocialProofSection{
			Headline: "h", Testimonials: []models.Testimonial{{Name: "n", Role: "r", Quote: "q"}},
		},
		FAQ: models.FAQSection{
			Headline: "h", Items: []models.FAQItem{{Question: "q", Answer: "a"}},
		},
		CTA: models.CTASection{Headline: "h", Subheadline: "s", ButtonText: "b"},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

// candidateResponse wraps text the way the generateContent endpoint does.
func candidateResponse(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

// newTestService points the service at a stub API server.
func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "gemini-3-flash-preview",
		Timeout:     5 * time.Second,
		MaxRetries:  1,
		Temperature: 0.7,
	}

	return NewService(cfg, logger.Nop()), srv
}

func TestNewService_NilConfigUsesDefaults(t *testing.T) {
	s := NewService(nil, logger.Nop())
	require.NotNil(t, s)
	assert.Equal(t, DefaultConfig().Model, s.cfg.Model)
}

func TestService_Generate_Success(t *testing.T) {
	copyJSON := validCopyJSON(t)

	var gotPath string
	var gotBody generateRequest

	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateResponse(copyJSON)))
	})

	doc, err := s.Generate(context.Background(), testInput())
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Meet Acme", doc.Hero.Headline)

	assert.Equal(t, "/models/gemini-3-flash-preview:generateContent", gotPath)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMIMEType)
	assert.InDelta(t, 0.7, gotBody.GenerationConfig.Temperature, 1e-9)
	assert.NotNil(t, gotBody.GenerationConfig.ResponseSchema, "full-page generation must send the response schema")

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "You are an expert conversion copywriter.")
	assert.Contains(t, prompt, "Product Name: Acme")
	assert.Contains(t, prompt, "Key Features: speed, templates")
	assert.Contains(t, prompt, "EXACTLY 3 distinct pain points")
}

func TestService_Generate_MissingAPIKey(t *testing.T) {
	s := NewService(&Config{BaseURL: "http://localhost:0", Model: "m", Timeout: time.Second}, logger.Nop())

	_, err := s.Generate(context.Background(), testInput())
	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestService_Generate_APIErrorStatus(t *testing.T) {
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := s.Generate(context.Background(), testInput())
	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.Contains(t, err.Error(), "status 429")
}

func TestService_Generate_RetriesOn5xx(t *testing.T) {
	copyJSON := validCopyJSON(t)

	var calls atomic.Int32
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		w.Write([]byte(candidateResponse(copyJSON)))
	})

	doc, err := s.Generate(context.Background(), testInput())
	require.NoError(t, err, "a single 5xx must be retried")
	require.NotNil(t, doc)
	assert.Equal(t, int32(2), calls.Load())
}

func TestService_Generate_EmptyCandidates(t *testing.T) {
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := s.Generate(context.Background(), testInput())
	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestService_Generate_MalformedCandidateText(t *testing.T) {
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse("{not json")))
	})

	_, err := s.Generate(context.Background(), testInput())
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestService_Generate_IncompleteCopyRejected(t *testing.T) {
	// structurally valid JSON with a blank required field
	doc := validCopyJSON(t)
	var parsed models.LandingPageCopy
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	parsed.Hero.Headline = ""
	broken, err := json.Marshal(parsed)
	require.NoError(t, err)

	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse(string(broken))))
	})

	_, err = s.Generate(context.Background(), testInput())
	require.ErrorIs(t, err, ErrGenerationFailed, "a document violating the content contract must be rejected")
}

func TestService_RegenerateSection_Success(t *testing.T) {
	rewritten := models.HeroSection{
		Headline:     "Punchier",
		Subheadline:  "s",
		CTAPrimary:   "p",
		CTASecondary: "s",
	}
	rewrittenJSON, err := json.Marshal(rewritten)
	require.NoError(t, err)

	var gotBody generateRequest
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(candidateResponse(string(rewrittenJSON))))
	})

	current := &models.HeroSection{Headline: "Old", Subheadline: "s", CTAPrimary: "p", CTASecondary: "s"}

	got, err := s.RegenerateSection(context.Background(), models.SectionHero, current, testInput())
	require.NoError(t, err)

	hero, ok := got.(*models.HeroSection)
	require.True(t, ok)
	assert.Equal(t, "Punchier", hero.Headline)

	assert.Nil(t, gotBody.GenerationConfig.ResponseSchema, "section rewrites send no schema")
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Make it punchier and more conversion focused.")
	assert.Contains(t, prompt, `"headline":"Old"`, "current content is embedded in the prompt")
}

func TestService_RegenerateSection_FallsBackOnAPIError(t *testing.T) {
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusForbidden)
	})

	current := &models.HeroSection{Headline: "Old", Subheadline: "s", CTAPrimary: "p", CTASecondary: "s"}

	got, err := s.RegenerateSection(context.Background(), models.SectionHero, current, testInput())
	require.NoError(t, err, "regeneration is best-effort")
	assert.Same(t, models.SectionContent(current), got)
}

func TestService_RegenerateSection_FallsBackOnInvalidContent(t *testing.T) {
	// the API answers with a blank headline, violating the contract
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse(`{"headline":"","subheadline":"s","ctaPrimary":"p","ctaSecondary":"s"}`)))
	})

	current := &models.HeroSection{Headline: "Old", Subheadline: "s", CTAPrimary: "p", CTASecondary: "s"}

	got, err := s.RegenerateSection(context.Background(), models.SectionHero, current, testInput())
	require.NoError(t, err)
	assert.Same(t, models.SectionContent(current), got)
}

func TestService_RegenerateSection_FallsBackWithoutAPIKey(t *testing.T) {
	s := NewService(&Config{BaseURL: "http://localhost:0", Model: "m", Timeout: time.Second}, logger.Nop())

	current := &models.CTASection{Headline: "h", Subheadline: "s", ButtonText: "b"}

	got, err := s.RegenerateSection(context.Background(), models.SectionCTA, current, testInput())
	require.NoError(t, err)
	assert.Same(t, models.SectionContent(current), got)
}
