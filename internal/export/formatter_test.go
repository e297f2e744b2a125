// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkin/launchcopy/models"
)

func sampleProject() models.Project {
	return models.Project{
		ID:        "p-1",
		UserID:    "u-1",
		Name:      "Acme Launch",
		UpdatedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Input: models.ProductInput{
			Name:       "Acme",
			Audience:   "indie hackers",
			Problem:    "slow launches",
			Features:   "speed, templates",
			Tone:       models.ToneBold,
			ColorTheme: models.ThemeIndigo,
		},
		Copy: &models.LandingPageCopy{
			Hero: models.HeroSection{
				Headline:     "Meet Acme",
				Subheadline:  "Launch in a day",
				CTAPrimary:   "Start",
				CTASecondary: "Learn more",
			},
			Problem: models.ProblemSection{
				Headline:    "Sound familiar?",
				Description: "Launching takes weeks",
				PainPoints:  []string{"endless copywriting", "design paralysis", "missed deadlines"},
			},
			Solution: models.SolutionSection{Headline: "Acme fixes this", Description: "One tool"},
			Features: models.FeaturesSection{
				Headline: "Everything you need",
				Items: []models.FeatureItem{
					{Title: "Fast", Description: "minutes not weeks"},
					{Title: "Simple", Description: "no designer needed"},
					{Title: "Yours", Description: "export everything"},
				},
			},
			HowItWorks: models.HowItWorksSection{
				Headline: "How it works",
				Steps: []models.Step{
					{Title: "Describe", Description: "your product"},
					{Title: "Generate", Description: "the copy"},
					{Title: "Launch", Description: "the page"},
				},
			},
			SocialProof: models.SocialProofSection{
				Headline: "Loved by makers",
				Testimonials: []models.Testimonial{
					{Name: "Alex", Role: "Founder", Quote: "Saved my launch"},
					{Name: "Sam", Role: "PM", Quote: "Shockingly good"},
					{Name: "Jordan", Role: "Dev", Quote: "I ship faster"},
				},
			},
			FAQ: models.FAQSection{
				Headline: "Questions",
				Items: []models.FAQItem{
					{Question: "Is it free?", Answer: "To start, yes"},
					{Question: "Can I edit?", Answer: "Everything"},
					{Question: "Refunds?", Answer: "Within 30 days"},
				},
			},
			CTA: models.CTASection{Headline: "Ready?", Subheadline: "Join today", ButtonText: "Start now"},
		},
	}
}

func TestFormat_Header(t *testing.T) {
	got := Format(sampleProject())

	want := "LAUNCHCOPY EXPORT: Acme Launch\n" +
		"Target Audience: indie hackers\n" +
		"Tone: Bold\n" +
		"Generated at: 2026-03-14 09:26:53 UTC\n\n"

	assert.True(t, strings.HasPrefix(got, want), "export must start with the header block, got:\n%s", got)
}

func TestFormat_SectionBlocks(t *testing.T) {
	got := Format(sampleProject())

	heroBlock := "=== HERO ===\n" +
		"HEADLINE: Meet Acme\n" +
		"SUBHEADLINE: Launch in a day\n" +
		"CTAPRIMARY: Start\n" +
		"CTASECONDARY: Learn more\n\n"
	assert.Contains(t, got, heroBlock)

	problemBlock := "=== PROBLEM ===\n" +
		"HEADLINE: Sound familiar?\n" +
		"DESCRIPTION: Launching takes weeks\n" +
		"PAINPOINTS:\n" +
		"  - endless copywriting\n" +
		"  - design paralysis\n" +
		"  - missed deadlines\n\n"
	assert.Contains(t, got, problemBlock)

	socialBlock := "=== SOCIAL PROOF ===\n" +
		"HEADLINE: Loved by makers\n" +
		"TESTIMONIALS:\n" +
		"  - Alex: Founder: Saved my launch\n" +
		"  - Sam: PM: Shockingly good\n" +
		"  - Jordan: Dev: I ship faster\n\n"
	assert.Contains(t, got, socialBlock)
}

func TestFormat_SectionOrder(t *testing.T) {
	got := Format(sampleProject())

	titles := []string{
		"=== HERO ===",
		"=== PROBLEM ===",
		"=== SOLUTION ===",
		"=== FEATURES ===",
		"=== HOW IT WORKS ===",
		"=== SOCIAL PROOF ===",
		"=== FAQ ===",
		"=== CALL TO ACTION ===",
	}

	prev := -1
	for _, title := range titles {
		idx := strings.Index(got, title)
		require.GreaterOrEqual(t, idx, 0, "missing block %q", title)
		assert.Greater(t, idx, prev, "block %q out of order", title)
		prev = idx
	}
}

func TestFormat_Deterministic(t *testing.T) {
	project := sampleProject()
	assert.Equal(t, Format(project), Format(project))
}

func TestFormat_NilCopy(t *testing.T) {
	project := sampleProject()
	project.Copy = nil

	got := Format(project)
	assert.NotContains(t, got, "===", "header only when copy is absent")
	assert.True(t, strings.HasSuffix(got, "\n\n"))
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme Launch", "Acme_Launch_copy.txt"},
		{"Acme", "Acme_copy.txt"},
		{"  spaced   out  ", "spaced_out_copy.txt"},
		{"tabs\tand\nnewlines", "tabs_and_newlines_copy.txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.name))
	}
}
