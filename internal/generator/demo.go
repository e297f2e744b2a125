package generator

import (
	"context"
	"fmt"

	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/models"
)

// DemoService is an offline [Generator] that assembles plausible copy from
// the product brief itself. It exists for local development and demos where
// no API key is available; selected with the demo_mode config flag.
type DemoService struct {
	logger *logger.Logger
}

// NewDemoService constructs the offline canned-copy generator.
func NewDemoService(log *logger.Logger) *DemoService {
	log.Info().Msg("copy generator running in demo mode")
	return &DemoService{logger: log}
}

// Generate implements [Generator]. It always succeeds.
func (s *DemoService) Generate(_ context.Context, input models.ProductInput) (*models.LandingPageCopy, error) {
	name := input.Name

	return &models.LandingPageCopy{
		Hero: models.HeroSection{
			Headline:     fmt.Sprintf("Meet %s", name),
			Subheadline:  fmt.Sprintf("The simplest way for %s to stop struggling with %s.", input.Audience, input.Problem),
			CTAPrimary:   "Get Started Free",
			CTASecondary: "See How It Works",
		},
		Problem: models.ProblemSection{
			Headline:    "Sound familiar?",
			Description: fmt.Sprintf("%s deal with %s every single day, and the usual workarounds only make it worse.", input.Audience, input.Problem),
			PainPoints: []string{
				"Hours lost to manual, repetitive busywork",
				"Tools that don't talk to each other",
				"No clear picture of what's actually working",
			},
		},
		Solution: models.SolutionSection{
			Headline:    fmt.Sprintf("%s fixes this", name),
			Description: fmt.Sprintf("%s gives %s one place to get it done, without the usual friction.", name, input.Audience),
		},
		Features: models.FeaturesSection{
			Headline: "Everything you need",
			Items: []models.FeatureItem{
				{Title: "Set up in minutes", Description: "No onboarding calls, no consultants. Sign up and go."},
				{Title: "Works with your stack", Description: "Connects to the tools you already use today."},
				{Title: "Insights that matter", Description: "See exactly what's moving the needle, at a glance."},
			},
		},
		HowItWorks: models.HowItWorksSection{
			Headline: "How it works",
			Steps: []models.Step{
				{Title: "Create your account", Description: "Takes less than a minute, no credit card required."},
				{Title: "Describe your product", Description: "Tell us what you're building and who it's for."},
				{Title: "Launch", Description: fmt.Sprintf("Let %s handle the rest while you focus on shipping.", name)},
			},
		},
		SocialProof: models.SocialProofSection{
			Headline: "Loved by early users",
			Testimonials: []models.Testimonial{
				{Name: "Alex Rivera", Role: "Founder", Quote: fmt.Sprintf("%s paid for itself in the first week.", name)},
				{Name: "Sam Chen", Role: "Product Lead", Quote: "The setup really is as fast as they claim."},
				{Name: "Jordan Okafor", Role: "Indie Hacker", Quote: "I stopped dreading this part of my week entirely."},
			},
		},
		FAQ: models.FAQSection{
			Headline: "Frequently asked questions",
			Items: []models.FAQItem{
				{Question: "Is there a free plan?", Answer: "Yes, you can start free and upgrade whenever you're ready."},
				{Question: "How long does setup take?", Answer: "Most users are up and running in under five minutes."},
				{Question: "Can I cancel anytime?", Answer: "Absolutely. No contracts, no lock-in."},
			},
		},
		CTA: models.CTASection{
			Headline:    fmt.Sprintf("Ready to try %s?", name),
			Subheadline: fmt.Sprintf("Join the %s who already made the switch.", input.Audience),
			ButtonText:  "Start Now",
		},
	}, nil
}

// RegenerateSection implements [Generator]. The demo provider has nothing
// new to say, so the current content is returned as-is.
func (s *DemoService) RegenerateSection(_ context.Context, _ models.SectionName, current models.SectionContent, _ models.ProductInput) (models.SectionContent, error) {
	return current, nil
}
