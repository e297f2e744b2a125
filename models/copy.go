package models

// SectionName identifies one of the eight fixed sections of a landing page.
type SectionName string

// The eight sections, in the order they appear on a generated page.
const (
	SectionHero        SectionName = "hero"
	SectionProblem     SectionName = "problem"
	SectionSolution    SectionName = "solution"
	SectionFeatures    SectionName = "features"
	SectionHowItWorks  SectionName = "howItWorks"
	SectionSocialProof SectionName = "socialProof"
	SectionFAQ         SectionName = "faq"
	SectionCTA         SectionName = "cta"
)

// SectionOrder is the canonical section ordering used by the exporter and
// the preview. The order is part of the content contract and never changes.
var SectionOrder = []SectionName{
	SectionHero,
	SectionProblem,
	SectionSolution,
	SectionFeatures,
	SectionHowItWorks,
	SectionSocialProof,
	SectionFAQ,
	SectionCTA,
}

// Valid reports whether n names one of the eight known sections.
func (n SectionName) Valid() bool {
	switch n {
	case SectionHero, SectionProblem, SectionSolution, SectionFeatures,
		SectionHowItWorks, SectionSocialProof, SectionFAQ, SectionCTA:
		return true
	}
	return false
}

// Title returns the human-readable block title of the section.
func (n SectionName) Title() string {
	switch n {
	case SectionHero:
		return "Hero"
	case SectionProblem:
		return "Problem"
	case SectionSolution:
		return "Solution"
	case SectionFeatures:
		return "Features"
	case SectionHowItWorks:
		return "How It Works"
	case SectionSocialProof:
		return "Social Proof"
	case SectionFAQ:
		return "FAQ"
	case SectionCTA:
		return "Call to Action"
	}
	return string(n)
}

// Field is one named field of a section, flattened for rendering.
// Exactly one of Value, List, or Rows is meaningful:
//   - Value for scalar fields,
//   - List for sequences of scalars,
//   - Rows for sequences of objects, each row holding the object's field
//     values in declaration order.
type Field struct {
	Key   string
	Value string
	List  []string
	Rows  [][]string
}

// Scalar reports whether the field carries a single scalar value.
func (f Field) Scalar() bool { return f.List == nil && f.Rows == nil }

// SectionContent is the tagged union over the eight section shapes.
// Fields exposes every field of the concrete shape in declaration order so
// that the exporter and the validators never enumerate struct members through
// reflection.
type SectionContent interface {
	SectionName() SectionName
	Fields() []Field
}

// HeroSection is the opening block of the page.
type HeroSection struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline"`
	CTAPrimary   string `json:"ctaPrimary"`
	CTASecondary string `json:"ctaSecondary"`
}

func (s *HeroSection) SectionName() SectionName { return SectionHero }

func (s *HeroSection) Fields() []Field {
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "subheadline", Value: s.Subheadline},
		{Key: "ctaPrimary", Value: s.CTAPrimary},
		{Key: "ctaSecondary", Value: s.CTASecondary},
	}
}

// ProblemSection names the pain the product addresses.
// PainPoints is expected to hold exactly three entries.
type ProblemSection struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	PainPoints  []string `json:"painPoints"`
}

func (s *ProblemSection) SectionName() SectionName { return SectionProblem }

func (s *ProblemSection) Fields() []Field {
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "description", Value: s.Description},
		{Key: "painPoints", List: s.PainPoints},
	}
}

// SolutionSection introduces the product as the answer to the problem.
type SolutionSection struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

func (s *SolutionSection) SectionName() SectionName { return SectionSolution }

func (s *SolutionSection) Fields() []Field {
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "description", Value: s.Description},
	}
}

// FeatureItem is a single titled feature.
type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturesSection lists the key features. Items is expected to hold exactly
// three entries.
type FeaturesSection struct {
	Headline string        `json:"headline"`
	Items    []FeatureItem `json:"items"`
}

func (s *FeaturesSection) SectionName() SectionName { return SectionFeatures }

func (s *FeaturesSection) Fields() []Field {
	rows := make([][]string, 0, len(s.Items))
	for _, it := range s.Items {
		rows = append(rows, []string{it.Title, it.Description})
	}
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "items", Rows: rows},
	}
}

// Step is one step of the how-it-works walkthrough.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HowItWorksSection walks the visitor through using the product.
type HowItWorksSection struct {
	Headline string `json:"headline"`
	Steps    []Step `json:"steps"`
}

func (s *HowItWorksSection) SectionName() SectionName { return SectionHowItWorks }

func (s *HowItWorksSection) Fields() []Field {
	rows := make([][]string, 0, len(s.Steps))
	for _, st := range s.Steps {
		rows = append(rows, []string{st.Title, st.Description})
	}
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "steps", Rows: rows},
	}
}

// Testimonial is a single attributed quote.
type Testimonial struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Quote string `json:"quote"`
}

// SocialProofSection carries testimonials. Expected to hold exactly three.
type SocialProofSection struct {
	Headline     string        `json:"headline"`
	Testimonials []Testimonial `json:"testimonials"`
}

func (s *SocialProofSection) SectionName() SectionName { return SectionSocialProof }

func (s *SocialProofSection) Fields() []Field {
	rows := make([][]string, 0, len(s.Testimonials))
	for _, t := range s.Testimonials {
		rows = append(rows, []string{t.Name, t.Role, t.Quote})
	}
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "testimonials", Rows: rows},
	}
}

// FAQItem is a single question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQSection carries the question list. Three to five entries are expected.
type FAQSection struct {
	Headline string    `json:"headline"`
	Items    []FAQItem `json:"items"`
}

func (s *FAQSection) SectionName() SectionName { return SectionFAQ }

func (s *FAQSection) Fields() []Field {
	rows := make([][]string, 0, len(s.Items))
	for _, it := range s.Items {
		rows = append(rows, []string{it.Question, it.Answer})
	}
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "items", Rows: rows},
	}
}

// CTASection is the closing call to action.
type CTASection struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	ButtonText  string `json:"buttonText"`
}

func (s *CTASection) SectionName() SectionName { return SectionCTA }

func (s *CTASection) Fields() []Field {
	return []Field{
		{Key: "headline", Value: s.Headline},
		{Key: "subheadline", Value: s.Subheadline},
		{Key: "buttonText", Value: s.ButtonText},
	}
}

// LandingPageCopy is the structured document produced by the generation
// gateway. It always carries exactly eight sections; the stores treat it as
// an opaque payload.
type LandingPageCopy struct {
	Hero        HeroSection        `json:"hero"`
	Problem     ProblemSection     `json:"problem"`
	Solution    SolutionSection    `json:"solution"`
	Features    FeaturesSection    `json:"features"`
	HowItWorks  HowItWorksSection  `json:"howItWorks"`
	SocialProof SocialProofSection `json:"socialProof"`
	FAQ         FAQSection         `json:"faq"`
	CTA         CTASection         `json:"cta"`
}

// Section returns the content of the named section, or false when the name
// is not one of the eight known sections. The returned value points into the
// receiver, so mutations through it are visible on the copy.
func (c *LandingPageCopy) Section(name SectionName) (SectionContent, bool) {
	switch name {
	case SectionHero:
		return &c.Hero, true
	case SectionProblem:
		return &c.Problem, true
	case SectionSolution:
		return &c.Solution, true
	case SectionFeatures:
		return &c.Features, true
	case SectionHowItWorks:
		return &c.HowItWorks, true
	case SectionSocialProof:
		return &c.SocialProof, true
	case SectionFAQ:
		return &c.FAQ, true
	case SectionCTA:
		return &c.CTA, true
	}
	return nil, false
}

// SetSection replaces the named section with content of the matching shape.
// Returns false when the name is unknown or the content's concrete type does
// not match the section.
func (c *LandingPageCopy) SetSection(name SectionName, content SectionContent) bool {
	if content == nil || content.SectionName() != name {
		return false
	}

	switch v := content.(type) {
	case *HeroSection:
		c.Hero = *v
	case *ProblemSection:
		c.Problem = *v
	case *SolutionSection:
		c.Solution = *v
	case *FeaturesSection:
		c.Features = *v
	case *HowItWorksSection:
		c.HowItWorks = *v
	case *SocialProofSection:
		c.SocialProof = *v
	case *FAQSection:
		c.FAQ = *v
	case *CTASection:
		c.CTA = *v
	default:
		return false
	}
	return true
}

// Sections returns all eight sections in canonical order.
func (c *LandingPageCopy) Sections() []SectionContent {
	return []SectionContent{
		&c.Hero,
		&c.Problem,
		&c.Solution,
		&c.Features,
		&c.HowItWorks,
		&c.SocialProof,
		&c.FAQ,
		&c.CTA,
	}
}

// EmptySection returns a zero-valued content holder for the named section,
// suitable as an unmarshal target. Returns false for unknown names.
func EmptySection(name SectionName) (SectionContent, bool) {
	switch name {
	case SectionHero:
		return &HeroSection{}, true
	case SectionProblem:
		return &ProblemSection{}, true
	case SectionSolution:
		return &SolutionSection{}, true
	case SectionFeatures:
		return &FeaturesSection{}, true
	case SectionHowItWorks:
		return &HowItWorksSection{}, true
	case SectionSocialProof:
		return &SocialProofSection{}, true
	case SectionFAQ:
		return &FAQSection{}, true
	case SectionCTA:
		return &CTASection{}, true
	}
	return nil, false
}
