package generator

import (
	"context"

	"github.com/mlevkin/launchcopy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator produces landing page copy for a product brief.
type Generator interface {
	// Generate creates a complete eight-section landing page copy
	// document. It never returns a partially populated document: any
	// failure yields a nil document and an error wrapping
	// [ErrGenerationFailed].
	Generate(ctx context.Context, input models.ProductInput) (*models.LandingPageCopy, error)

	// RegenerateSection rewrites a single section, keeping the rest of
	// the document untouched. Regeneration is best-effort: on any
	// failure the current content is returned unchanged.
	RegenerateSection(ctx context.Context, name models.SectionName, current models.SectionContent, input models.ProductInput) (models.SectionContent, error)
}
