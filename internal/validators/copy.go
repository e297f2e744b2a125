package validators

import (
	"context"
	"fmt"

	"github.com/mlevkin/launchcopy/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldProductName = "name"
	FieldAudience    = "audience"
	FieldProblem     = "problem"
	FieldFeatures    = "features"
	FieldTone        = "tone"
	FieldColorTheme  = "color_theme"
)

// CopyValidator validates product briefs and generated landing page copy.
type CopyValidator struct {
}

// NewCopyValidator returns a [Validator] for [models.ProductInput],
// [models.LandingPageCopy] and single [models.SectionContent] values.
func NewCopyValidator() Validator {
	return &CopyValidator{}
}

func (v *CopyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProductInput:
		return v.validateProductInput(ctx, value, fields...)
	case *models.ProductInput:
		return v.validateProductInput(ctx, *value, fields...)

	case *models.LandingPageCopy:
		return v.validateCopy(ctx, value, fields...)

	case models.SectionContent:
		return v.validateSection(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CopyValidator) validateProductInput(_ context.Context, input models.ProductInput, fields ...string) error {
	// Features are optional in a brief: the prompt mentions them only when
	// present. They are checked only when requested explicitly.
	if len(fields) == 0 {
		fields = []string{FieldProductName, FieldAudience, FieldProblem, FieldTone, FieldColorTheme}
	}

	for _, f := range fields {
		switch f {
		case FieldProductName:
			if input.Name == "" {
				return ErrEmptyProductName
			}
		case FieldAudience:
			if input.Audience == "" {
				return ErrEmptyAudience
			}
		case FieldProblem:
			if input.Problem == "" {
				return ErrEmptyProblem
			}
		case FieldFeatures:
			if input.Features == "" {
				return ErrEmptyFeatures
			}
		case FieldTone:
			if !input.Tone.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidTone, input.Tone)
			}
		case FieldColorTheme:
			if !input.ColorTheme.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidTheme, input.ColorTheme)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	return nil
}

// validateCopy checks that every section of the page is present and fully
// populated. Passing section names as fields restricts the check to those
// sections.
func (v *CopyValidator) validateCopy(_ context.Context, copyDoc *models.LandingPageCopy, fields ...string) error {
	sections := models.SectionOrder
	if len(fields) > 0 {
		sections = make([]models.SectionName, 0, len(fields))
		for _, f := range fields {
			name := models.SectionName(f)
			if !name.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownField, f)
			}
			sections = append(sections, name)
		}
	}

	for _, name := range sections {
		section, ok := copyDoc.Section(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingSection, name)
		}

		if err := v.validateSection(section); err != nil {
			return err
		}
	}

	return nil
}

// validateSection requires every scalar to be non-empty and every list and
// row set to carry at least one non-empty entry.
func (v *CopyValidator) validateSection(section models.SectionContent) error {
	name := section.SectionName()

	for _, field := range section.Fields() {
		switch {
		case field.Scalar():
			if field.Value == "" {
				return fmt.Errorf("%w: %s.%s", ErrEmptyCopyField, name, field.Key)
			}
		case field.List != nil:
			if len(field.List) == 0 {
				return fmt.Errorf("%w: %s.%s", ErrEmptyCopyField, name, field.Key)
			}
			for _, item := range field.List {
				if item == "" {
					return fmt.Errorf("%w: %s.%s", ErrEmptyCopyField, name, field.Key)
				}
			}
		default:
			if len(field.Rows) == 0 {
				return fmt.Errorf("%w: %s.%s", ErrEmptyCopyField, name, field.Key)
			}
			for _, row := range field.Rows {
				for _, cell := range row {
					if cell == "" {
						return fmt.Errorf("%w: %s.%s", ErrEmptyCopyField, name, field.Key)
					}
				}
			}
		}
	}

	return nil
}
