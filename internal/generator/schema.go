package generator

// Response schema sent with every full generation request. It mirrors the
// eight-section content contract in models so the API is constrained to
// return exactly the JSON shape the application decodes.

func stringProp() map[string]any {
	return map[string]any{"type": "STRING"}
}

func objectProp(props map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "OBJECT",
		"properties": props,
		"required":   required,
	}
}

func arrayProp(items map[string]any) map[string]any {
	return map[string]any{
		"type":  "ARRAY",
		"items": items,
	}
}

func titledItem() map[string]any {
	return objectProp(map[string]any{
		"title":       stringProp(),
		"description": stringProp(),
	}, "title", "description")
}

var landingPageSchema = objectProp(map[string]any{
	"hero": objectProp(map[string]any{
		"headline":     stringProp(),
		"subheadline":  stringProp(),
		"ctaPrimary":   stringProp(),
		"ctaSecondary": stringProp(),
	}, "headline", "subheadline", "ctaPrimary", "ctaSecondary"),

	"problem": objectProp(map[string]any{
		"headline":    stringProp(),
		"description": stringProp(),
		"painPoints":  arrayProp(stringProp()),
	}, "headline", "description", "painPoints"),

	"solution": objectProp(map[string]any{
		"headline":    stringProp(),
		"description": stringProp(),
	}, "headline", "description"),

	"features": objectProp(map[string]any{
		"headline": stringProp(),
		"items":    arrayProp(titledItem()),
	}, "headline", "items"),

	"howItWorks": objectProp(map[string]any{
		"headline": stringProp(),
		"steps":    arrayProp(titledItem()),
	}, "headline", "steps"),

	"socialProof": objectProp(map[string]any{
		"headline": stringProp(),
		"testimonials": arrayProp(objectProp(map[string]any{
			"name":  stringProp(),
			"role":  stringProp(),
			"quote": stringProp(),
		}, "name", "role", "quote")),
	}, "headline", "testimonials"),

	"faq": objectProp(map[string]any{
		"headline": stringProp(),
		"items": arrayProp(objectProp(map[string]any{
			"question": stringProp(),
			"answer":   stringProp(),
		}, "question", "answer")),
	}, "headline", "items"),

	"cta": objectProp(map[string]any{
		"headline":    stringProp(),
		"subheadline": stringProp(),
		"buttonText":  stringProp(),
	}, "headline", "subheadline", "buttonText"),
}, "hero", "problem", "solution", "features", "howItWorks", "socialProof", "faq", "cta")
