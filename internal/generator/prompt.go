package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mlevkin/launchcopy/models"
)

// buildGenerationPrompt assembles the full-page prompt from the product
// brief. The structural instructions (exact item counts, schema adherence)
// keep the API output decodable into the fixed content contract.
func buildGenerationPrompt(input models.ProductInput) string {
	var b strings.Builder

	b.WriteString("You are an expert conversion copywriter.\n")
	b.WriteString("Create a high-converting landing page structure and copy for the following product:\n\n")

	fmt.Fprintf(&b, "Product Name: %s\n", input.Name)
	fmt.Fprintf(&b, "Target Audience: %s\n", input.Audience)
	fmt.Fprintf(&b, "Problem Solved: %s\n", input.Problem)
	if input.Features != "" {
		fmt.Fprintf(&b, "Key Features: %s\n", input.Features)
	}
	fmt.Fprintf(&b, "Desired Tone: %s\n", input.Tone)

	b.WriteString(`
Instructions:
1. Infer 3 key product features that solve the user's problem effectively.
2. The copy should be benefit-driven, concise, and persuasive. Avoid fluff.
3. IMPORTANT: The "problem" section must contain EXACTLY 3 distinct pain points.
4. IMPORTANT: The "features" section must contain EXACTLY 3 items.
5. IMPORTANT: The "socialProof" section must contain EXACTLY 3 testimonials.
6. Include a FAQ section with 3-5 relevant questions and answers.
7. Structure the response exactly according to the provided JSON schema.
`)

	return b.String()
}

// buildSectionPrompt assembles the single-section rewrite prompt. The
// current content is embedded so the API preserves the section's JSON shape.
func buildSectionPrompt(name models.SectionName, current models.SectionContent, input models.ProductInput) (string, error) {
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return "", fmt.Errorf("encoding current section content: %w", err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Rewrite the following %s section for %s.\n", name, input.Name)
	fmt.Fprintf(&b, "Current Content: %s\n", currentJSON)
	fmt.Fprintf(&b, "Tone: %s\n\n", input.Tone)

	b.WriteString("Make it punchier and more conversion focused.\n")
	b.WriteString("Return ONLY valid JSON matching the structure of the input content.\n")

	return b.String(), nil
}
