// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

// Package export renders a project's landing page copy as a flat text
// document. The output is a pure function of the project: the same project
// always formats to the same bytes.
package export

import (
	"fmt"
	"strings"

	"github.com/mlevkin/launchcopy/models"
)

// timestampLayout renders the project's UpdatedAt in the export header.
const timestampLayout = "2006-01-02 15:04:05 MST"

// Format renders the project's copy as a text document: a header with the
// project name, audience, tone and generation timestamp, followed by one
// block per section in canonical order. Section titles are framed with
// `=== TITLE ===`; scalars print as `KEY: value`, list and row fields as a
// `KEY:` line followed by `  - ` items, row values joined with `: `.
func Format(project models.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "LAUNCHCOPY EXPORT: %s\n", project.Name)
	fmt.Fprintf(&b, "Target Audience: %s\n", project.Input.Audience)
	fmt.Fprintf(&b, "Tone: %s\n", project.Input.Tone)
	fmt.Fprintf(&b, "Generated at: %s\n\n", project.UpdatedAt.UTC().Format(timestampLayout))

	if project.Copy == nil {
		return b.String()
	}

	for _, section := range project.Copy.Sections() {
		formatSection(&b, section)
	}

	return b.String()
}

func formatSection(b *strings.Builder, section models.SectionContent) {
	fmt.Fprintf(b, "=== %s ===\n", strings.ToUpper(section.SectionName().Title()))

	for _, field := range section.Fields() {
		key := strings.ToUpper(field.Key)

		switch {
		case field.Scalar():
			fmt.Fprintf(b, "%s: %s\n", key, field.Value)
		case field.List != nil:
			fmt.Fprintf(b, "%s:\n", key)
			for _, item := range field.List {
				fmt.Fprintf(b, "  - %s\n", item)
			}
		default:
			fmt.Fprintf(b, "%s:\n", key)
			for _, row := range field.Rows {
				fmt.Fprintf(b, "  - %s\n", strings.Join(row, ": "))
			}
		}
	}

	b.WriteString("\n")
}

// FileName derives the download filename from the project name: whitespace
// runs collapse to single underscores and a `_copy.txt` suffix is appended.
func FileName(projectName string) string {
	return strings.Join(strings.Fields(projectName), "_") + "_copy.txt"
}
