// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

// Package app contains shared application-layer constants used across the
// launchcopy server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUsernameTaken is returned when a registration request names a
	// username that already exists (case-insensitively).
	MsgUsernameTaken = "username already exists"

	// MsgInvalidCredentials is returned when the supplied username/password
	// combination does not match any existing user record.
	MsgInvalidCredentials = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgErrorListingProjects is returned when the project list cannot be
	// produced.
	MsgErrorListingProjects = "error listing projects"

	// MsgErrorGettingProject is returned when a single project cannot be
	// loaded.
	MsgErrorGettingProject = "error getting project"

	// MsgErrorSavingProject is returned when an upsert fails.
	MsgErrorSavingProject = "error saving project"

	// MsgErrorDeletingProject is returned when a delete fails.
	MsgErrorDeletingProject = "error deleting project"

	// MsgErrorGeneratingCopy is returned when the generation gateway cannot
	// produce a complete copy document.
	MsgErrorGeneratingCopy = "error generating copy"

	// MsgErrorRegeneratingSection is returned when a single-section rewrite
	// fails before reaching the generator.
	MsgErrorRegeneratingSection = "error regenerating section"

	// MsgErrorExportingProject is returned when the text export cannot be
	// rendered.
	MsgErrorExportingProject = "error exporting project"
)
