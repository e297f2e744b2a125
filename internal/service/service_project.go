// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevkin/launchcopy/internal/export"
	"github.com/mlevkin/launchcopy/internal/generator"
	"github.com/mlevkin/launchcopy/internal/logger"
	"github.com/mlevkin/launchcopy/internal/store"
	"github.com/mlevkin/launchcopy/internal/utils"
	"github.com/mlevkin/launchcopy/internal/validators"
	"github.com/mlevkin/launchcopy/models"
)

// projectService is the concrete implementation of ProjectService. Every
// operation is scoped to the user the session pointer names; the degraded
// behaviors mirror the original store contract: listing without a session
// yields an empty list, saving or deleting without one is a logged no-op.
type projectService struct {
	projectRepository store.ProjectRepository
	sessionRepository store.SessionRepository
	generator         generator.Generator
	validator         validators.Validator
	logger            *logger.Logger
}

// NewProjectService constructs a ProjectService over the given repositories
// and copy generator.
func NewProjectService(projectRepository store.ProjectRepository, sessionRepository store.SessionRepository, gen generator.Generator, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		sessionRepository: sessionRepository,
		generator:         gen,
		validator:         validators.NewCopyValidator(),
		logger:            logger,
	}
}

// ListProjects returns the current user's projects, newest first. Without an
// active session, or when the storage cannot be read, it returns an empty
// list rather than an error.
func (p *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	user, err := p.sessionRepository.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoActiveSession) {
			log.Err(err).Msg("reading session failed, listing no projects")
		}
		return []models.Project{}, nil
	}

	projects, err := p.projectRepository.ListProjects(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("userID", user.ID).Msg("listing projects failed")
		return []models.Project{}, nil
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// GetProject returns the current user's project with the given id. A
// missing session and a foreign or unknown id both surface as
// store.ErrProjectNotFound.
func (p *projectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	user, err := p.sessionRepository.GetSession(ctx)
	if err != nil {
		return models.Project{}, store.ErrProjectNotFound
	}

	return p.projectRepository.GetProject(ctx, user.ID, id)
}

// SaveProject upserts a project for the current user. The owner is always
// forced to the session user, whatever the input claims. A project without
// an id gets a fresh one. Without an active session the save is silently
// skipped and the input is returned unchanged.
func (p *projectService) SaveProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	user, err := p.sessionRepository.GetSession(ctx)
	if err != nil {
		log.Warn().Str("projectID", project.ID).Msg("no active session, project not saved")
		return project, nil
	}

	if project.Name == "" {
		return models.Project{}, fmt.Errorf("%w: project name is required", ErrInvalidDataProvided)
	}

	if project.ID == "" {
		project.ID = utils.NewID()
	}
	project.UserID = user.ID

	saved, err := p.projectRepository.SaveProject(ctx, project)
	if err != nil {
		log.Err(err).Str("projectID", project.ID).Msg("saving project failed")
		return models.Project{}, fmt.Errorf("saving project failed: %w", err)
	}

	return saved, nil
}

// DeleteProject removes the current user's project with the given id.
// Unknown ids, foreign ids and a missing session are all no-ops.
func (p *projectService) DeleteProject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	user, err := p.sessionRepository.GetSession(ctx)
	if err != nil {
		log.Warn().Str("projectID", id).Msg("no active session, nothing deleted")
		return nil
	}

	if err := p.projectRepository.DeleteProject(ctx, user.ID, id); err != nil {
		log.Err(err).Str("projectID", id).Msg("deleting project failed")
		return fmt.Errorf("deleting project failed: %w", err)
	}

	return nil
}

// Generate produces a complete copy document for the brief and persists it
// as a new project owned by the current user. The project name defaults to
// the product name.
func (p *projectService) Generate(ctx context.Context, name string, input models.ProductInput) (models.Project, error) {
	log := logger.FromContext(ctx)

	if _, err := p.sessionRepository.GetSession(ctx); err != nil {
		return models.Project{}, ErrNotAuthenticated
	}

	if err := p.validator.Validate(ctx, input); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	copyDoc, err := p.generator.Generate(ctx, input)
	if err != nil {
		log.Err(err).Str("product", input.Name).Msg("copy generation failed")
		return models.Project{}, err
	}

	if name == "" {
		name = input.Name
	}

	return p.SaveProject(ctx, models.Project{
		Name:  name,
		Input: input,
		Copy:  copyDoc,
	})
}

// RegenerateSection rewrites one section of an existing project's copy and
// persists the result. Regeneration is best-effort: when the generator
// cannot improve the section, the project is returned unchanged.
func (p *projectService) RegenerateSection(ctx context.Context, id string, section models.SectionName) (models.Project, error) {
	log := logger.FromContext(ctx)

	if !section.Valid() {
		return models.Project{}, fmt.Errorf("%w: unknown section %q", ErrInvalidDataProvided, section)
	}

	project, err := p.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	if project.Copy == nil {
		return models.Project{}, fmt.Errorf("%w: project has no generated copy", ErrInvalidDataProvided)
	}

	current, _ := project.Copy.Section(section)

	rewritten, err := p.generator.RegenerateSection(ctx, section, current, project.Input)
	if err != nil {
		log.Err(err).Str("projectID", id).Str("section", string(section)).Msg("section regeneration failed")
		return models.Project{}, err
	}

	if rewritten == current {
		return project, nil
	}

	project.Copy.SetSection(section, rewritten)

	return p.SaveProject(ctx, project)
}

// Export renders the project's copy as a flat text document with its
// download filename.
func (p *projectService) Export(ctx context.Context, id string) (models.Export, error) {
	project, err := p.GetProject(ctx, id)
	if err != nil {
		return models.Export{}, err
	}

	return models.Export{
		FileName: export.FileName(project.Name),
		Content:  export.Format(project),
	}, nil
}
