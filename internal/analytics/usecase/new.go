package usecase

import (
	"sales-analytics-srv/internal/analytics"
	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/pkg/log"
)

const defaultTopPerformers = 10

type implUseCase struct {
	l    log.Logger
	repo repository.PostgresRepository
}

// New creates the analytics UseCase implementation. The repository is the
// only collaborator; it is injected, never reached through package state.
func New(l log.Logger, repo repository.PostgresRepository) analytics.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
