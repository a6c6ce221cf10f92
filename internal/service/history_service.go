package service

import (
	"context"
	"fmt"

	"tzlon-api/internal/models"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// HistoryService lists previously recorded conversions
type HistoryService struct {
	repo HistoryRepository
}

// HistoryRepository interface for dependency injection
type HistoryRepository interface {
	ListRecent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// NewHistoryService creates a new history service
func NewHistoryService(repo HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Recent returns up to limit conversions, newest first. A zero limit selects the default.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("service: invalid limit: %d", limit)
	}

	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list history: %w", err)
	}

	return entries, nil
}
