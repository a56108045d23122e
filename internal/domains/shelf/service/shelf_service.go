package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf"
)

// ShelfService - read-status operations over the repository
type ShelfService struct {
	repo shelf.Repository
}

// NewService - constructor with DI
func NewService(repo shelf.Repository) *ShelfService {
	return &ShelfService{repo: repo}
}

// Status returns the current read mark; a missing entry is "not read".
func (s *ShelfService) Status(ctx context.Context, userID string, bookID int) (bool, error) {
	read, err := s.repo.Status(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, shelf.ErrEntryNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("shelf status: %w", err)
	}
	return read, nil
}

// Statuses bulk-loads all read marks of one user.
func (s *ShelfService) Statuses(ctx context.Context, userID string) (map[int]bool, error) {
	marks, err := s.repo.Statuses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("shelf statuses: %w", err)
	}
	return marks, nil
}

// Toggle flips the read mark and persists it, returning the new value.
// Toggling twice always restores the original state.
func (s *ShelfService) Toggle(ctx context.Context, userID string, bookID int) (bool, error) {
	cur, err := s.Status(ctx, userID, bookID)
	if err != nil {
		return false, err
	}

	next := !cur
	if err := s.repo.SetStatus(ctx, userID, bookID, next); err != nil {
		return cur, fmt.Errorf("shelf set status: %w", err)
	}
	return next, nil
}
