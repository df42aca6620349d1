package service

import (
	"context"
)

// ResetService wipes a user's round history.
type ResetService struct {
	tr   Transactor
	repo ResetRepository
}

func NewResetService(tr Transactor, repo ResetRepository) *ResetService {
	return &ResetService{
		tr:   tr,
		repo: repo,
	}
}

func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.ResetUser(ctx, userID)
	})
}
