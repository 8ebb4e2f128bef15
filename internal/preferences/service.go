// Package preferences stores the per-user settings record: seeded with
// defaults on the first save, merged field by field afterwards.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"reading-prefs-go/internal/common"
	"reading-prefs-go/internal/logging"
	"reading-prefs-go/internal/models"
)

type Service struct {
	repo Repository
	log  logging.Logger
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Save upserts the record for userID. On first save every field the patch
// omits takes its default; on later saves omitted fields keep whatever is
// stored.
func (s *Service) Save(ctx context.Context, userID string, patch Patch) (*models.Preference, error) {
	id, err := canonicalUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	row := Defaults()
	row.ID = uuid.NewString()
	row.UserID = id
	cols := patch.applyTo(&row)

	if err := s.repo.Upsert(ctx, &row, cols); err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	s.log.Debug(ctx, "preferences saved", "user_id", id, "fields", len(cols))
	return &row, nil
}

// Get returns the stored record or common.ErrNotFound if the user has never
// saved one. Callers should fall back to client-side defaults in that case.
func (s *Service) Get(ctx context.Context, userID string) (*models.Preference, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return nil, common.ErrNotFound
	}
	p, err := s.repo.FindByUserID(ctx, parsed.String())
	if errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return p, nil
}

func canonicalUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", common.NewValidationError("userId required")
	}
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return "", common.NewValidationError("userId must be a UUID")
	}
	return parsed.String(), nil
}
