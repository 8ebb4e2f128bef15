package preferences

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reading-prefs-go/internal/common"
	"reading-prefs-go/internal/models"
)

// Repository persists preference records.
//
// Upsert inserts row when no record exists for row.UserID; otherwise it
// overwrites only the named columns of the existing record. Either way it
// must be a single atomic statement and must leave the resulting record in
// row.
type Repository interface {
	Upsert(ctx context.Context, row *models.Preference, columns []string) error
	FindByUserID(ctx context.Context, userID string) (*models.Preference, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Upsert issues INSERT ... ON CONFLICT (user_id) DO UPDATE SET <columns>,
// updated_at ... RETURNING *, leaning on the unique index on user_id so two
// first writes for one user cannot both insert.
func (r *GormRepository) Upsert(ctx context.Context, row *models.Preference, columns []string) error {
	updates := append(append([]string{}, columns...), "updated_at")
	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns(updates),
			},
			clause.Returning{},
		).
		Create(row).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return common.NewValidationError("unknown userId")
	default:
		return fmt.Errorf("upsert preference: %w", err)
	}
}

func (r *GormRepository) FindByUserID(ctx context.Context, userID string) (*models.Preference, error) {
	var p models.Preference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find preference: %w", err)
	}
	return &p, nil
}
