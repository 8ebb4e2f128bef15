package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reading-prefs-go/internal/common"
	"reading-prefs-go/internal/models"
)

// Repository persists users. Create must fail with common.ErrDuplicateIdentity
// when the email is already taken; FindByEmail returns common.ErrNotFound when
// nothing matches.
type Repository interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return common.ErrDuplicateIdentity
	default:
		return fmt.Errorf("insert user: %w", err)
	}
}

func (r *GormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}
