package repositories

import (
	"context"
	"errors"

	"github.com/Leerling-hub/Booking/domain"
	"gorm.io/gorm"
)

// UserRepository adds the username lookup used by login and the auth gate
type UserRepository interface {
	Repository[domain.User]
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type userRepository struct {
	Repository[domain.User]
	db *gorm.DB
}

// NewUserRepository creates the user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		Repository: NewRepository[domain.User](db),
		db:         db,
	}
}

// GetByUsername finds a user by username.
// Example: GetByUsername("user0") -> SELECT * FROM users WHERE username = 'user0'
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
