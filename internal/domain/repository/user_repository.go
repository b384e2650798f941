package repository

import (
	"context"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
)

// ListFilter narrows and pages the user listing. Zero values mean "no
// constraint": an empty Query skips the name match, a nil Newsletter skips
// the flag match.
type ListFilter struct {
	Query      string
	Newsletter *bool
	Offset     int
	Limit      int
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// List returns one page of users ordered by creation time descending,
	// plus the total number of rows matching the filter.
	List(ctx context.Context, f ListFilter) ([]entity.User, int64, error)
	// GetByID loads a user with its addresses in storage order.
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	// GetByIDNewestAddresses loads a user with its addresses ordered by
	// creation time descending.
	GetByIDNewestAddresses(ctx context.Context, id uint) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	// Update writes name, occupation and newsletter for the row matching
	// u.ID. A missing row is not an error.
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id uint) error
}
