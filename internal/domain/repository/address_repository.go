package repository

import (
	"context"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	// DeleteByID removes the address matching id. A missing row is not an error.
	DeleteByID(ctx context.Context, id uint) error
	// DeleteByUser removes every address owned by userID. Used as the first
	// step of the user cascade delete.
	DeleteByUser(ctx context.Context, userID uint) error
}
