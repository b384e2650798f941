package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
	"github.com/oksasatya/go-user-admin/internal/domain/repository"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *entity.Address) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

func (r *AddressRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Address{}).Error; err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func (r *AddressRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Address{}).Error; err != nil {
		return fmt.Errorf("delete addresses for user: %w", err)
	}
	return nil
}

var _ repository.AddressRepository = (*AddressRepository)(nil)
