package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
	"github.com/oksasatya/go-user-admin/internal/domain/repository"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// userFilter applies the optional name and newsletter predicates so the
// count and the page fetch always see the same conditions.
func userFilter(f repository.ListFilter) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.Query != "" {
			tx = tx.Where("name LIKE ?", "%"+f.Query+"%")
		}
		if f.Newsletter != nil {
			tx = tx.Where("newsletter = ?", *f.Newsletter)
		}
		return tx
	}
}

func (r *UserRepository) List(ctx context.Context, f repository.ListFilter) ([]entity.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Scopes(userFilter(f)).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var users []entity.User
	err = r.db.WithContext(ctx).
		Scopes(userFilter(f)).
		Order("created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByIDNewestAddresses(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Preload("Addresses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		}).
		First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user for edit: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":       u.Name,
			"occupation": u.Occupation,
			"newsletter": u.Newsletter,
		}).Error
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{}).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
