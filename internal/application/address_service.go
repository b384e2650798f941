package application

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
	"github.com/oksasatya/go-user-admin/internal/domain/repository"
)

var (
	ErrStreetTooShort = errors.New("street must be at least 5 characters")
	ErrCityTooShort   = errors.New("city must be at least 2 characters")
)

type AddressService struct {
	Addresses repository.AddressRepository
}

func NewAddressService(addresses repository.AddressRepository) *AddressService {
	return &AddressService{Addresses: addresses}
}

type CreateAddressInput struct {
	UserID uint
	Street string
	Number string
	City   string
}

// Create persists a new address for a user. Street and city are trimmed and
// must keep 5 and 2 characters; the house number is trimmed and stored as
// NULL when empty.
func (s *AddressService) Create(ctx context.Context, in CreateAddressInput) (*entity.Address, error) {
	street := strings.TrimSpace(in.Street)
	if utf8.RuneCountInString(street) < 5 {
		return nil, ErrStreetTooShort
	}
	city := strings.TrimSpace(in.City)
	if utf8.RuneCountInString(city) < 2 {
		return nil, ErrCityTooShort
	}

	a := &entity.Address{
		Street: street,
		Number: trimOrNil(in.Number),
		City:   city,
		UserID: in.UserID,
	}
	if err := s.Addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes a single address by id. Deleting an address that no longer
// exists is not an error.
func (s *AddressService) Delete(ctx context.Context, id uint) error {
	return s.Addresses.DeleteByID(ctx, id)
}
