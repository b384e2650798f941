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
	ErrNameTooShort = errors.New("name must be at least 2 characters")
)

// ListParams selects one page of the user listing. Page and Limit below 1
// are coerced to 1, matching the parameter defaults at the HTTP layer.
type ListParams struct {
	Page       int
	Limit      int
	Query      string
	Newsletter *bool
}

// ListResult carries one listing page plus the numbers the pagination
// controls need.
type ListResult struct {
	Users      []entity.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type UserService struct {
	Users     repository.UserRepository
	Addresses repository.AddressRepository
}

func NewUserService(users repository.UserRepository, addresses repository.AddressRepository) *UserService {
	return &UserService{Users: users, Addresses: addresses}
}

// List runs the combined count-and-fetch. TotalPages is ceil(Total/Limit),
// and the returned page never holds more than Limit users.
func (s *UserService) List(ctx context.Context, p ListParams) (ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}

	users, total, err := s.Users.List(ctx, repository.ListFilter{
		Query:      p.Query,
		Newsletter: p.Newsletter,
		Offset:     (p.Page - 1) * p.Limit,
		Limit:      p.Limit,
	})
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Users:      users,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}, nil
}

// Get loads a user with its addresses in storage order.
func (s *UserService) Get(ctx context.Context, id uint) (*entity.User, error) {
	return s.Users.GetByID(ctx, id)
}

// GetForEdit loads a user with its addresses newest first.
func (s *UserService) GetForEdit(ctx context.Context, id uint) (*entity.User, error) {
	return s.Users.GetByIDNewestAddresses(ctx, id)
}

type CreateUserInput struct {
	Name       string
	Occupation string
	Newsletter bool
}

// Create persists a new user. The name is trimmed and must keep at least 2
// characters; the occupation is trimmed and stored as NULL when empty.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, ErrNameTooShort
	}

	u := &entity.User{
		Name:       name,
		Occupation: trimOrNil(in.Occupation),
		Newsletter: in.Newsletter,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	ID         uint
	Name       string
	Occupation string
	Newsletter bool
}

// Update rewrites name, occupation and newsletter for the matching row.
// Updating a user that no longer exists is not an error.
func (s *UserService) Update(ctx context.Context, in UpdateUserInput) error {
	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < 2 {
		return ErrNameTooShort
	}

	return s.Users.Update(ctx, &entity.User{
		ID:         in.ID,
		Name:       name,
		Occupation: trimOrNil(in.Occupation),
		Newsletter: in.Newsletter,
	})
}

// Delete removes a user together with its addresses. The address delete runs
// first and a failure there aborts the user delete; the two statements are
// not wrapped in a transaction, so a crash in between can leave the user row
// without its addresses.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.Addresses.DeleteByUser(ctx, id); err != nil {
		return err
	}
	return s.Users.Delete(ctx, id)
}

// trimOrNil trims s and maps the empty result to NULL.
func trimOrNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
