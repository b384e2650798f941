package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-user-admin/config"
	"github.com/oksasatya/go-user-admin/internal/domain/entity"
	"github.com/oksasatya/go-user-admin/internal/infrastructure/postgres"
)

type addressSeed struct {
	Street string
	Number string
	City   string
}

type userSeed struct {
	Name       string
	Occupation string
	Newsletter bool
	Addresses  []addressSeed
}

var seeds = []userSeed{
	{
		Name:       "Ada Lovelace",
		Occupation: "Mathematician",
		Newsletter: true,
		Addresses: []addressSeed{
			{Street: "St James's Square", Number: "12", City: "London"},
			{Street: "Great Russell Street", City: "London"},
		},
	},
	{
		Name:       "Grace Hopper",
		Occupation: "Rear Admiral",
		Newsletter: true,
		Addresses: []addressSeed{
			{Street: "Constitution Avenue", Number: "101", City: "Arlington"},
		},
	},
	{
		Name:       "Alan Turing",
		Occupation: "Cryptanalyst",
		Newsletter: false,
		Addresses: []addressSeed{
			{Street: "Bletchley Park Road", Number: "1", City: "Milton Keynes"},
		},
	},
	{
		Name:       "Margaret Hamilton",
		Newsletter: false,
	},
}

// Seeds a handful of demo users with addresses. Safe to run repeatedly: rows
// are matched by name (users) and by street within a user (addresses).
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.PostgresDSN(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLife)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	for _, s := range seeds {
		user := entity.User{Name: s.Name, Newsletter: s.Newsletter}
		if s.Occupation != "" {
			occ := s.Occupation
			user.Occupation = &occ
		}
		if err := db.WithContext(ctx).
			Where("name = ?", s.Name).
			FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("failed to seed user %q: %v", s.Name, err)
		}

		for _, a := range s.Addresses {
			addr := entity.Address{Street: a.Street, City: a.City, UserID: user.ID}
			if a.Number != "" {
				num := a.Number
				addr.Number = &num
			}
			if err := db.WithContext(ctx).
				Where("user_id = ? AND street = ?", user.ID, a.Street).
				FirstOrCreate(&addr).Error; err != nil {
				log.Fatalf("failed to seed address %q for %q: %v", a.Street, s.Name, err)
			}
		}
		fmt.Printf("seeded user: id=%d name=%s addresses=%d\n", user.ID, user.Name, len(s.Addresses))
	}
}
