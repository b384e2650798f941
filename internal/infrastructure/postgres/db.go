package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
)

// Open connects to Postgres through the pgx stdlib driver and hands the
// connection to GORM. Pool limits live on the shared sql.DB handle, the only
// state shared between requests.
func Open(ctx context.Context, dsn string, maxOpen, maxIdle int, connMaxLife time.Duration) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLife)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate synchronizes the users and addresses tables with the entity
// definitions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.User{}, &entity.Address{})
}
