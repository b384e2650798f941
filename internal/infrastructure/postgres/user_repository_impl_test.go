package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
	"github.com/oksasatya/go-user-admin/internal/domain/repository"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "occupation", "newsletter", "created_at", "updated_at"})
}

func addressRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "street", "number", "city", "user_id", "created_at", "updated_at"})
}

func TestUserListFiltersAndPages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	nl := true
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE name LIKE \$1 AND newsletter = \$2`).
		WithArgs("%smith%", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE name LIKE \$1 AND newsletter = \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("%smith%", true, 2, 2).
		WillReturnRows(userRows().
			AddRow(3, "Agent Smith", nil, true, now, now).
			AddRow(4, "Jane Smith", "Engineer", true, now, now))

	users, total, err := repo.List(context.Background(), repository.ListFilter{
		Query:      "smith",
		Newsletter: &nl,
		Offset:     2,
		Limit:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), total)
	require.Len(t, users, 2)
	assert.Equal(t, "Agent Smith", users[0].Name)
	assert.Nil(t, users[0].Occupation)
	require.NotNil(t, users[1].Occupation)
	assert.Equal(t, "Engineer", *users[1].Occupation)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserListWithoutFiltersSkipsOffsetZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY created_at DESC LIMIT \$1$`).
		WithArgs(3).
		WillReturnRows(userRows())

	users, total, err := repo.List(context.Background(), repository.ListFilter{Offset: 0, Limit: 3})
	require.NoError(t, err)

	assert.Zero(t, total)
	assert.Empty(t, users)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserListCountError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("connection refused"))

	_, _, err := repo.List(context.Background(), repository.ListFilter{Limit: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count users")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDPreloadsAddresses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs(5, 1).
		WillReturnRows(userRows().AddRow(5, "Ada", "Engineer", true, now, now))
	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE "addresses"\."user_id" = \$1`).
		WithArgs(5).
		WillReturnRows(addressRows().
			AddRow(1, "Main Street", "12b", "Berlin", 5, now, now).
			AddRow(2, "Side Street", nil, "Hamburg", 5, now, now))

	u, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, uint(5), u.ID)
	assert.Equal(t, "Ada", u.Name)
	require.Len(t, u.Addresses, 2)
	assert.Equal(t, "Main Street", u.Addresses[0].Street)
	assert.Nil(t, u.Addresses[1].Number)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	// No address expectation: the preload must not run when the user row is
	// missing.
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(99, 1).
		WillReturnRows(userRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDNewestAddressesOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY "users"\."id" LIMIT \$2`).
		WithArgs(5, 1).
		WillReturnRows(userRows().AddRow(5, "Ada", nil, false, now, now))
	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE "addresses"\."user_id" = \$1 ORDER BY created_at DESC`).
		WithArgs(5).
		WillReturnRows(addressRows().AddRow(2, "Newer Street", nil, "Berlin", 5, now, now))

	u, err := repo.GetByIDNewestAddresses(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, u.Addresses, 1)
	assert.Equal(t, "Newer Street", u.Addresses[0].Street)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateReturnsGeneratedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	u := &entity.User{Name: "Ada"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, uint(42), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateSetsColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	occ := "Engineer"

	mock.ExpectExec(`UPDATE "users" SET "name"=\$1,"newsletter"=\$2,"occupation"=\$3,"updated_at"=\$4 WHERE id = \$5`).
		WithArgs("Bob", true, "Engineer", sqlmock.AnyArg(), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &entity.User{ID: 5, Name: "Bob", Occupation: &occ, Newsletter: true})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateMissingRowIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.User{ID: 99, Name: "Ghost"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}
