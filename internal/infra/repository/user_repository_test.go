package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

func TestUserMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewUserMemoryRepository()

	u := &models.AdminUser{Name: "Carla", Email: "carla@beleza.com", PasswordHash: "x"}
	require.NoError(t, r.Create(ctx, u))
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "admin", u.Role)

	err := r.Create(ctx, &models.AdminUser{Email: "CARLA@beleza.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	found, err := r.FindByEmail(ctx, "carla@beleza.com")
	require.NoError(t, err)
	assert.Equal(t, "Carla", found.Name)

	_, err = r.FindByEmail(ctx, "nobody@beleza.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	byID, err := r.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "carla@beleza.com", byID.Email)

	_, err = r.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserGormRepository_UniqueViolation(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "admin_users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err = NewUserGormRepository(db).Create(context.Background(), &models.AdminUser{
		Name:         "Carla",
		Email:        "carla@beleza.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserGormRepository_FindByEmailMissing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admin_users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	_, err = NewUserGormRepository(db).FindByEmail(context.Background(), "x@y.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
