package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

var (
	ErrEmailTaken   = httperr.ErrConflict("email_already_exists")
	ErrUserNotFound = httperr.ErrNotFound("user_not_found")
)

type UserRepository interface {
	Create(ctx context.Context, u *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id uint) (*models.AdminUser, error)
}

// ===============================
// Postgres
// ===============================

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

var _ UserRepository = (*UserGormRepository)(nil)

func (r *UserGormRepository) Create(ctx context.Context, u *models.AdminUser) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	var u models.AdminUser
	err := r.db.WithContext(ctx).First(&u, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ===============================
// Memória (sem banco configurado)
// ===============================

type UserMemoryRepository struct {
	mu      sync.Mutex
	seq     uint
	byEmail map[string]models.AdminUser
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{byEmail: make(map[string]models.AdminUser)}
}

var _ UserRepository = (*UserMemoryRepository)(nil)

func (r *UserMemoryRepository) Create(_ context.Context, u *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrEmailTaken
	}

	r.seq++
	now := time.Now()
	u.ID = r.seq
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = "admin"
	}
	r.byEmail[key] = *u
	return nil
}

func (r *UserMemoryRepository) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *UserMemoryRepository) FindByID(_ context.Context, id uint) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
