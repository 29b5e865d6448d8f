package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

// Sink é o destino dos registros de auditoria.
type Sink interface {
	Write(ctx context.Context, entry models.AuditLog) error
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

func encodeMetadata(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}

// ===============================
// Postgres
// ===============================

type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, entry models.AuditLog) error {
	return s.db.WithContext(ctx).Create(&entry).Error
}

func (s *GormSink) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// ===============================
// Memória (sem banco configurado)
// ===============================

// MemorySink mantém os últimos max registros.
type MemorySink struct {
	mu   sync.Mutex
	max  int
	seq  uint
	logs []models.AuditLog
}

func NewMemorySink(max int) *MemorySink {
	if max <= 0 {
		max = 500
	}
	return &MemorySink{max: max}
}

func (s *MemorySink) Write(_ context.Context, entry models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	entry.ID = s.seq
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.logs = append(s.logs, entry)
	if len(s.logs) > s.max {
		s.logs = s.logs[len(s.logs)-s.max:]
	}
	return nil
}

func (s *MemorySink) List(_ context.Context, limit int) ([]models.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AuditLog, 0, len(s.logs))
	for i := len(s.logs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.logs[i])
	}
	return out, nil
}
