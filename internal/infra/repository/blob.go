package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
)

const (
	AppointmentsKey = "beleza_studio_appointments"
	SpecialistsKey  = "beleza_studio_specialists"
	SchedulesKey    = "beleza_studio_schedules"
)

// loadBlob decodifica key em dst. Blob ausente ou corrompido devolve
// ok == false para o chamador semear o padrão; erro de conexão sobe.
func loadBlob(
	ctx context.Context,
	b storage.Backing,
	log *zap.Logger,
	key string,
	dst any,
) (ok bool, err error) {

	raw, err := b.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn("corrupt blob, reseeding",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}

func saveBlob(ctx context.Context, b storage.Backing, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(ctx, key, raw)
}
