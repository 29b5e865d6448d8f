package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// Backing é um armazenamento chave/valor de blobs inteiros.
// Cada Put sobrescreve o valor anterior de forma atômica.
type Backing interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
