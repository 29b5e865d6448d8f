package models

import "time"

// KVBlob é a linha usada pelo backend postgres do armazenamento chave/valor.
type KVBlob struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     []byte `gorm:"type:bytea"`
	UpdatedAt time.Time
}

func (KVBlob) TableName() string {
	return "kv_blobs"
}
