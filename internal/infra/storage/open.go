package storage

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

type Options struct {
	Driver string
	Dir    string

	Redis *redis.Client
	DB    *gorm.DB

	S3Client S3API
	S3       S3Options
}

// Open escolhe o backend pelo driver configurado.
func Open(opts Options) (Backing, error) {
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemory(), nil

	case DriverFile:
		return NewFile(opts.Dir)

	case DriverRedis:
		if opts.Redis == nil {
			return nil, fmt.Errorf("storage: redis driver requires a client")
		}
		return NewRedis(opts.Redis), nil

	case DriverPostgres:
		if opts.DB == nil {
			return nil, fmt.Errorf("storage: postgres driver requires a database")
		}
		return NewGorm(opts.DB), nil

	case DriverS3:
		if opts.S3.Bucket == "" {
			return nil, fmt.Errorf("storage: s3 driver requires a bucket")
		}
		client := opts.S3Client
		if client == nil {
			client = NewS3Client(opts.S3)
		}
		return NewS3(client, opts.S3.Bucket), nil
	}

	return nil, fmt.Errorf("storage: unknown driver %q", opts.Driver)
}
