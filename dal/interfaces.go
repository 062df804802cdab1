package dal

import (
	"context"

	"gorm.io/gorm"
)

// DatabaseClientInterface defines the contract for database access
type DatabaseClientInterface interface {
	DB(ctx context.Context) *gorm.DB
	Ping(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error
	Seed(ctx context.Context, opts SeedOptions) error
}
