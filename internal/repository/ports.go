package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateModels(models ...any) error
	Seed(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	GetBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entities any) error
	Update(ctx context.Context, record any, omit ...string) error
	Delete(ctx context.Context, record any, id any) error
}
