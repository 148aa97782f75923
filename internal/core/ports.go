package core

import (
	"context"
	"time"

	"vagas/internal/repository"
	tokenIssuer "vagas/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	SeedUsers(ctx context.Context, users []repository.User) error
	ListUsers(ctx context.Context) ([]repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	UpdateUser(ctx context.Context, id uint, changes repository.UserChanges) (repository.User, error)
	DeleteUser(ctx context.Context, id uint) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name JobRepository . JobRepository
type JobRepository interface {
	ListJobs(ctx context.Context) ([]repository.Job, error)
	GetJobByID(ctx context.Context, id uint) (repository.Job, error)
	CreateJob(ctx context.Context, job repository.Job) (repository.Job, error)
	UpdateJob(ctx context.Context, id uint, job repository.Job) (repository.Job, error)
	DeleteJob(ctx context.Context, id uint) (repository.Job, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Issue(data tokenIssuer.TokenInfo) (string, time.Time, error)
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, subject string, event any) error
}
