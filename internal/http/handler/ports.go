package handler

import (
	"context"
	"net/http"

	"vagas/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	Register(ctx context.Context, reg core.Registration) (core.Profile, error)
	Login(ctx context.Context, creds core.Credentials) (core.Session, error)
	ListUsers(ctx context.Context) ([]core.Profile, error)
	GetUser(ctx context.Context, id uint) (core.Profile, error)
	ReplaceUser(ctx context.Context, id uint, reg core.Registration) (core.Profile, error)
	PatchUser(ctx context.Context, id uint, patch core.UserPatch) (core.Profile, error)
	DeleteUser(ctx context.Context, id uint) (core.Profile, error)
}

//counterfeiter:generate -o fake -fake-name JobService . JobService
type JobService interface {
	ListJobs(ctx context.Context) ([]core.JobPosting, error)
	GetJob(ctx context.Context, id uint) (core.JobPosting, error)
	CreateJob(ctx context.Context, ownerID uint, draft core.JobDraft) (core.JobPosting, error)
	ReplaceJob(ctx context.Context, id uint, draft core.JobDraft) (core.JobPosting, error)
	DeleteJob(ctx context.Context, id uint) (core.JobPosting, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Pinger . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}
