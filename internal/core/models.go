package core

import (
	"regexp"
	"time"

	"vagas/internal/repository"

	"github.com/jellydator/validation"
)

var emailFormat = validation.Match(regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)).
	Error("must be a valid email address")

// Profile is the public view of a user. It never carries the password hash.
type Profile struct {
	ID        uint
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Registration struct {
	Name     string
	Email    string
	Password string
}

func (r Registration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), emailFormat),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

type Credentials struct {
	Email    string
	Password string
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      Profile
}

// UserPatch is a partial user update; nil fields are left untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

func (p UserPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&p.Email, validation.NilOrNotEmpty, validation.Length(3, 255), emailFormat),
		validation.Field(&p.Password, validation.NilOrNotEmpty, validation.Length(6, 72)),
	)
}

type JobDraft struct {
	Title        string
	Description  string
	PostedAt     time.Time
	ContactPhone string
	Status       string
	Company      string
}

func (d JobDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&d.Description, validation.Required),
		validation.Field(&d.PostedAt, validation.Required),
		validation.Field(&d.ContactPhone, validation.Required, validation.Length(1, 64)),
		validation.Field(&d.Status, validation.Required,
			validation.In(string(repository.JobStatusActive), string(repository.JobStatusInactive))),
		validation.Field(&d.Company, validation.Required, validation.Length(1, 255)),
	)
}

type JobPosting struct {
	ID           uint
	Title        string
	Description  string
	PostedAt     time.Time
	ContactPhone string
	Status       string
	Company      string
	CreatedBy    *uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toProfile(user repository.User) Profile {
	return Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toJobPosting(job repository.Job) JobPosting {
	return JobPosting{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		PostedAt:     job.PostedAt,
		ContactPhone: job.ContactPhone,
		Status:       string(job.Status),
		Company:      job.Company,
		CreatedBy:    job.CreatedByID,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}

func (d JobDraft) toJob() repository.Job {
	return repository.Job{
		Title:        d.Title,
		Description:  d.Description,
		PostedAt:     d.PostedAt,
		ContactPhone: d.ContactPhone,
		Status:       repository.JobStatus(d.Status),
		Company:      d.Company,
	}
}
