package payload

import (
	"vagas/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r RegisterRequest) ToRegistration() core.Registration {
	return core.Registration{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Email, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Email:    l.Email,
		Password: l.Password,
	}
}

// PatchUserRequest carries any subset of the user fields. Absent fields stay nil.
type PatchUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (p PatchUserRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty),
		validation.Field(&p.Email, validation.NilOrNotEmpty),
		validation.Field(&p.Password, validation.NilOrNotEmpty),
	)
}

func (p PatchUserRequest) ToPatch() core.UserPatch {
	return core.UserPatch{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}
}
