package payload

import (
	"errors"
	"time"

	"vagas/internal/core"

	"github.com/jellydator/validation"
)

const dateLayout = "2006-01-02"

var errInvalidDate error = errors.New("must be an RFC 3339 timestamp or a YYYY-MM-DD date")

type JobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	PostedAt     string `json:"postedAt"`
	ContactPhone string `json:"contactPhone"`
	Status       string `json:"status"`
	Company      string `json:"company"`
}

func (j JobRequest) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.Title, validation.Required),
		validation.Field(&j.Description, validation.Required),
		validation.Field(&j.PostedAt, validation.Required, validation.By(func(value interface{}) error {
			_, err := ParsePostedAt(value.(string))
			return err
		})),
		validation.Field(&j.ContactPhone, validation.Required),
		validation.Field(&j.Status, validation.Required),
		validation.Field(&j.Company, validation.Required),
	)
}

// ToDraft converts a validated request into a job draft.
func (j JobRequest) ToDraft() core.JobDraft {
	postedAt, _ := ParsePostedAt(j.PostedAt)
	return core.JobDraft{
		Title:        j.Title,
		Description:  j.Description,
		PostedAt:     postedAt,
		ContactPhone: j.ContactPhone,
		Status:       j.Status,
		Company:      j.Company,
	}
}

// ParsePostedAt accepts a full RFC 3339 timestamp or a calendar date, which
// is read as midnight UTC.
func ParsePostedAt(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidDate
}
