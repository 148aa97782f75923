package payload

import (
	"time"

	"vagas/internal/core"
)

type UserView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserView(p core.Profile) UserView {
	return UserView{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewUserViews(profiles []core.Profile) []UserView {
	views := make([]UserView, len(profiles))
	for i, p := range profiles {
		views[i] = NewUserView(p)
	}
	return views
}

type SessionView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserView  `json:"user"`
}

func NewSessionView(s core.Session) SessionView {
	return SessionView{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      NewUserView(s.User),
	}
}

type JobView struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PostedAt     time.Time `json:"postedAt"`
	ContactPhone string    `json:"contactPhone"`
	Status       string    `json:"status"`
	Company      string    `json:"company"`
	CreatedBy    *uint     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewJobView(j core.JobPosting) JobView {
	return JobView{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		PostedAt:     j.PostedAt,
		ContactPhone: j.ContactPhone,
		Status:       j.Status,
		Company:      j.Company,
		CreatedBy:    j.CreatedBy,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func NewJobViews(postings []core.JobPosting) []JobView {
	views := make([]JobView, len(postings))
	for i, j := range postings {
		views[i] = NewJobView(j)
	}
	return views
}
