package repository

import "time"

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusActive || s == JobStatusInactive
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Job struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	PostedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	ContactPhone string    `gorm:"type:varchar(64);not null"`
	Status       JobStatus `gorm:"type:varchar(16);not null;check:chk_jobs_status,status IN ('active','inactive')"`
	Company      string    `gorm:"type:varchar(255);not null"`
	CreatedByID  *uint     `gorm:"index"`
	CreatedBy    *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserChanges carries a partial user update. Nil fields keep the stored value.
type UserChanges struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

func (c UserChanges) Empty() bool {
	return c.Name == nil && c.Email == nil && c.PasswordHash == nil
}

func (c UserChanges) merge(user *User) {
	if c.Name != nil {
		user.Name = *c.Name
	}
	if c.Email != nil {
		user.Email = *c.Email
	}
	if c.PasswordHash != nil {
		user.PasswordHash = *c.PasswordHash
	}
}
