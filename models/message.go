package models

import (
	"strings"
	"time"

	"github.com/jfalcomer/devblog-backend/errs"
)

// Message is a contact form submission.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Phone     string    `json:"phone" gorm:"size:15"`
	Email     string    `json:"email" gorm:"size:254;not null"`
	Subject   string    `json:"subject" gorm:"size:100"`
	Body      string    `json:"message" gorm:"size:500;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Message) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
}

func (m *Message) Validate() error {
	v := errs.NewValidator()
	v.Check(m.Name != "", "name", "must be provided")
	v.Check(errs.MaxLength(m.Name, 100), "name", "must be at most 100 characters long")
	v.Check(errs.MaxLength(m.Phone, 15), "phone", "must be at most 15 characters long")
	v.Check(m.Email != "", "email", "must be provided")
	v.Check(errs.EmailRX.MatchString(m.Email), "email", "must be a valid email address")
	v.Check(errs.MaxLength(m.Subject, 100), "subject", "must be at most 100 characters long")
	v.Check(m.Body != "", "message", "must be provided")
	v.Check(errs.MaxLength(m.Body, 500), "message", "must be at most 500 characters long")
	return v.Err()
}
