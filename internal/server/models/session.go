package models

import "time"

// SessionStatus tracks a mentoring session request through its lifecycle.
type SessionStatus string

const (
	SessionPending  SessionStatus = "pending"
	SessionAccepted SessionStatus = "accepted"
	SessionRejected SessionStatus = "rejected"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionPending, SessionAccepted, SessionRejected:
		return true
	}
	return false
}

// Session is a one-on-one mentoring session requested by a student.
// Date and Time are kept as the client-supplied strings.
type Session struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	MentorID    string        `json:"mentorId"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Status      SessionStatus `json:"status"`
	Subject     string        `json:"subject"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
}
