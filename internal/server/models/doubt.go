package models

import "time"

// DoubtStatus tracks a question from open to resolved.
type DoubtStatus string

const (
	DoubtOpen     DoubtStatus = "open"
	DoubtAssigned DoubtStatus = "assigned"
	DoubtResolved DoubtStatus = "resolved"
)

func (s DoubtStatus) Valid() bool {
	switch s {
	case DoubtOpen, DoubtAssigned, DoubtResolved:
		return true
	}
	return false
}

// Reply is a single message in a doubt thread.
type Reply struct {
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Doubt is a student question. MentorID is nil until a mentor picks it up.
type Doubt struct {
	ID        string      `json:"id"`
	StudentID string      `json:"studentId"`
	MentorID  *string     `json:"mentorId"`
	Subject   string      `json:"subject"`
	Question  string      `json:"question"`
	Status    DoubtStatus `json:"status"`
	Replies   []Reply     `json:"replies"`
	CreatedAt time.Time   `json:"createdAt"`
}
