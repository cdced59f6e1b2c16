package models

import "time"

// CourseLevel is the difficulty grading of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course is a mentor-owned offering. Students holds the ids of enrolled
// accounts.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	MentorID    string      `json:"mentorId"`
	Category    string      `json:"category"`
	Level       CourseLevel `json:"level"`
	Duration    int         `json:"duration"`
	Rating      float64     `json:"rating"`
	Students    []string    `json:"students"`
	CreatedAt   time.Time   `json:"createdAt"`
}
