package models

import (
	"time"

	"gorm.io/gorm"
)

// UserCourse tracks a user's enrollment in a course with progress.
// One row per (user, course); the unique index is the arbiter when two
// identical enroll requests race.
type UserCourse struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseName  string     `json:"course_name" gorm:"uniqueIndex:idx_user_course;not null"`
	Progress    int        `json:"progress" gorm:"default:0"` // Completion percentage (0-100)
	Status      string     `json:"status" gorm:"default:'enrolled'"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	User        User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
