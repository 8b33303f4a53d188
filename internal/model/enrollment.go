package model

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment is a user's direct access to a course.
type Enrollment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment"`
	CourseID  uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Group bundles students under one or more leaders, granting access to the
// group's courses.
type Group struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type GroupMember struct {
	ID      uint `gorm:"primarykey" json:"id"`
	GroupID uint `json:"group_id" gorm:"not null;uniqueIndex:idx_group_member"`
	UserID  uint `json:"user_id" gorm:"not null;uniqueIndex:idx_group_member"`
}

type GroupLeader struct {
	ID      uint `gorm:"primarykey" json:"id"`
	GroupID uint `json:"group_id" gorm:"not null;uniqueIndex:idx_group_leader"`
	UserID  uint `json:"user_id" gorm:"not null;uniqueIndex:idx_group_leader"`
}

type GroupCourse struct {
	ID       uint `gorm:"primarykey" json:"id"`
	GroupID  uint `json:"group_id" gorm:"not null;uniqueIndex:idx_group_course"`
	CourseID uint `json:"course_id" gorm:"not null;uniqueIndex:idx_group_course"`
}

// User is the minimal account record the service needs for dashboard display
// and essay authorship.
type User struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	DisplayName string         `json:"display_name" gorm:"not null"`
	Email       string         `json:"email" gorm:"uniqueIndex"`
	Role        string         `json:"role" gorm:"default:'student'"` // "student", "teacher", "admin"
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
