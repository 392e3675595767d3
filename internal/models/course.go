package models

import (
	"time"
)

type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "DRAFT"
	CourseStatusPublished CourseStatus = "PUBLISHED"
	CourseStatusArchived  CourseStatus = "ARCHIVED"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "BEGINNER"
	CourseLevelIntermediate CourseLevel = "INTERMEDIATE"
	CourseLevelAdvanced     CourseLevel = "ADVANCED"
)

// Course is a catalog item. The catalog is owned by the platform; this service
// only reads it (and seeds it in development).
type Course struct {
	ID             int64          `db:"id"`
	Title          string         `db:"title"`
	Description    *string        `db:"description"`
	ThumbnailURL   *string        `db:"thumbnail_url"`
	Price          float64        `db:"price"`
	OriginalPrice  float64        `db:"original_price"`
	DurationHours  int            `db:"duration_hours"`
	TotalEnrolled  int            `db:"total_enrolled"`
	Rating         float64        `db:"rating"`
	RatingCount    int            `db:"rating_count"`
	Level          CourseLevel    `db:"level"`
	Status         CourseStatus   `db:"status"`
	ApprovalStatus ApprovalStatus `db:"approval_status"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`

	Instructor *User     `db:"-"`
	Category   *Category `db:"-"`
	Tags       []Tag     `db:"-"`
}

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
