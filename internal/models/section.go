package models

import "time"

// Section is the persisted row for one course section offering.
type Section struct {
	CRN         int       `db:"crn"`
	CourseCode  string    `db:"course_code"`
	ClassType   string    `db:"class_type"`
	Modality    string    `db:"modality"`
	CreditHours string    `db:"credit_hours"`
	Professor   string    `db:"professor"`
	Location    string    `db:"location"`
	AvgGPA      *float64  `db:"avg_gpa"`
	Term        string    `db:"term"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// MeetingTime is the persisted row for one weekly meeting slot of a section.
type MeetingTime struct {
	ID        int64  `db:"id"`
	CRN       int    `db:"crn"`
	Days      string `db:"days"` // comma-joined day codes, e.g. "M,W,F"
	BeginMins int    `db:"begin_minutes"`
	EndMins   int    `db:"end_minutes"`
}
