package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
	StatusHalfDay AttendanceStatus = "half_day"
)

type Attendance struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID        `gorm:"column:student_id;type:uuid;not null;index:ix_attendance_student" json:"student_id"`
	ClassID   uuid.UUID        `gorm:"column:class_id;type:uuid;not null;index:ix_attendance_class" json:"class_id"`
	SectionID uuid.UUID        `gorm:"column:section_id;type:uuid;not null;index:ix_attendance_section" json:"section_id"`
	Date      time.Time        `gorm:"column:date;not null;index:ix_attendance_date" json:"date"`
	Status    AttendanceStatus `gorm:"column:status;type:varchar(10);not null" json:"status"`

	// Optional subject for subject-wise attendance.
	SubjectID *uuid.UUID `gorm:"column:subject_id;type:uuid" json:"subject_id,omitempty"`
	Remarks   *string    `gorm:"column:remarks" json:"remarks,omitempty"`
	MarkedBy  uuid.UUID  `gorm:"column:marked_by;type:uuid;not null" json:"marked_by"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Attendance) TableName() string { return "attendance" }

func (m *Attendance) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
