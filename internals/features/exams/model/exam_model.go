package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamType struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(50);not null" json:"name"` // "Midterm", "Final", "Quiz"
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Weightage   *float64  `gorm:"column:weightage" json:"weightage,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (ExamType) TableName() string { return "exam_types" }

func (m *ExamType) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}

type ExamSchedule struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ExamTypeID   uuid.UUID  `gorm:"column:exam_type_id;type:uuid;not null;index:ix_exam_schedules_type" json:"exam_type_id"`
	Name         string     `gorm:"column:name;type:varchar(100);not null" json:"name"` // "Midterm Exam 2024"
	ClassID      uuid.UUID  `gorm:"column:class_id;type:uuid;not null;index:ix_exam_schedules_class" json:"class_id"`
	SectionID    *uuid.UUID `gorm:"column:section_id;type:uuid" json:"section_id,omitempty"`
	SubjectID    uuid.UUID  `gorm:"column:subject_id;type:uuid;not null" json:"subject_id"`
	ExamDate     time.Time  `gorm:"column:exam_date;not null;index:ix_exam_schedules_date" json:"exam_date"`
	StartTime    string     `gorm:"column:start_time;type:varchar(5);not null" json:"start_time"`
	EndTime      string     `gorm:"column:end_time;type:varchar(5);not null" json:"end_time"`
	TotalMarks   float64    `gorm:"column:total_marks;not null" json:"total_marks"`
	PassMarks    float64    `gorm:"column:pass_marks;not null" json:"pass_marks"`
	RoomNumber   *string    `gorm:"column:room_number;type:varchar(20)" json:"room_number,omitempty"`
	Instructions *string    `gorm:"column:instructions" json:"instructions,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (ExamSchedule) TableName() string { return "exam_schedules" }

func (m *ExamSchedule) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}

func (m *ExamSchedule) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// MarksEntry rows are not unique per (student, schedule); aggregation
// takes the first row in insertion order when duplicates exist.
type MarksEntry struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ExamScheduleID uuid.UUID `gorm:"column:exam_schedule_id;type:uuid;not null;index:ix_marks_schedule" json:"exam_schedule_id"`
	StudentID      uuid.UUID `gorm:"column:student_id;type:uuid;not null;index:ix_marks_student" json:"student_id"`
	MarksObtained  float64   `gorm:"column:marks_obtained;not null" json:"marks_obtained"`
	Remarks        *string   `gorm:"column:remarks" json:"remarks,omitempty"`
	IsAbsent       bool      `gorm:"column:is_absent;not null;default:false" json:"is_absent"`
	EnteredBy      uuid.UUID `gorm:"column:entered_by;type:uuid;not null" json:"entered_by"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (MarksEntry) TableName() string { return "marks_entries" }

func (m *MarksEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}

func (m *MarksEntry) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

type GradeRule struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(10);not null" json:"name"` // "A+", "A", "B"
	MinPercentage float64   `gorm:"column:min_percentage;not null" json:"min_percentage"`
	MaxPercentage float64   `gorm:"column:max_percentage;not null" json:"max_percentage"`
	GradePoint    *float64  `gorm:"column:grade_point" json:"grade_point,omitempty"`
	Description   *string   `gorm:"column:description" json:"description,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (GradeRule) TableName() string { return "grade_rules" }

func (m *GradeRule) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
