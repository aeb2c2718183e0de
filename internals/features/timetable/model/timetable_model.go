package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayOfWeek string

const (
	DayMonday    DayOfWeek = "monday"
	DayTuesday   DayOfWeek = "tuesday"
	DayWednesday DayOfWeek = "wednesday"
	DayThursday  DayOfWeek = "thursday"
	DayFriday    DayOfWeek = "friday"
	DaySaturday  DayOfWeek = "saturday"
	DaySunday    DayOfWeek = "sunday"
)

// DayOrder maps weekday names onto a sortable index so listings come
// out monday..sunday rather than alphabetical.
var DayOrder = map[DayOfWeek]int{
	DayMonday:    1,
	DayTuesday:   2,
	DayWednesday: 3,
	DayThursday:  4,
	DayFriday:    5,
	DaySaturday:  6,
	DaySunday:    7,
}

type TimetableEntry struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClassID      uuid.UUID `gorm:"column:class_id;type:uuid;not null;index:ix_timetable_class" json:"class_id"`
	SectionID    uuid.UUID `gorm:"column:section_id;type:uuid;not null;index:ix_timetable_section" json:"section_id"`
	Day          DayOfWeek `gorm:"column:day;type:varchar(10);not null" json:"day"`
	DayIndex     int       `gorm:"column:day_index;not null;index:ix_timetable_day" json:"-"`
	PeriodNumber int       `gorm:"column:period_number;not null" json:"period_number"`
	StartTime    string    `gorm:"column:start_time;type:varchar(5);not null" json:"start_time"` // "09:00"
	EndTime      string    `gorm:"column:end_time;type:varchar(5);not null" json:"end_time"`
	SubjectID    uuid.UUID `gorm:"column:subject_id;type:uuid;not null" json:"subject_id"`
	TeacherID    uuid.UUID `gorm:"column:teacher_id;type:uuid;not null;index:ix_timetable_teacher" json:"teacher_id"`
	RoomNumber   *string   `gorm:"column:room_number;type:varchar(20)" json:"room_number,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (TimetableEntry) TableName() string { return "timetable_entries" }

func (m *TimetableEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.DayIndex = DayOrder[m.Day]
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}

func (m *TimetableEntry) BeforeUpdate(tx *gorm.DB) error {
	m.DayIndex = DayOrder[m.Day]
	m.UpdatedAt = time.Now().UTC()
	return nil
}
