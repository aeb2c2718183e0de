package dto

import (
	"github.com/google/uuid"

	model "edumanage_backend/internals/features/timetable/model"
)

type CreateTimetableEntryRequest struct {
	ClassID      uuid.UUID `json:"class_id" validate:"required"`
	SectionID    uuid.UUID `json:"section_id" validate:"required"`
	Day          string    `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	PeriodNumber int       `json:"period_number" validate:"required,gt=0"`
	StartTime    string    `json:"start_time" validate:"required,len=5"`
	EndTime      string    `json:"end_time" validate:"required,len=5"`
	SubjectID    uuid.UUID `json:"subject_id" validate:"required"`
	TeacherID    uuid.UUID `json:"teacher_id" validate:"required"`
	RoomNumber   *string   `json:"room_number"`
}

func (r *CreateTimetableEntryRequest) ToModel() *model.TimetableEntry {
	return &model.TimetableEntry{
		ClassID:      r.ClassID,
		SectionID:    r.SectionID,
		Day:          model.DayOfWeek(r.Day),
		PeriodNumber: r.PeriodNumber,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		SubjectID:    r.SubjectID,
		TeacherID:    r.TeacherID,
		RoomNumber:   r.RoomNumber,
	}
}

type UpdateTimetableEntryRequest struct {
	Day          *string    `json:"day" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	PeriodNumber *int       `json:"period_number" validate:"omitempty,gt=0"`
	StartTime    *string    `json:"start_time" validate:"omitempty,len=5"`
	EndTime      *string    `json:"end_time" validate:"omitempty,len=5"`
	SubjectID    *uuid.UUID `json:"subject_id"`
	TeacherID    *uuid.UUID `json:"teacher_id"`
	RoomNumber   *string    `json:"room_number"`
}

func (r *UpdateTimetableEntryRequest) ApplyTo(m *model.TimetableEntry) {
	if r.Day != nil {
		m.Day = model.DayOfWeek(*r.Day)
	}
	if r.PeriodNumber != nil {
		m.PeriodNumber = *r.PeriodNumber
	}
	if r.StartTime != nil {
		m.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		m.EndTime = *r.EndTime
	}
	if r.SubjectID != nil {
		m.SubjectID = *r.SubjectID
	}
	if r.TeacherID != nil {
		m.TeacherID = *r.TeacherID
	}
	if r.RoomNumber != nil {
		m.RoomNumber = r.RoomNumber
	}
}
