package dto

import (
	"github.com/google/uuid"

	model "edumanage_backend/internals/features/attendance/model"
	helper "edumanage_backend/internals/helpers"
)

type MarkAttendanceRequest struct {
	StudentID uuid.UUID  `json:"student_id" validate:"required"`
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	SectionID uuid.UUID  `json:"section_id" validate:"required"`
	Date      string     `json:"date" validate:"required"`
	Status    string     `json:"status" validate:"required,oneof=present absent late excused half_day"`
	SubjectID *uuid.UUID `json:"subject_id"`
	Remarks   *string    `json:"remarks"`
}

func (r *MarkAttendanceRequest) ToModel(markedBy uuid.UUID) (*model.Attendance, error) {
	date, err := helper.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.Attendance{
		StudentID: r.StudentID,
		ClassID:   r.ClassID,
		SectionID: r.SectionID,
		Date:      date,
		Status:    model.AttendanceStatus(r.Status),
		SubjectID: r.SubjectID,
		Remarks:   r.Remarks,
		MarkedBy:  markedBy,
	}, nil
}

type AttendanceStatsResponse struct {
	TotalDays  int     `json:"total_days"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	Percentage float64 `json:"percentage"`
}
