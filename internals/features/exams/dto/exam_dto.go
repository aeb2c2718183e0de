package dto

import (
	"github.com/google/uuid"

	model "edumanage_backend/internals/features/exams/model"
	helper "edumanage_backend/internals/helpers"
)

type CreateExamTypeRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=50"`
	Description *string  `json:"description"`
	Weightage   *float64 `json:"weightage" validate:"omitempty,gte=0,lte=100"`
}

func (r *CreateExamTypeRequest) ToModel() *model.ExamType {
	return &model.ExamType{Name: r.Name, Description: r.Description, Weightage: r.Weightage}
}

type CreateExamScheduleRequest struct {
	ExamTypeID   uuid.UUID  `json:"exam_type_id" validate:"required"`
	Name         string     `json:"name" validate:"required,min=1,max=100"`
	ClassID      uuid.UUID  `json:"class_id" validate:"required"`
	SectionID    *uuid.UUID `json:"section_id"`
	SubjectID    uuid.UUID  `json:"subject_id" validate:"required"`
	ExamDate     string     `json:"exam_date" validate:"required"`
	StartTime    string     `json:"start_time" validate:"required,len=5"`
	EndTime      string     `json:"end_time" validate:"required,len=5"`
	TotalMarks   float64    `json:"total_marks" validate:"required,gt=0"`
	PassMarks    float64    `json:"pass_marks" validate:"gte=0"`
	RoomNumber   *string    `json:"room_number"`
	Instructions *string    `json:"instructions"`
}

func (r *CreateExamScheduleRequest) ToModel() (*model.ExamSchedule, error) {
	examDate, err := helper.ParseDate(r.ExamDate)
	if err != nil {
		return nil, err
	}
	return &model.ExamSchedule{
		ExamTypeID:   r.ExamTypeID,
		Name:         r.Name,
		ClassID:      r.ClassID,
		SectionID:    r.SectionID,
		SubjectID:    r.SubjectID,
		ExamDate:     examDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		TotalMarks:   r.TotalMarks,
		PassMarks:    r.PassMarks,
		RoomNumber:   r.RoomNumber,
		Instructions: r.Instructions,
	}, nil
}

type CreateMarksEntryRequest struct {
	ExamScheduleID uuid.UUID `json:"exam_schedule_id" validate:"required"`
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	MarksObtained  float64   `json:"marks_obtained" validate:"gte=0"`
	Remarks        *string   `json:"remarks"`
	IsAbsent       bool      `json:"is_absent"`
}

func (r *CreateMarksEntryRequest) ToModel(enteredBy uuid.UUID) *model.MarksEntry {
	return &model.MarksEntry{
		ExamScheduleID: r.ExamScheduleID,
		StudentID:      r.StudentID,
		MarksObtained:  r.MarksObtained,
		Remarks:        r.Remarks,
		IsAbsent:       r.IsAbsent,
		EnteredBy:      enteredBy,
	}
}

type UpdateMarksEntryRequest struct {
	MarksObtained *float64 `json:"marks_obtained" validate:"omitempty,gte=0"`
	Remarks       *string  `json:"remarks"`
	IsAbsent      *bool    `json:"is_absent"`
}

func (r *UpdateMarksEntryRequest) ApplyTo(m *model.MarksEntry) {
	if r.MarksObtained != nil {
		m.MarksObtained = *r.MarksObtained
	}
	if r.Remarks != nil {
		m.Remarks = r.Remarks
	}
	if r.IsAbsent != nil {
		m.IsAbsent = *r.IsAbsent
	}
}

type CreateGradeRuleRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=10"`
	MinPercentage float64  `json:"min_percentage" validate:"gte=0,lte=100"`
	MaxPercentage float64  `json:"max_percentage" validate:"gte=0,lte=100,gtefield=MinPercentage"`
	GradePoint    *float64 `json:"grade_point" validate:"omitempty,gte=0"`
	Description   *string  `json:"description"`
}

func (r *CreateGradeRuleRequest) ToModel() *model.GradeRule {
	return &model.GradeRule{
		Name:          r.Name,
		MinPercentage: r.MinPercentage,
		MaxPercentage: r.MaxPercentage,
		GradePoint:    r.GradePoint,
		Description:   r.Description,
	}
}
