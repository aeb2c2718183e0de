package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicModel "edumanage_backend/internals/features/academics/model"
	model "edumanage_backend/internals/features/exams/model"
)

var ErrStudentNotFound = errors.New("student not found")

type SubjectResult struct {
	SubjectName   string  `json:"subject_name"`
	SubjectCode   string  `json:"subject_code"`
	MarksObtained float64 `json:"marks_obtained"`
	TotalMarks    float64 `json:"total_marks"`
	Percentage    float64 `json:"percentage"`
	Remarks       string  `json:"remarks"`
}

type ReportCard struct {
	Student            *academicModel.Student `json:"student"`
	Results            []SubjectResult        `json:"results"`
	TotalMarksObtained float64                `json:"total_marks_obtained"`
	TotalMarksPossible float64                `json:"total_marks_possible"`
	OverallPercentage  float64                `json:"overall_percentage"`
	Grade              string                 `json:"grade"`
}

type ReportCardService struct {
	DB *gorm.DB
}

func NewReportCardService(db *gorm.DB) *ReportCardService {
	return &ReportCardService{DB: db}
}

// Build aggregates a student's marks across every exam schedule of
// their class, optionally restricted to one exam type.
//
// Schedules without a marks row are skipped entirely. When duplicate
// marks rows exist for a (student, schedule) pair, the oldest row wins;
// created_at asc with id asc as tiebreak makes the pick deterministic.
func (s *ReportCardService) Build(studentID uuid.UUID, examTypeID *uuid.UUID) (*ReportCard, error) {
	var student academicModel.Student
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	scheduleQ := s.DB.Where("class_id = ?", student.ClassID)
	if examTypeID != nil {
		scheduleQ = scheduleQ.Where("exam_type_id = ?", *examTypeID)
	}
	var schedules []model.ExamSchedule
	if err := scheduleQ.Order("exam_date ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}

	card := &ReportCard{
		Student: &student,
		Results: make([]SubjectResult, 0, len(schedules)),
		Grade:   "N/A",
	}

	for i := range schedules {
		schedule := &schedules[i]

		var marks model.MarksEntry
		err := s.DB.
			Where("student_id = ? AND exam_schedule_id = ?", studentID, schedule.ID).
			Order("created_at ASC").Order("id ASC").
			First(&marks).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		result := SubjectResult{
			MarksObtained: marks.MarksObtained,
			TotalMarks:    schedule.TotalMarks,
		}
		if marks.Remarks != nil {
			result.Remarks = *marks.Remarks
		}

		// Schedules are validated to total_marks > 0 at creation, but a
		// bad row must not poison the whole card: it counts as 0%.
		if schedule.TotalMarks > 0 {
			result.Percentage = round2(marks.MarksObtained / schedule.TotalMarks * 100)
			card.TotalMarksObtained += marks.MarksObtained
			card.TotalMarksPossible += schedule.TotalMarks
		}

		var subject academicModel.Subject
		if err := s.DB.First(&subject, "id = ?", schedule.SubjectID).Error; err == nil {
			result.SubjectName = subject.Name
			result.SubjectCode = subject.Code
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			result.SubjectName = "Unknown"
			result.SubjectCode = ""
		} else {
			return nil, err
		}

		card.Results = append(card.Results, result)
	}

	if card.TotalMarksPossible > 0 {
		card.OverallPercentage = round2(card.TotalMarksObtained / card.TotalMarksPossible * 100)
	}

	var rules []model.GradeRule
	if err := s.DB.Order("min_percentage DESC").Find(&rules).Error; err != nil {
		return nil, err
	}
	for i := range rules {
		if rules[i].MinPercentage <= card.OverallPercentage && card.OverallPercentage <= rules[i].MaxPercentage {
			card.Grade = rules[i].Name
			break
		}
	}

	return card, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
