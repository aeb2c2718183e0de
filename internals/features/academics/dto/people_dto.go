package dto

import (
	"time"

	"github.com/google/uuid"

	model "edumanage_backend/internals/features/academics/model"
	helper "edumanage_backend/internals/helpers"
)

type CreateTeacherRequest struct {
	UserID        uuid.UUID   `json:"user_id" validate:"required"`
	Name          string      `json:"name" validate:"required,min=1,max=100"`
	Designation   *string     `json:"designation"`
	Qualification *string     `json:"qualification"`
	Gender        *string     `json:"gender" validate:"omitempty,oneof=male female other"`
	DOB           *string     `json:"dob"`
	JoiningDate   *string     `json:"joining_date"`
	Phone         *string     `json:"phone"`
	Email         *string     `json:"email" validate:"omitempty,email"`
	Address       *string     `json:"address"`
	Photo         *string     `json:"photo"`
	Salary        *float64    `json:"salary" validate:"omitempty,gte=0"`
	Subjects      []uuid.UUID `json:"subjects"`
	Classes       []uuid.UUID `json:"classes"`
}

func (r *CreateTeacherRequest) ToModel() (*model.Teacher, error) {
	dob, err := optionalDate(r.DOB)
	if err != nil {
		return nil, err
	}
	joining, err := optionalDate(r.JoiningDate)
	if err != nil {
		return nil, err
	}
	subjects, err := UUIDListJSON(r.Subjects)
	if err != nil {
		return nil, err
	}
	classes, err := UUIDListJSON(r.Classes)
	if err != nil {
		return nil, err
	}
	return &model.Teacher{
		UserID:        r.UserID,
		Name:          r.Name,
		Designation:   r.Designation,
		Qualification: r.Qualification,
		Gender:        r.Gender,
		DOB:           dob,
		JoiningDate:   joining,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		Photo:         r.Photo,
		Salary:        r.Salary,
		Subjects:      subjects,
		Classes:       classes,
	}, nil
}

type CreateStudentRequest struct {
	UserID           uuid.UUID  `json:"user_id" validate:"required"`
	Name             string     `json:"name" validate:"required,min=1,max=100"`
	RollNo           string     `json:"roll_no" validate:"required,min=1,max=20"`
	ClassID          uuid.UUID  `json:"class_id" validate:"required"`
	SectionID        uuid.UUID  `json:"section_id" validate:"required"`
	SchoolYearID     uuid.UUID  `json:"school_year_id" validate:"required"`
	Gender           *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	DOB              *string    `json:"dob"`
	BloodGroup       *string    `json:"blood_group"`
	Religion         *string    `json:"religion"`
	Email            *string    `json:"email" validate:"omitempty,email"`
	Phone            *string    `json:"phone"`
	Address          *string    `json:"address"`
	Photo            *string    `json:"photo"`
	ParentID         *uuid.UUID `json:"parent_id"`
	AdmissionDate    *string    `json:"admission_date"`
	GuardianName     *string    `json:"guardian_name"`
	GuardianPhone    *string    `json:"guardian_phone"`
	GuardianRelation *string    `json:"guardian_relation"`
}

func (r *CreateStudentRequest) ToModel() (*model.Student, error) {
	dob, err := optionalDate(r.DOB)
	if err != nil {
		return nil, err
	}
	admission, err := optionalDate(r.AdmissionDate)
	if err != nil {
		return nil, err
	}
	return &model.Student{
		UserID:           r.UserID,
		Name:             r.Name,
		RollNo:           r.RollNo,
		ClassID:          r.ClassID,
		SectionID:        r.SectionID,
		SchoolYearID:     r.SchoolYearID,
		Gender:           r.Gender,
		DOB:              dob,
		BloodGroup:       r.BloodGroup,
		Religion:         r.Religion,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		Photo:            r.Photo,
		ParentID:         r.ParentID,
		AdmissionDate:    admission,
		GuardianName:     r.GuardianName,
		GuardianPhone:    r.GuardianPhone,
		GuardianRelation: r.GuardianRelation,
	}, nil
}

type UpdateStudentRequest struct {
	Name             *string    `json:"name" validate:"omitempty,min=1,max=100"`
	RollNo           *string    `json:"roll_no" validate:"omitempty,min=1,max=20"`
	ClassID          *uuid.UUID `json:"class_id"`
	SectionID        *uuid.UUID `json:"section_id"`
	Gender           *string    `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone            *string    `json:"phone"`
	Address          *string    `json:"address"`
	Photo            *string    `json:"photo"`
	ParentID         *uuid.UUID `json:"parent_id"`
	GuardianName     *string    `json:"guardian_name"`
	GuardianPhone    *string    `json:"guardian_phone"`
	GuardianRelation *string    `json:"guardian_relation"`
}

func (r *UpdateStudentRequest) ApplyTo(m *model.Student) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.RollNo != nil {
		m.RollNo = *r.RollNo
	}
	if r.ClassID != nil {
		m.ClassID = *r.ClassID
	}
	if r.SectionID != nil {
		m.SectionID = *r.SectionID
	}
	if r.Gender != nil {
		m.Gender = r.Gender
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Address != nil {
		m.Address = r.Address
	}
	if r.Photo != nil {
		m.Photo = r.Photo
	}
	if r.ParentID != nil {
		m.ParentID = r.ParentID
	}
	if r.GuardianName != nil {
		m.GuardianName = r.GuardianName
	}
	if r.GuardianPhone != nil {
		m.GuardianPhone = r.GuardianPhone
	}
	if r.GuardianRelation != nil {
		m.GuardianRelation = r.GuardianRelation
	}
}

type CreateParentRequest struct {
	UserID     uuid.UUID   `json:"user_id" validate:"required"`
	Name       string      `json:"name" validate:"required,min=1,max=100"`
	Phone      string      `json:"phone" validate:"required,min=3,max=30"`
	Email      *string     `json:"email" validate:"omitempty,email"`
	Address    *string     `json:"address"`
	Occupation *string     `json:"occupation"`
	StudentIDs []uuid.UUID `json:"student_ids"`
}

func (r *CreateParentRequest) ToModel() (*model.Parent, error) {
	studentIDs, err := UUIDListJSON(r.StudentIDs)
	if err != nil {
		return nil, err
	}
	return &model.Parent{
		UserID:     r.UserID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		Occupation: r.Occupation,
		StudentIDs: studentIDs,
	}, nil
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := helper.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
