package dto

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "edumanage_backend/internals/features/academics/model"
)

type CreateSectionRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=20"`
	Capacity *int   `json:"capacity" validate:"omitempty,gt=0"`
}

func (r *CreateSectionRequest) ToModel() *model.Section {
	return &model.Section{Name: r.Name, Capacity: r.Capacity}
}

type CreateClassRequest struct {
	Name         string      `json:"name" validate:"required,min=1,max=50"`
	Numeric      int         `json:"numeric" validate:"required,gte=0"`
	TeacherID    *uuid.UUID  `json:"teacher_id"`
	SchoolYearID uuid.UUID   `json:"school_year_id" validate:"required"`
	Sections     []uuid.UUID `json:"sections"`
}

func (r *CreateClassRequest) ToModel() (*model.Class, error) {
	sections, err := UUIDListJSON(r.Sections)
	if err != nil {
		return nil, err
	}
	return &model.Class{
		Name:         r.Name,
		Numeric:      r.Numeric,
		TeacherID:    r.TeacherID,
		SchoolYearID: r.SchoolYearID,
		Sections:     sections,
	}, nil
}

type CreateSubjectRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=100"`
	Code      string     `json:"code" validate:"required,min=1,max=20"`
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	Type      string     `json:"type" validate:"omitempty,oneof=mandatory optional"`
}

func (r *CreateSubjectRequest) ToModel() *model.Subject {
	m := &model.Subject{
		Name:      r.Name,
		Code:      r.Code,
		ClassID:   r.ClassID,
		TeacherID: r.TeacherID,
	}
	if r.Type != "" {
		m.Type = model.SubjectType(r.Type)
	}
	return m
}

// UUIDListJSON marshals an id list into the JSONB shape the models store.
func UUIDListJSON(ids []uuid.UUID) (datatypes.JSON, error) {
	if len(ids) == 0 {
		return datatypes.JSON([]byte("[]")), nil
	}
	raw, err := sonic.Marshal(ids)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
