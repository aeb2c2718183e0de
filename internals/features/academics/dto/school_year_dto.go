package dto

import (
	model "edumanage_backend/internals/features/academics/model"
	helper "edumanage_backend/internals/helpers"
)

type CreateSchoolYearRequest struct {
	Year      string `json:"year" validate:"required,min=4,max=20"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	IsCurrent bool   `json:"is_current"`
}

func (r *CreateSchoolYearRequest) ToModel() (*model.SchoolYear, error) {
	start, err := helper.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	return &model.SchoolYear{
		Year:      r.Year,
		StartDate: start,
		EndDate:   end,
		IsCurrent: r.IsCurrent,
	}, nil
}
