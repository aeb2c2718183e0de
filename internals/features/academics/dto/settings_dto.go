package dto

import (
	model "edumanage_backend/internals/features/academics/model"
)

type SaveSettingsRequest struct {
	SchoolName     string  `json:"school_name" validate:"required,min=1,max=200"`
	SchoolCode     *string `json:"school_code"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Website        *string `json:"website"`
	Logo           *string `json:"logo"`
	Currency       string  `json:"currency" validate:"omitempty,max=10"`
	CurrencySymbol string  `json:"currency_symbol" validate:"omitempty,max=5"`
	Timezone       string  `json:"timezone" validate:"omitempty,max=50"`
	Language       string  `json:"language" validate:"omitempty,max=10"`
	DateFormat     string  `json:"date_format" validate:"omitempty,max=20"`
	TimeFormat     string  `json:"time_format" validate:"omitempty,max=20"`
}

func (r *SaveSettingsRequest) ToModel() *model.Settings {
	m := model.DefaultSettings()
	m.SchoolName = r.SchoolName
	m.SchoolCode = r.SchoolCode
	m.Address = r.Address
	m.Phone = r.Phone
	m.Email = r.Email
	m.Website = r.Website
	m.Logo = r.Logo
	if r.Currency != "" {
		m.Currency = r.Currency
	}
	if r.CurrencySymbol != "" {
		m.CurrencySymbol = r.CurrencySymbol
	}
	if r.Timezone != "" {
		m.Timezone = r.Timezone
	}
	if r.Language != "" {
		m.Language = r.Language
	}
	if r.DateFormat != "" {
		m.DateFormat = r.DateFormat
	}
	if r.TimeFormat != "" {
		m.TimeFormat = r.TimeFormat
	}
	return m
}
