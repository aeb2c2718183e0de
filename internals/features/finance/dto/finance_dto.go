package dto

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "edumanage_backend/internals/features/finance/model"
	helper "edumanage_backend/internals/helpers"
)

type CreateFeeTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=50"`
	Description *string `json:"description"`
	IsMandatory *bool   `json:"is_mandatory"`
}

func (r *CreateFeeTypeRequest) ToModel() *model.FeeType {
	m := &model.FeeType{Name: r.Name, Description: r.Description, IsMandatory: true}
	if r.IsMandatory != nil {
		m.IsMandatory = *r.IsMandatory
	}
	return m
}

type CreateFeeStructureRequest struct {
	ClassID      uuid.UUID `json:"class_id" validate:"required"`
	SchoolYearID uuid.UUID `json:"school_year_id" validate:"required"`
	FeeTypeID    uuid.UUID `json:"fee_type_id" validate:"required"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	DueDate      *string   `json:"due_date"`
	Frequency    string    `json:"frequency" validate:"omitempty,oneof=annual monthly quarterly semester"`
}

func (r *CreateFeeStructureRequest) ToModel() (*model.FeeStructure, error) {
	m := &model.FeeStructure{
		ClassID:      r.ClassID,
		SchoolYearID: r.SchoolYearID,
		FeeTypeID:    r.FeeTypeID,
		Amount:       r.Amount,
		Frequency:    r.Frequency,
	}
	if r.DueDate != nil && *r.DueDate != "" {
		due, err := helper.ParseDate(*r.DueDate)
		if err != nil {
			return nil, err
		}
		m.DueDate = &due
	}
	return m, nil
}

type InvoiceItemRequest struct {
	FeeTypeID   uuid.UUID `json:"fee_type_id" validate:"required"`
	FeeTypeName string    `json:"fee_type_name" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" validate:"required,min=1,max=50"`
	StudentID     uuid.UUID            `json:"student_id" validate:"required"`
	ClassID       uuid.UUID            `json:"class_id" validate:"required"`
	SchoolYearID  uuid.UUID            `json:"school_year_id" validate:"required"`
	IssueDate     string               `json:"issue_date" validate:"required"`
	DueDate       string               `json:"due_date" validate:"required"`
	TotalAmount   float64              `json:"total_amount" validate:"required,gt=0"`
	Items         []InvoiceItemRequest `json:"items" validate:"dive"`
	Remarks       *string              `json:"remarks"`
}

func (r *CreateInvoiceRequest) ToModel() (*model.Invoice, error) {
	issue, err := helper.ParseDate(r.IssueDate)
	if err != nil {
		return nil, err
	}
	due, err := helper.ParseDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	items := make([]model.InvoiceItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, model.InvoiceItem{
			FeeTypeID:   item.FeeTypeID,
			FeeTypeName: item.FeeTypeName,
			Amount:      item.Amount,
		})
	}
	raw, err := sonic.Marshal(items)
	if err != nil {
		return nil, err
	}

	return &model.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		StudentID:     r.StudentID,
		ClassID:       r.ClassID,
		SchoolYearID:  r.SchoolYearID,
		IssueDate:     issue,
		DueDate:       due,
		TotalAmount:   r.TotalAmount,
		Status:        model.InvoiceStatusPending,
		Items:         datatypes.JSON(raw),
		Remarks:       r.Remarks,
	}, nil
}

type UpdateInvoiceRequest struct {
	DueDate *string `json:"due_date"`
	Status  *string `json:"status" validate:"omitempty,oneof=pending paid partially_paid overdue cancelled"`
	Remarks *string `json:"remarks"`
}

func (r *UpdateInvoiceRequest) ApplyTo(m *model.Invoice) error {
	if r.DueDate != nil && *r.DueDate != "" {
		due, err := helper.ParseDate(*r.DueDate)
		if err != nil {
			return err
		}
		m.DueDate = due
	}
	if r.Status != nil {
		m.Status = model.InvoiceStatus(*r.Status)
	}
	if r.Remarks != nil {
		m.Remarks = r.Remarks
	}
	return nil
}

type CreatePaymentRequest struct {
	InvoiceID     uuid.UUID `json:"invoice_id" validate:"required"`
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	PaymentDate   string    `json:"payment_date" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=cash card bank_transfer cheque online"`
	TransactionID *string   `json:"transaction_id"`
	Remarks       *string   `json:"remarks"`
}

func (r *CreatePaymentRequest) ToModel(receivedBy uuid.UUID) (*model.Payment, error) {
	date, err := helper.ParseDate(r.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &model.Payment{
		InvoiceID:     r.InvoiceID,
		StudentID:     r.StudentID,
		Amount:        r.Amount,
		PaymentDate:   date,
		PaymentMethod: model.PaymentMethod(r.PaymentMethod),
		TransactionID: r.TransactionID,
		Remarks:       r.Remarks,
		ReceivedBy:    receivedBy,
	}, nil
}

type CreateIncomeRequest struct {
	Category    string     `json:"category" validate:"required,oneof=fee donation grant other"`
	Amount      float64    `json:"amount" validate:"required,gt=0"`
	Date        string     `json:"date" validate:"required"`
	Description string     `json:"description" validate:"required"`
	ReferenceID *uuid.UUID `json:"reference_id"`
}

func (r *CreateIncomeRequest) ToModel(receivedBy uuid.UUID) (*model.Income, error) {
	date, err := helper.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.Income{
		Category:    model.IncomeCategory(r.Category),
		Amount:      r.Amount,
		Date:        date,
		Description: r.Description,
		ReferenceID: r.ReferenceID,
		ReceivedBy:  receivedBy,
	}, nil
}

type CreateExpenseRequest struct {
	Category      string  `json:"category" validate:"required,oneof=salary maintenance utilities supplies transport other"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Date          string  `json:"date" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Vendor        *string `json:"vendor"`
	InvoiceNumber *string `json:"invoice_number"`
}

func (r *CreateExpenseRequest) ToModel(approvedBy uuid.UUID) (*model.Expense, error) {
	date, err := helper.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.Expense{
		Category:      model.ExpenseCategory(r.Category),
		Amount:        r.Amount,
		Date:          date,
		Description:   r.Description,
		Vendor:        r.Vendor,
		InvoiceNumber: r.InvoiceNumber,
		ApprovedBy:    approvedBy,
	}, nil
}

type CheckoutRequest struct {
	InvoiceID  uuid.UUID `json:"invoice_id" validate:"required"`
	PayerName  string    `json:"payer_name" validate:"required"`
	PayerEmail string    `json:"payer_email" validate:"required,email"`
}
