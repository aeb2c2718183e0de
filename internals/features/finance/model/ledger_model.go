package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IncomeCategory string

const (
	IncomeCategoryFee      IncomeCategory = "fee"
	IncomeCategoryDonation IncomeCategory = "donation"
	IncomeCategoryGrant    IncomeCategory = "grant"
	IncomeCategoryOther    IncomeCategory = "other"
)

type Income struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Category    IncomeCategory `gorm:"column:category;type:varchar(20);not null;index:ix_income_category" json:"category"`
	Amount      float64        `gorm:"column:amount;not null" json:"amount"`
	Date        time.Time      `gorm:"column:date;not null;index:ix_income_date" json:"date"`
	Description string         `gorm:"column:description;not null" json:"description"`
	ReferenceID *uuid.UUID     `gorm:"column:reference_id;type:uuid" json:"reference_id,omitempty"`
	ReceivedBy  uuid.UUID      `gorm:"column:received_by;type:uuid;not null" json:"received_by"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null" json:"created_at"`
}

func (Income) TableName() string { return "income" }

func (m *Income) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}

type ExpenseCategory string

const (
	ExpenseCategorySalary      ExpenseCategory = "salary"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategorySupplies    ExpenseCategory = "supplies"
	ExpenseCategoryTransport   ExpenseCategory = "transport"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

type Expense struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Category      ExpenseCategory `gorm:"column:category;type:varchar(20);not null;index:ix_expenses_category" json:"category"`
	Amount        float64         `gorm:"column:amount;not null" json:"amount"`
	Date          time.Time       `gorm:"column:date;not null;index:ix_expenses_date" json:"date"`
	Description   string          `gorm:"column:description;not null" json:"description"`
	Vendor        *string         `gorm:"column:vendor;type:varchar(100)" json:"vendor,omitempty"`
	InvoiceNumber *string         `gorm:"column:invoice_number;type:varchar(50)" json:"invoice_number,omitempty"`
	ApprovedBy    uuid.UUID       `gorm:"column:approved_by;type:uuid;not null" json:"approved_by"`
	CreatedAt     time.Time       `gorm:"column:created_at;not null" json:"created_at"`
}

func (Expense) TableName() string { return "expenses" }

func (m *Expense) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
