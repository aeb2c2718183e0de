package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// InvoiceItem is one line of the items JSONB column.
type InvoiceItem struct {
	FeeTypeID   uuid.UUID `json:"fee_type_id"`
	FeeTypeName string    `json:"fee_type_name"`
	Amount      float64   `json:"amount"`
}

type Invoice struct {
	ID            uuid.UUID     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	InvoiceNumber string        `gorm:"column:invoice_number;type:varchar(50);not null;uniqueIndex:uniq_invoices_number" json:"invoice_number"`
	StudentID     uuid.UUID     `gorm:"column:student_id;type:uuid;not null;index:ix_invoices_student" json:"student_id"`
	ClassID       uuid.UUID     `gorm:"column:class_id;type:uuid;not null" json:"class_id"`
	SchoolYearID  uuid.UUID     `gorm:"column:school_year_id;type:uuid;not null" json:"school_year_id"`
	IssueDate     time.Time     `gorm:"column:issue_date;not null;index:ix_invoices_issue_date" json:"issue_date"`
	DueDate       time.Time     `gorm:"column:due_date;not null" json:"due_date"`
	TotalAmount   float64       `gorm:"column:total_amount;not null" json:"total_amount"`
	PaidAmount    float64       `gorm:"column:paid_amount;not null;default:0" json:"paid_amount"`
	Status        InvoiceStatus `gorm:"column:status;type:varchar(20);not null;default:'pending';index:ix_invoices_status" json:"status"`

	// [{fee_type_id, fee_type_name, amount}]
	Items datatypes.JSON `gorm:"column:items" json:"items"`

	Remarks   *string   `gorm:"column:remarks" json:"remarks,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

func (m *Invoice) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = InvoiceStatusPending
	}
	if len(m.Items) == 0 {
		m.Items = datatypes.JSON([]byte("[]"))
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}

func (m *Invoice) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodOnline       PaymentMethod = "online"
)

type Payment struct {
	ID            uuid.UUID     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	InvoiceID     uuid.UUID     `gorm:"column:invoice_id;type:uuid;not null;index:ix_payments_invoice" json:"invoice_id"`
	StudentID     uuid.UUID     `gorm:"column:student_id;type:uuid;not null;index:ix_payments_student" json:"student_id"`
	Amount        float64       `gorm:"column:amount;not null" json:"amount"`
	PaymentDate   time.Time     `gorm:"column:payment_date;not null;index:ix_payments_date" json:"payment_date"`
	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	TransactionID *string       `gorm:"column:transaction_id;type:varchar(100)" json:"transaction_id,omitempty"`
	Remarks       *string       `gorm:"column:remarks" json:"remarks,omitempty"`
	ReceivedBy    uuid.UUID     `gorm:"column:received_by;type:uuid;not null" json:"received_by"`
	CreatedAt     time.Time     `gorm:"column:created_at;not null" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

func (m *Payment) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.PaymentDate.IsZero() {
		m.PaymentDate = time.Now().UTC()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
