package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "edumanage_backend/internals/features/finance/model"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// Reconcile computes the post-payment paid amount and status for an
// invoice. Overpayment is allowed and never capped; paid_amount >=
// total_amount means fully paid, anything less means partially paid.
// Overdue and cancelled are operator states and are never produced here.
func Reconcile(paidAmount, totalAmount, amount float64) (float64, model.InvoiceStatus) {
	newPaid := paidAmount + amount
	if newPaid >= totalAmount {
		return newPaid, model.InvoiceStatusPaid
	}
	return newPaid, model.InvoiceStatusPartiallyPaid
}

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Record stores the payment and reconciles its invoice in one
// transaction. The invoice update is a single conditional UPDATE:
// paid_amount and status are recomputed in the statement itself, so two
// concurrent payments of A both land and paid_amount ends at 2A rather
// than one increment overwriting the other.
//
// A payment against a missing invoice is still recorded; the UPDATE
// simply touches zero rows.
func (s *PaymentService) Record(payment *model.Payment) error {
	if payment.Amount <= 0 {
		return ErrInvalidAmount
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return s.applyToInvoice(tx, payment.InvoiceID, payment.Amount)
	})
}

func (s *PaymentService) applyToInvoice(tx *gorm.DB, invoiceID uuid.UUID, amount float64) error {
	return tx.Model(&model.Invoice{}).
		Where("id = ?", invoiceID).
		Updates(map[string]interface{}{
			"paid_amount": gorm.Expr("paid_amount + ?", amount),
			"status": gorm.Expr(
				"CASE WHEN paid_amount + ? >= total_amount THEN ? ELSE ? END",
				amount, model.InvoiceStatusPaid, model.InvoiceStatusPartiallyPaid,
			),
		}).Error
}
