package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "edumanage_backend/internals/features/finance/model"
)

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvoiceNotOpen   = errors.New("invoice is not open for payment")
	ErrInvalidSignature = errors.New("invalid gateway signature")
)

var SnapClient snap.Client

// InitMidtrans must be called during app bootstrap.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type GatewayService struct {
	DB        *gorm.DB
	ServerKey string
	Payments  *PaymentService
}

func NewGatewayService(db *gorm.DB, serverKey string) *GatewayService {
	return &GatewayService{DB: db, ServerKey: serverKey, Payments: NewPaymentService(db)}
}

type CheckoutResult struct {
	OrderID     string `json:"order_id"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// Checkout creates a Snap transaction for the outstanding balance of an
// invoice. The order id embeds the invoice id so the webhook can route
// the settlement back.
func (s *GatewayService) Checkout(invoiceID uuid.UUID, payerName, payerEmail string) (*CheckoutResult, error) {
	var invoice model.Invoice
	if err := s.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	if invoice.Status == model.InvoiceStatusPaid || invoice.Status == model.InvoiceStatusCancelled {
		return nil, ErrInvoiceNotOpen
	}

	outstanding := invoice.TotalAmount - invoice.PaidAmount
	if outstanding <= 0 {
		return nil, ErrInvoiceNotOpen
	}

	orderID := fmt.Sprintf("INV-%s-%d", invoice.ID, time.Now().Unix())
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(outstanding),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    invoice.InvoiceNumber,
				Price: int64(outstanding),
				Qty:   1,
				Name:  "School fees " + invoice.InvoiceNumber,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{OrderID: orderID, Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

// Notification is the subset of the Midtrans webhook payload we act on.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// VerifySignature checks the Midtrans webhook signature:
// sha512(order_id + status_code + gross_amount + server_key).
func (s *GatewayService) VerifySignature(n *Notification) error {
	h := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + s.ServerKey))
	expected := hex.EncodeToString(h[:])
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// HandleNotification records a gateway payment and reconciles the
// invoice once the transaction settles. Non-final statuses are ignored.
func (s *GatewayService) HandleNotification(n *Notification) (*model.Payment, error) {
	if err := s.VerifySignature(n); err != nil {
		return nil, err
	}

	settled := n.TransactionStatus == "settlement" ||
		(n.TransactionStatus == "capture" && n.FraudStatus == "accept")
	if !settled {
		return nil, nil
	}

	invoiceID, err := invoiceIDFromOrderID(n.OrderID)
	if err != nil {
		return nil, err
	}
	amount, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil || amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var invoice model.Invoice
	if err := s.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	payment := &model.Payment{
		InvoiceID:     invoice.ID,
		StudentID:     invoice.StudentID,
		Amount:        amount,
		PaymentDate:   time.Now().UTC(),
		PaymentMethod: model.PaymentMethodOnline,
		TransactionID: &n.TransactionID,
		ReceivedBy:    invoice.StudentID, // no operator on the gateway path
	}
	if err := s.Payments.Record(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// order ids look like INV-<uuid>-<unix>
func invoiceIDFromOrderID(orderID string) (uuid.UUID, error) {
	if len(orderID) < 4+36 || orderID[:4] != "INV-" {
		return uuid.Nil, ErrInvoiceNotFound
	}
	return uuid.Parse(orderID[4 : 4+36])
}
