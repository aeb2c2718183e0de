package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signNotification(n *Notification, serverKey string) {
	h := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	n.SignatureKey = hex.EncodeToString(h[:])
}

func TestVerifySignature(t *testing.T) {
	svc := &GatewayService{ServerKey: "sk-test"}

	n := &Notification{
		OrderID:     "INV-abc-123",
		StatusCode:  "200",
		GrossAmount: "100.00",
	}
	signNotification(n, "sk-test")
	assert.NoError(t, svc.VerifySignature(n))

	n.SignatureKey = "tampered"
	assert.ErrorIs(t, svc.VerifySignature(n), ErrInvalidSignature)

	signNotification(n, "sk-wrong")
	assert.ErrorIs(t, svc.VerifySignature(n), ErrInvalidSignature)
}

func TestInvoiceIDFromOrderID(t *testing.T) {
	id := uuid.New()

	got, err := invoiceIDFromOrderID("INV-" + id.String() + "-1724900000")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = invoiceIDFromOrderID("ORDER-123")
	assert.Error(t, err)

	_, err = invoiceIDFromOrderID("INV-not-a-uuid-here-padding-to-36char")
	assert.Error(t, err)
}

func TestHandleNotificationIgnoresNonFinalStatus(t *testing.T) {
	db := openTestDB(t)
	svc := NewGatewayService(db, "sk-test")
	inv := seedInvoice(t, db, 100)

	n := &Notification{
		OrderID:           "INV-" + inv.ID.String() + "-1724900000",
		StatusCode:        "201",
		GrossAmount:       "100.00",
		TransactionStatus: "pending",
	}
	signNotification(n, "sk-test")

	payment, err := svc.HandleNotification(n)
	require.NoError(t, err)
	assert.Nil(t, payment)
}

func TestHandleNotificationSettlement(t *testing.T) {
	db := openTestDB(t)
	svc := NewGatewayService(db, "sk-test")
	inv := seedInvoice(t, db, 100)

	n := &Notification{
		OrderID:           "INV-" + inv.ID.String() + "-1724900000",
		StatusCode:        "200",
		GrossAmount:       "100.00",
		TransactionID:     "mid-trx-1",
		TransactionStatus: "settlement",
	}
	signNotification(n, "sk-test")

	payment, err := svc.HandleNotification(n)
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, 100.0, payment.Amount)

	var got struct {
		PaidAmount float64
		Status     string
	}
	require.NoError(t, db.Table("invoices").
		Select("paid_amount, status").
		Where("id = ?", inv.ID).
		Scan(&got).Error)
	assert.Equal(t, 100.0, got.PaidAmount)
	assert.Equal(t, "paid", got.Status)
}
