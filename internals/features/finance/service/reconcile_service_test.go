package service

import (
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "edumanage_backend/internals/features/finance/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// serialize writes; in-memory sqlite has no row-level locking
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Invoice{}, &model.Payment{}))
	return db
}

func seedInvoice(t *testing.T, db *gorm.DB, total float64) *model.Invoice {
	t.Helper()
	inv := &model.Invoice{
		InvoiceNumber: "INV-" + uuid.NewString()[:8],
		StudentID:     uuid.New(),
		ClassID:       uuid.New(),
		SchoolYearID:  uuid.New(),
		IssueDate:     time.Now().UTC(),
		DueDate:       time.Now().UTC().AddDate(0, 1, 0),
		TotalAmount:   total,
	}
	require.NoError(t, db.Create(inv).Error)
	return inv
}

func payment(inv *model.Invoice, amount float64) *model.Payment {
	return &model.Payment{
		InvoiceID:     inv.ID,
		StudentID:     inv.StudentID,
		Amount:        amount,
		PaymentDate:   time.Now().UTC(),
		PaymentMethod: model.PaymentMethodCash,
		ReceivedBy:    uuid.New(),
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		paid       float64
		total      float64
		amount     float64
		wantPaid   float64
		wantStatus model.InvoiceStatus
	}{
		{"partial", 0, 100, 40, 40, model.InvoiceStatusPartiallyPaid},
		{"exact", 60, 100, 40, 100, model.InvoiceStatusPaid},
		{"overpayment kept", 60, 100, 90, 150, model.InvoiceStatusPaid},
		{"second partial", 40, 100, 30, 70, model.InvoiceStatusPartiallyPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPaid, gotStatus := Reconcile(tt.paid, tt.total, tt.amount)
			assert.Equal(t, tt.wantPaid, gotPaid)
			assert.Equal(t, tt.wantStatus, gotStatus)
		})
	}
}

func TestReconcileCommutative(t *testing.T) {
	paid1, _ := Reconcile(0, 100, 30)
	final1, status1 := Reconcile(paid1, 100, 70)

	paid2, _ := Reconcile(0, 100, 70)
	final2, status2 := Reconcile(paid2, 100, 30)

	assert.Equal(t, final1, final2)
	assert.Equal(t, status1, status2)
	assert.Equal(t, model.InvoiceStatusPaid, status1)
}

func TestRecordPaymentUpdatesInvoice(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	inv := seedInvoice(t, db, 100)

	require.NoError(t, svc.Record(payment(inv, 40)))

	var got model.Invoice
	require.NoError(t, db.First(&got, "id = ?", inv.ID).Error)
	assert.Equal(t, 40.0, got.PaidAmount)
	assert.Equal(t, model.InvoiceStatusPartiallyPaid, got.Status)

	require.NoError(t, svc.Record(payment(inv, 60)))
	require.NoError(t, db.First(&got, "id = ?", inv.ID).Error)
	assert.Equal(t, 100.0, got.PaidAmount)
	assert.Equal(t, model.InvoiceStatusPaid, got.Status)
}

func TestRecordPaymentOverpayment(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	inv := seedInvoice(t, db, 100)

	require.NoError(t, svc.Record(payment(inv, 150)))

	var got model.Invoice
	require.NoError(t, db.First(&got, "id = ?", inv.ID).Error)
	assert.Equal(t, 150.0, got.PaidAmount)
	assert.Equal(t, model.InvoiceStatusPaid, got.Status)
}

func TestRecordPaymentRejectsNonPositive(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	inv := seedInvoice(t, db, 100)

	assert.ErrorIs(t, svc.Record(payment(inv, 0)), ErrInvalidAmount)
	assert.ErrorIs(t, svc.Record(payment(inv, -5)), ErrInvalidAmount)

	var count int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordPaymentMissingInvoice(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)

	p := &model.Payment{
		InvoiceID:     uuid.New(),
		StudentID:     uuid.New(),
		Amount:        50,
		PaymentDate:   time.Now().UTC(),
		PaymentMethod: model.PaymentMethodCash,
		ReceivedBy:    uuid.New(),
	}
	require.NoError(t, svc.Record(p))

	// payment lands, reconciliation silently touched nothing
	var count int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConcurrentEqualPayments(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	inv := seedInvoice(t, db, 100)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Record(payment(inv, 30))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var got model.Invoice
	require.NoError(t, db.First(&got, "id = ?", inv.ID).Error)
	assert.Equal(t, 60.0, got.PaidAmount)
	assert.Equal(t, model.InvoiceStatusPartiallyPaid, got.Status)
}
