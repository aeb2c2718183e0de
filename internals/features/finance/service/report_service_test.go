package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	model "edumanage_backend/internals/features/finance/model"
)

func openReportDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&model.Income{}, &model.Expense{}))
	return db
}

func seedIncome(t *testing.T, db *gorm.DB, category model.IncomeCategory, amount float64, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Income{
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: "test income",
		ReceivedBy:  uuid.New(),
	}).Error)
}

func seedExpense(t *testing.T, db *gorm.DB, category model.ExpenseCategory, amount float64, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Expense{
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: "test expense",
		ApprovedBy:  uuid.New(),
	}).Error)
}

func TestFinancialReport(t *testing.T) {
	db := openReportDB(t)
	svc := NewReportService(db)
	payments := NewPaymentService(db)

	inRange := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	seedIncome(t, db, model.IncomeCategoryFee, 100, inRange)
	seedIncome(t, db, model.IncomeCategoryDonation, 50, inRange)
	seedExpense(t, db, model.ExpenseCategoryUtilities, 30, inRange)

	inv := seedInvoice(t, db, 200)
	for _, amt := range []float64{80, 20} {
		p := payment(inv, amt)
		p.PaymentDate = inRange
		require.NoError(t, payments.Record(p))
	}
	// 80 + 20 against 200 leaves a 100 open balance; the second
	// untouched invoice adds another 50 of pending fees.
	seedInvoice(t, db, 50)

	report, err := svc.Build(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 150.0, report.TotalIncome)
	assert.Equal(t, 30.0, report.TotalExpenses)
	assert.Equal(t, 100.0, report.TotalFeeCollected)
	assert.Equal(t, 150.0, report.TotalPendingFees)
	assert.Equal(t, 120.0, report.NetProfit)

	assert.Equal(t, map[string]float64{"fee": 100, "donation": 50}, report.IncomeByCategory)
	assert.Equal(t, map[string]float64{"utilities": 30}, report.ExpensesByCategory)
}

func TestFinancialReportDateRange(t *testing.T) {
	db := openReportDB(t)
	svc := NewReportService(db)
	payments := NewPaymentService(db)

	inRange := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	seedIncome(t, db, model.IncomeCategoryFee, 100, inRange)
	seedIncome(t, db, model.IncomeCategoryFee, 999, outOfRange)
	seedExpense(t, db, model.ExpenseCategorySupplies, 25, inRange)
	seedExpense(t, db, model.ExpenseCategorySupplies, 500, outOfRange)

	inv := seedInvoice(t, db, 400)
	early := payment(inv, 40)
	early.PaymentDate = outOfRange
	require.NoError(t, payments.Record(early))
	late := payment(inv, 60)
	late.PaymentDate = inRange
	require.NoError(t, payments.Record(late))

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	report, err := svc.Build(&from, &to)
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.TotalIncome)
	assert.Equal(t, 25.0, report.TotalExpenses)
	assert.Equal(t, 60.0, report.TotalFeeCollected)

	// pending balance ignores the range: 400 total - 100 paid
	assert.Equal(t, 300.0, report.TotalPendingFees)
	assert.Equal(t, 75.0, report.NetProfit)
}

func TestFinancialReportEmpty(t *testing.T) {
	db := openReportDB(t)
	svc := NewReportService(db)

	report, err := svc.Build(nil, nil)
	require.NoError(t, err)

	assert.Zero(t, report.TotalIncome)
	assert.Zero(t, report.TotalExpenses)
	assert.Zero(t, report.TotalFeeCollected)
	assert.Zero(t, report.TotalPendingFees)
	assert.Zero(t, report.NetProfit)
	assert.Empty(t, report.IncomeByCategory)
	assert.Empty(t, report.ExpensesByCategory)
}
