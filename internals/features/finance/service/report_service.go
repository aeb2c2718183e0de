package service

import (
	"time"

	"gorm.io/gorm"

	model "edumanage_backend/internals/features/finance/model"
)

type FinancialReport struct {
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	TotalFeeCollected  float64            `json:"total_fee_collected"`
	TotalPendingFees   float64            `json:"total_pending_fees"`
	NetProfit          float64            `json:"net_profit"`
	IncomeByCategory   map[string]float64 `json:"income_by_category"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// Build computes the financial summary. Income, expenses and fee
// collection are bounded by the optional date range (income/expenses on
// their own date column, fee collection on payment_date). Pending fees
// are a point-in-time balance over open invoices and ignore the range.
func (s *ReportService) Build(from, to *time.Time) (*FinancialReport, error) {
	report := &FinancialReport{
		IncomeByCategory:   map[string]float64{},
		ExpensesByCategory: map[string]float64{},
	}

	incomeQ := dateBounded(s.DB.Model(&model.Income{}), "date", from, to)
	if err := sumInto(incomeQ, &report.TotalIncome); err != nil {
		return nil, err
	}

	expenseQ := dateBounded(s.DB.Model(&model.Expense{}), "date", from, to)
	if err := sumInto(expenseQ, &report.TotalExpenses); err != nil {
		return nil, err
	}

	paymentQ := dateBounded(s.DB.Model(&model.Payment{}), "payment_date", from, to)
	if err := sumInto(paymentQ, &report.TotalFeeCollected); err != nil {
		return nil, err
	}

	var pending float64
	err := s.DB.Model(&model.Invoice{}).
		Select("COALESCE(SUM(total_amount - paid_amount), 0)").
		Where("status IN ?", []model.InvoiceStatus{
			model.InvoiceStatusPending,
			model.InvoiceStatusPartiallyPaid,
			model.InvoiceStatusOverdue,
		}).
		Scan(&pending).Error
	if err != nil {
		return nil, err
	}
	report.TotalPendingFees = pending

	report.NetProfit = report.TotalIncome - report.TotalExpenses

	if err := s.groupByCategory(&model.Income{}, "date", from, to, report.IncomeByCategory); err != nil {
		return nil, err
	}
	if err := s.groupByCategory(&model.Expense{}, "date", from, to, report.ExpensesByCategory); err != nil {
		return nil, err
	}
	return report, nil
}

type categorySum struct {
	Category string
	Total    float64
}

func (s *ReportService) groupByCategory(m interface{}, column string, from, to *time.Time, out map[string]float64) error {
	var rows []categorySum
	q := dateBounded(s.DB.Model(m), column, from, to)
	if err := q.Select("category, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Scan(&rows).Error; err != nil {
		return err
	}
	for _, row := range rows {
		out[row.Category] = row.Total
	}
	return nil
}

func sumInto(q *gorm.DB, dst *float64) error {
	return q.Select("COALESCE(SUM(amount), 0)").Scan(dst).Error
}

func dateBounded(q *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(column+" <= ?", *to)
	}
	return q
}
