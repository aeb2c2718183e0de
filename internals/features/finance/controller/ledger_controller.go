package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/finance/dto"
	model "edumanage_backend/internals/features/finance/model"
	service "edumanage_backend/internals/features/finance/service"
	helper "edumanage_backend/internals/helpers"
)

type LedgerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Reports   *service.ReportService
}

func NewLedgerController(db *gorm.DB) *LedgerController {
	return &LedgerController{
		DB:        db,
		Validator: validator.New(),
		Reports:   service.NewReportService(db),
	}
}

// POST /api/income (admin|accountant)
func (ctl *LedgerController) CreateIncome(c *fiber.Ctx) error {
	receivedBy, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	income, err := req.ToModel(receivedBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Create(income).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Income recorded", income)
}

// GET /api/income?category=&date_from=&date_to= sorted date desc
func (ctl *LedgerController) ListIncome(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Income{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category = ?", category)
	}
	q, err := dateRangeQuery(c, q, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	var records []model.Income
	if err := q.Order("date DESC").Limit(1000).Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", records)
}

// POST /api/expenses (admin|accountant)
func (ctl *LedgerController) CreateExpense(c *fiber.Ctx) error {
	approvedBy, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	expense, err := req.ToModel(approvedBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Create(expense).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Expense recorded", expense)
}

// GET /api/expenses?category=&date_from=&date_to= sorted date desc
func (ctl *LedgerController) ListExpenses(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Expense{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category = ?", category)
	}
	q, err := dateRangeQuery(c, q, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	var records []model.Expense
	if err := q.Order("date DESC").Limit(1000).Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", records)
}

// GET /api/financial-reports?date_from=&date_to= (admin|accountant)
func (ctl *LedgerController) FinancialReport(c *fiber.Ctx) error {
	from, err := helper.QueryDate(c, "date_from")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	to, err := helper.QueryDate(c, "date_to")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	report, err := ctl.Reports.Build(from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", report)
}

func dateRangeQuery(c *fiber.Ctx, q *gorm.DB, column string) (*gorm.DB, error) {
	from, err := helper.QueryDate(c, "date_from")
	if err != nil {
		return nil, err
	}
	to, err := helper.QueryDate(c, "date_to")
	if err != nil {
		return nil, err
	}
	if from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(column+" <= ?", *to)
	}
	return q, nil
}
