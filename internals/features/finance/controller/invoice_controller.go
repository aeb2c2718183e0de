package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/finance/dto"
	model "edumanage_backend/internals/features/finance/model"
	helper "edumanage_backend/internals/helpers"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db, Validator: validator.New()}
}

// POST /api/invoices (admin|accountant)
func (ctl *InvoiceController) Create(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	invoice, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Create(invoice).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invoice number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Invoice created", invoice)
}

// GET /api/invoices?student_id=&status= sorted issue_date desc
func (ctl *InvoiceController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Invoice{})
	q, badParam := filterByUUIDParams(c, q, map[string]string{"student_id": "student_id"})
	if badParam != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+badParam)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		switch model.InvoiceStatus(status) {
		case model.InvoiceStatusPending, model.InvoiceStatusPaid,
			model.InvoiceStatusPartiallyPaid, model.InvoiceStatusOverdue,
			model.InvoiceStatusCancelled:
			q = q.Where("status = ?", status)
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown invoice status")
		}
	}

	var invoices []model.Invoice
	if err := q.Order("issue_date DESC").Limit(1000).Find(&invoices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", invoices)
}

// GET /api/invoices/:id
func (ctl *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid invoice id")
	}

	var invoice model.Invoice
	if err := ctl.DB.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", invoice)
}

// PUT /api/invoices/:id (admin|accountant). This is the explicit path
// for marking invoices overdue or cancelled.
func (ctl *InvoiceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid invoice id")
	}

	var req dto.UpdateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var invoice model.Invoice
	if err := ctl.DB.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := req.ApplyTo(&invoice); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Save(&invoice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Invoice updated", invoice)
}

// filterByUUIDParams narrows q by any of the given query params that are
// present. The second return value names the first malformed param.
func filterByUUIDParams(c *fiber.Ctx, q *gorm.DB, params map[string]string) (*gorm.DB, string) {
	for param, column := range params {
		raw := strings.TrimSpace(c.Query(param))
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return q, param
		}
		q = q.Where(column+" = ?", id)
	}
	return q, ""
}
