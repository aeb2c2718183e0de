package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/configs"
	dto "edumanage_backend/internals/features/finance/dto"
	model "edumanage_backend/internals/features/finance/model"
	service "edumanage_backend/internals/features/finance/service"
	helper "edumanage_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Payments  *service.PaymentService
	Gateway   *service.GatewayService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:        db,
		Validator: validator.New(),
		Payments:  service.NewPaymentService(db),
		Gateway:   service.NewGatewayService(db, configs.MidtransServerKey),
	}
}

// POST /api/payments (admin|accountant). Records the payment and
// reconciles its invoice in the same operation.
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	receivedBy, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, err := req.ToModel(receivedBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	if err := ctl.Payments.Record(payment); err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payment amount must be positive")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Payment recorded", payment)
}

// GET /api/payments?student_id=&invoice_id= sorted payment_date desc
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Payment{})
	q, badParam := filterByUUIDParams(c, q, map[string]string{
		"student_id": "student_id",
		"invoice_id": "invoice_id",
	})
	if badParam != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+badParam)
	}

	var payments []model.Payment
	if err := q.Order("payment_date DESC").Limit(1000).Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", payments)
}

// POST /api/payments/gateway/checkout (admin|accountant)
func (ctl *PaymentController) GatewayCheckout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctl.Gateway.Checkout(req.InvoiceID, req.PayerName, req.PayerEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice not found")
		case errors.Is(err, service.ErrInvoiceNotOpen):
			return helper.JsonError(c, fiber.StatusBadRequest, "Invoice is not open for payment")
		default:
			return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
		}
	}
	return helper.JsonOK(c, "Checkout created", result)
}

// POST /api/payments/gateway/notification. Unauthenticated webhook,
// access controlled by the gateway signature.
func (ctl *PaymentController) GatewayNotification(c *fiber.Ctx) error {
	var n service.Notification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	payment, err := ctl.Gateway.HandleNotification(&n)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignature):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
		case errors.Is(err, service.ErrInvoiceNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Invoice not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if payment == nil {
		return helper.JsonOK(c, "Ignored", nil)
	}
	return helper.JsonOK(c, "Payment recorded", payment)
}
