package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	financeController "edumanage_backend/internals/features/finance/controller"
	authMw "edumanage_backend/internals/middlewares/auth"
)

// FinanceRoutes mounts fee catalog, invoicing, payments, ledger and
// reporting under the authenticated API group.
func FinanceRoutes(api fiber.Router, db *gorm.DB) {
	feeCtl := financeController.NewFeeController(db)
	invoiceCtl := financeController.NewInvoiceController(db)
	paymentCtl := financeController.NewPaymentController(db)
	ledgerCtl := financeController.NewLedgerController(db)

	adminOrAccountant := authMw.OnlyRoles("Admin or accountant access required", constants.AdminOrAccountant...)

	feeTypes := api.Group("/fee-types")
	feeTypes.Post("/", adminOrAccountant, feeCtl.CreateFeeType)
	feeTypes.Get("/", feeCtl.ListFeeTypes)

	feeStructures := api.Group("/fee-structures")
	feeStructures.Post("/", adminOrAccountant, feeCtl.CreateFeeStructure)
	feeStructures.Get("/", feeCtl.ListFeeStructures)

	invoices := api.Group("/invoices")
	invoices.Post("/", adminOrAccountant, invoiceCtl.Create)
	invoices.Get("/", invoiceCtl.List)
	invoices.Get("/:id", invoiceCtl.GetByID)
	invoices.Put("/:id", adminOrAccountant, invoiceCtl.Update)

	payments := api.Group("/payments")
	payments.Post("/", adminOrAccountant, paymentCtl.Create)
	payments.Get("/", paymentCtl.List)
	payments.Post("/gateway/checkout", adminOrAccountant, paymentCtl.GatewayCheckout)

	income := api.Group("/income")
	income.Post("/", adminOrAccountant, ledgerCtl.CreateIncome)
	income.Get("/", adminOrAccountant, ledgerCtl.ListIncome)

	expenses := api.Group("/expenses")
	expenses.Post("/", adminOrAccountant, ledgerCtl.CreateExpense)
	expenses.Get("/", adminOrAccountant, ledgerCtl.ListExpenses)

	api.Get("/financial-reports", adminOrAccountant, ledgerCtl.FinancialReport)
}

// GatewayWebhookRoutes registers the unauthenticated payment gateway
// callback. Must be mounted before the authenticated /api group; the
// webhook authenticates itself by signature.
func GatewayWebhookRoutes(app *fiber.App, db *gorm.DB) {
	paymentCtl := financeController.NewPaymentController(db)
	app.Post("/api/payments/gateway/notification", paymentCtl.GatewayNotification)
}
