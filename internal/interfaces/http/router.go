package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceSvc  *invoicing.InvoiceService
	ImportSvc   *invoicing.ImportService
	ExportSvc   *invoicing.ExportService
	CustomerSvc *invoicing.CustomerService
	ProductSvc  *invoicing.ProductService
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc, deps.ImportSvc, deps.ExportSvc)
	invoices.Get("/", invoiceHandler.List)
	// Las rutas fijas van antes que :id para que no las capture el parámetro
	invoices.Get("/export", invoiceHandler.Export)
	invoices.Post("/import", invoiceHandler.Import)
	invoices.Get("/:id", invoiceHandler.GetByID)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductSvc)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
}
