package http

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/invoice-processor/internal/application/dto"
	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
	"github.com/jhoicas/invoice-processor/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	invoices *invoicing.InvoiceService
	importer *invoicing.ImportService
	exporter *invoicing.ExportService
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	invoices *invoicing.InvoiceService,
	importer *invoicing.ImportService,
	exporter *invoicing.ExportService,
) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, importer: importer, exporter: exporter}
}

// List lista facturas paginadas.
// GET /api/invoices?page=1&per_page=20
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)
	invoices, err := h.invoices.PaginatedInvoices(page, perPage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(invoices)
}

// GetByID obtiene el detalle completo de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	details, err := h.invoices.InvoiceDetails(int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(details)
}

// Import recibe un archivo tabular (csv/xlsx) y lo importa.
// POST /api/invoices/import (multipart, campo "file")
func (h *InvoiceHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se requiere el campo file"})
	}

	// El lector se elige por extensión, así que el temporal la conserva.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer os.Remove(tmpPath)

	result, err := h.importer.ImportFile(c.Context(), tmpPath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// Export serializa todas las facturas en el formato pedido.
// GET /api/invoices/export?format=json|xml
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "json")
	body, contentType, err := h.exporter.Export(format)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato no soportado: " + format})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}
