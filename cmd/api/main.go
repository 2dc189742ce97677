package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/memory"
	mongodb "github.com/jhoicas/invoice-processor/internal/infrastructure/database/mongo"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/postgres"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/export"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/repository"
	httpRouter "github.com/jhoicas/invoice-processor/internal/interfaces/http"
	"github.com/jhoicas/invoice-processor/pkg/config"
	"github.com/jhoicas/invoice-processor/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	adapter, cleanup, err := buildAdapter(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al backend de almacenamiento")
	}
	defer cleanup()

	customerRepo := repository.NewCustomerRepository(adapter)
	productRepo := repository.NewProductRepository(adapter)
	invoiceRepo := repository.NewInvoiceRepository(adapter)

	invoiceSvc := invoicing.NewInvoiceService(invoiceRepo, customerRepo)
	importSvc := invoicing.NewImportService(customerRepo, productRepo, invoiceRepo, log)
	exportSvc := invoicing.NewExportService(invoiceRepo, customerRepo)
	exportSvc.Register("json", export.NewJSONExporter())
	exportSvc.Register("xml", export.NewXMLExporter())
	customerSvc := invoicing.NewCustomerService(customerRepo)
	productSvc := invoicing.NewProductService(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceSvc:  invoiceSvc,
		ImportSvc:   importSvc,
		ExportSvc:   exportSvc,
		CustomerSvc: customerSvc,
		ProductSvc:  productSvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// buildAdapter arma el adapter según DB_DRIVER. Toda la app queda atada al
// contrato database.Adapter; cambiar de backend es cambiar esta función.
func buildAdapter(ctx context.Context, cfg config.DBConfig) (database.Adapter, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Setup(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewAdapter(pool), pool.Close, nil
	case config.DriverMongo:
		adapter, client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		if err := adapter.Setup(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		return adapter, func() { _ = client.Disconnect(context.Background()) }, nil
	default: // config.DriverMemory
		adapter := memory.NewAdapter()
		adapter.Unique("customers", "name")
		adapter.Unique("products", "name")
		return adapter, func() {}, nil
	}
}
