package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/invoice-processor/internal/application/invoicing"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/memory"
	mongodb "github.com/jhoicas/invoice-processor/internal/infrastructure/database/mongo"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/database/postgres"
	"github.com/jhoicas/invoice-processor/internal/infrastructure/repository"
	"github.com/jhoicas/invoice-processor/pkg/config"
	"github.com/jhoicas/invoice-processor/pkg/logger"
)

// Comando de import por línea de comandos: lee un archivo tabular (csv/xlsx)
// y lo carga en el backend configurado.
//
//	importer -file facturas.xlsx
func main() {
	filePath := flag.String("file", "", "archivo a importar (.csv o .xlsx)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *filePath == "" {
		log.Fatal().Msg("uso: importer -file <archivo>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	adapter, cleanup, err := buildAdapter(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al backend de almacenamiento")
	}
	defer cleanup()

	customerRepo := repository.NewCustomerRepository(adapter)
	productRepo := repository.NewProductRepository(adapter)
	invoiceRepo := repository.NewInvoiceRepository(adapter)
	importSvc := invoicing.NewImportService(customerRepo, productRepo, invoiceRepo, log)

	result, err := importSvc.ImportFile(ctx, *filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", *filePath).Msg("import fallido")
	}

	log.Info().
		Str("file", *filePath).
		Int("invoices", result.Invoices).
		Int("customers", result.Customers).
		Int("products", result.Products).
		Int("items", result.Items).
		Msg("import exitoso")
}

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
