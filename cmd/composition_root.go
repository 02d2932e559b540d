package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "ordersheet/internal/adapters/in/http"
	"ordersheet/internal/adapters/out/googlesheets"
	"ordersheet/internal/adapters/out/memory"
	"ordersheet/internal/adapters/out/postgres"
	"ordersheet/internal/adapters/out/postgres/rowtable"
	"ordersheet/internal/adapters/out/sheet/orderrepo"
	"ordersheet/internal/adapters/out/sheet/referencerepo"
	"ordersheet/internal/core/application/usecases/commands"
	"ordersheet/internal/core/application/usecases/queries"
	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/ports"
	"ordersheet/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Reference sheet headers written when a storage engine starts empty.
var (
	productsHeader = sheet.Row{"Code", "Product"}
	couriersHeader = sheet.Row{"Courier"}
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	workbook   ports.Workbook
	uowFactory ports.UnitOfWorkFactory
	registry   *prometheus.Registry
	closers    []func() error
}

// NewCompositionRoot opens the configured storage engine and makes sure the orders
// and reference sheets exist.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:   config,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	root.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var err error
	switch config.StorageDriver {
	case DriverPostgres:
		err = root.openPostgres(ctx)
	case DriverSheets:
		err = root.openSheets(ctx)
	default:
		root.openMemory()
	}
	if err != nil {
		_ = root.Close()
		return nil, err
	}

	logger.Info("storage engine ready", "component", "composition_root", "driver", config.StorageDriver)
	return root, nil
}

func (c *CompositionRoot) openMemory() {
	wb := memory.NewWorkbook()
	wb.EnsureSheet(c.config.OrdersSheet, sheet.OrderHeader())
	wb.EnsureSheet(c.config.ProductsSheet, productsHeader)
	wb.EnsureSheet(c.config.CouriersSheet, couriersHeader)

	c.workbook = wb
	c.uowFactory = memory.NewUnitOfWorkFactory(wb, c.config.OrdersSheet, c.config.LockTimeout)
}

func (c *CompositionRoot) openPostgres(ctx context.Context) error {
	db, err := gorm.Open(gorm_postgres.Open(c.config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	c.closers = append(c.closers, sqlDB.Close)

	wb := rowtable.NewGormWorkbook(db)
	if err = wb.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err = ensureSheets(ctx, wb, c.config); err != nil {
		return err
	}

	c.workbook = wb
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(db, c.config.OrdersSheet, c.config.LockTimeout)
	return nil
}

func (c *CompositionRoot) openSheets(ctx context.Context) error {
	srv, err := googlesheets.NewService(ctx, c.config.SheetsCredentialsFile)
	if err != nil {
		return err
	}

	wb := googlesheets.NewWorkbook(srv, c.config.SheetsSpreadsheetID)
	if err = ensureSheets(ctx, wb, c.config); err != nil {
		return err
	}

	c.workbook = wb
	c.uowFactory = googlesheets.NewUnitOfWorkFactory(wb, c.config.OrdersSheet, c.config.LockTimeout)
	return nil
}

type sheetEnsurer interface {
	EnsureSheet(ctx context.Context, name string, header sheet.Row) error
}

func ensureSheets(ctx context.Context, wb sheetEnsurer, config Config) error {
	for name, header := range map[string]sheet.Row{
		config.OrdersSheet:   sheet.OrderHeader(),
		config.ProductsSheet: productsHeader,
		config.CouriersSheet: couriersHeader,
	} {
		if err := wb.EnsureSheet(ctx, name, header); err != nil {
			return fmt.Errorf("ensure sheet %q: %w", name, err)
		}
	}
	return nil
}

// Close releases the storage engine connections.
func (c *CompositionRoot) Close() error {
	var first error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ordersTable() ports.RowTable {
	return c.workbook.Table(c.config.OrdersSheet)
}

func (c *CompositionRoot) CreateSaveOrderCommandHandler() commands.SaveOrderCommandHandler {
	return commands.NewSaveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(orderrepo.NewSheetOrderRepository(c.ordersTable()))
}

func (c *CompositionRoot) CreateGetInitDataQueryHandler() queries.GetInitDataQueryHandler {
	return queries.NewGetInitDataQueryHandler(referencerepo.NewSheetReferenceRepository(c.workbook, referencerepo.Config{
		ProductsSheet:  c.config.ProductsSheet,
		ProductsColumn: sheet.ProductsColumn,
		CouriersSheet:  c.config.CouriersSheet,
		CouriersColumn: sheet.CouriersColumn,
	}))
}

func (c *CompositionRoot) CreateAuditOrdersQueryHandler() queries.AuditOrdersQueryHandler {
	return queries.NewAuditOrdersQueryHandler(c.ordersTable())
}

func (c *CompositionRoot) CreateIntegrityAuditJob() *jobs.IntegrityAuditJob {
	return jobs.NewIntegrityAuditJob(c.CreateAuditOrdersQueryHandler(), c.config.AuditSchedule, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAuditOrdersQueryHandler(), c.config.AuditSchedule, c.logger)
}

// CreateHTTPServer wires the API handlers with metrics registered on the root registry.
func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	metrics, err := httpin.NewMetrics(c.registry)
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.CreateSaveOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetInitDataQueryHandler(),
		metrics,
		c.logger,
	), nil
}

// Registry returns the Prometheus registry served on /metrics.
func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
