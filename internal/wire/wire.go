// Package wire provides dependency injection for the foundry application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	"github.com/example/foundry/internal/adapters/catalog"
	cliadapter "github.com/example/foundry/internal/adapters/cli"
	"github.com/example/foundry/internal/adapters/sqlite"
	"github.com/example/foundry/internal/app"
	"github.com/example/foundry/internal/config"
	"github.com/example/foundry/internal/core/cost"
	"github.com/example/foundry/internal/core/dfm"
	"github.com/example/foundry/internal/core/rules"
	"github.com/example/foundry/internal/db"
	"github.com/example/foundry/internal/logger"
	"github.com/example/foundry/internal/ports/primary"
)

var (
	cfg      *config.Config
	database *sql.DB
	appLog   *logger.Logger

	partService     primary.PartService
	dfmService      primary.DFMService
	costService     primary.CostService
	vendorService   primary.VendorService
	whatIfService   primary.WhatIfService
	versionService  primary.VersionService
	quoteService    primary.QuoteService
	materialService primary.MaterialService
	once            sync.Once
)

// Configure sets the configuration used when services are first built.
// Without it, config.Load() is used.
func Configure(c *config.Config) {
	cfg = c
}

// PartService returns the singleton PartService instance.
func PartService() primary.PartService {
	once.Do(initServices)
	return partService
}

// VendorService returns the singleton VendorService instance.
func VendorService() primary.VendorService {
	once.Do(initServices)
	return vendorService
}

// Database returns the shared database connection.
func Database() *sql.DB {
	once.Do(initServices)
	return database
}

// Logger returns the application logger.
func Logger() *logger.Logger {
	once.Do(initServices)
	return appLog
}

// Close flushes the logger and closes the database.
func Close() {
	if appLog != nil {
		appLog.Sync()
	}
	db.Close()
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	l, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	appLog = l

	db.Configure(cfg.DBPath)
	database, err = db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	partRepo := sqlite.NewPartRepository(database)
	snapshotRepo := sqlite.NewSnapshotRepository(database)
	vendorRepo := sqlite.NewVendorRepository(database)
	activity := sqlite.NewActivityRepository(database)

	// Reference data is loaded once and shared read-only
	materials, err := app.LoadMaterialCatalog(context.Background(), catalog.NewMaterialSource(cfg.MaterialCatalogPath))
	if err != nil {
		log.Fatalf("failed to load material catalog: %v", err)
	}
	evaluator := dfm.NewEvaluator(rules.DefaultRouter(), rules.DefaultCatalog(), materials)
	model := cost.DefaultModel()
	locks := app.NewPartLocks()

	// Create services (primary ports implementation)
	partService = app.NewPartService(partRepo, activity, locks, appLog)
	dfmService = app.NewDFMService(partRepo, activity, evaluator, locks, appLog)
	costService = app.NewCostService(partRepo, activity, model, appLog)
	vendorService = app.NewVendorService(partRepo, vendorRepo, activity, appLog)
	whatIfService = app.NewWhatIfService(partRepo, vendorRepo, activity, evaluator, model, locks, appLog)
	versionService = app.NewVersionService(partRepo, snapshotRepo, activity, model, appLog)
	quoteService = app.NewQuoteService(partRepo, vendorRepo, activity, model, appLog)
	materialService = app.NewMaterialService(materials)

	appLog.Debug("services initialized", "db_path", cfg.DBPath, "materials", materials.Len())
}

// PartAdapter returns a new PartAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func PartAdapter() *cliadapter.PartAdapter {
	return PartAdapterWithOutput(os.Stdout)
}

// PartAdapterWithOutput returns a new PartAdapter writing to the given output.
func PartAdapterWithOutput(out io.Writer) *cliadapter.PartAdapter {
	once.Do(initServices)
	return cliadapter.NewPartAdapter(partService, out)
}

// DFMAdapter returns a new DFMAdapter writing to stdout.
func DFMAdapter() *cliadapter.DFMAdapter {
	return DFMAdapterWithOutput(os.Stdout)
}

// DFMAdapterWithOutput returns a new DFMAdapter writing to the given output.
func DFMAdapterWithOutput(out io.Writer) *cliadapter.DFMAdapter {
	once.Do(initServices)
	return cliadapter.NewDFMAdapter(dfmService, out)
}

// CostAdapter returns a new CostAdapter writing to stdout.
func CostAdapter() *cliadapter.CostAdapter {
	return CostAdapterWithOutput(os.Stdout)
}

// CostAdapterWithOutput returns a new CostAdapter writing to the given output.
func CostAdapterWithOutput(out io.Writer) *cliadapter.CostAdapter {
	once.Do(initServices)
	return cliadapter.NewCostAdapter(costService, out)
}

// VendorAdapter returns a new VendorAdapter writing to stdout.
func VendorAdapter() *cliadapter.VendorAdapter {
	return VendorAdapterWithOutput(os.Stdout)
}

// VendorAdapterWithOutput returns a new VendorAdapter writing to the given output.
func VendorAdapterWithOutput(out io.Writer) *cliadapter.VendorAdapter {
	once.Do(initServices)
	return cliadapter.NewVendorAdapter(vendorService, out)
}

// WhatIfAdapter returns a new WhatIfAdapter writing to stdout.
func WhatIfAdapter() *cliadapter.WhatIfAdapter {
	return WhatIfAdapterWithOutput(os.Stdout)
}

// WhatIfAdapterWithOutput returns a new WhatIfAdapter writing to the given output.
func WhatIfAdapterWithOutput(out io.Writer) *cliadapter.WhatIfAdapter {
	once.Do(initServices)
	return cliadapter.NewWhatIfAdapter(whatIfService, out)
}

// VersionAdapter returns a new VersionAdapter writing to stdout.
func VersionAdapter() *cliadapter.VersionAdapter {
	return VersionAdapterWithOutput(os.Stdout)
}

// VersionAdapterWithOutput returns a new VersionAdapter writing to the given output.
func VersionAdapterWithOutput(out io.Writer) *cliadapter.VersionAdapter {
	once.Do(initServices)
	return cliadapter.NewVersionAdapter(versionService, out)
}

// QuoteAdapter returns a new QuoteAdapter writing to stdout.
func QuoteAdapter() *cliadapter.QuoteAdapter {
	return QuoteAdapterWithOutput(os.Stdout)
}

// QuoteAdapterWithOutput returns a new QuoteAdapter writing to the given output.
func QuoteAdapterWithOutput(out io.Writer) *cliadapter.QuoteAdapter {
	once.Do(initServices)
	return cliadapter.NewQuoteAdapter(quoteService, out)
}

// MaterialAdapter returns a new MaterialAdapter writing to stdout.
func MaterialAdapter() *cliadapter.MaterialAdapter {
	return MaterialAdapterWithOutput(os.Stdout)
}

// MaterialAdapterWithOutput returns a new MaterialAdapter writing to the given output.
func MaterialAdapterWithOutput(out io.Writer) *cliadapter.MaterialAdapter {
	once.Do(initServices)
	return cliadapter.NewMaterialAdapter(materialService, out)
}
