package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/findash/finance_dashboard_app/internal/adapters/jsonfeed"
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/core/services"
	"github.com/findash/finance_dashboard_app/internal/handlers"
	"github.com/findash/finance_dashboard_app/internal/middleware"
	"github.com/findash/finance_dashboard_app/internal/platform/config"
	"github.com/findash/finance_dashboard_app/internal/repositories/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title FinDash Backend API
// @version 1.0
// @description Financial dashboard backend: invoices, bills, bank transactions, reconciliation and summary reports.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		InvoiceRepo:     memory.NewInvoiceRepository(),
		BillRepo:        memory.NewBillRepository(),
		TransactionRepo: memory.NewTransactionRepository(),
	}
	serviceContainer := services.NewServiceContainer(repos)

	// Load the data feed before serving. Each collection degrades to empty
	// on error so a broken payload doesn't take the whole dashboard down.
	loadDataFeed(context.Background(), logger, cfg, serviceContainer)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadDataFeed fetches the three feed collections and seeds the stores.
// Loading transactions last means a single reconciliation pass covers
// everything.
func loadDataFeed(ctx context.Context, logger *slog.Logger, cfg *config.Config, svc *portssvc.ServiceContainer) {
	feed := jsonfeed.New(cfg.DataDir, cfg.FetchDelay)

	invoices, err := feed.FetchInvoices(ctx)
	if err != nil {
		logger.Warn("Failed to fetch invoices feed, starting empty", slog.String("error", err.Error()))
		invoices = nil
	}
	if err := svc.Invoice.ReplaceInvoices(ctx, invoices); err != nil {
		logger.Warn("Failed to load invoices", slog.String("error", err.Error()))
	}

	bills, err := feed.FetchBills(ctx)
	if err != nil {
		logger.Warn("Failed to fetch bills feed, starting empty", slog.String("error", err.Error()))
		bills = nil
	}
	if err := svc.Bill.ReplaceBills(ctx, bills); err != nil {
		logger.Warn("Failed to load bills", slog.String("error", err.Error()))
	}

	txns, err := feed.FetchTransactions(ctx)
	if err != nil {
		logger.Warn("Failed to fetch transactions feed, starting empty", slog.String("error", err.Error()))
		txns = nil
	}
	if err := svc.Transaction.ReplaceTransactions(ctx, txns); err != nil {
		logger.Warn("Failed to load transactions", slog.String("error", err.Error()))
	}

	logger.Info("Data feed loaded",
		slog.Int("invoices", len(invoices)),
		slog.Int("bills", len(bills)),
		slog.Int("transactions", len(txns)),
	)
}
