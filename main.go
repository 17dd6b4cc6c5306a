package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"smartconstruction/config"
	"smartconstruction/handlers"
	"smartconstruction/logging"
	"smartconstruction/metrics"
)

// configPath returns the YAML config location, overridable with SC_CONFIG_FILE.
func configPath() string {
	if p := os.Getenv("SC_CONFIG_FILE"); p != "" {
		return p
	}
	return "config.yaml"
}

func main() {
	cfg, err := config.Load(configPath(), ".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	settings := handlers.Settings{
		Rates:      cfg.Rates,
		Labour:     cfg.Defaults.Labour,
		FixedCosts: cfg.Defaults.FixedCosts,
		Now:        time.Now,
	}
	if cfg.Metrics.Enabled {
		settings.Metrics = metrics.Default()
	}

	app := pocketbase.NewWithConfig(pocketbase.Config{DefaultDev: cfg.IsDev()})
	app.RootCmd.AddCommand(newEstimateCmd(settings))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.BindFunc(handlers.RequestLogger())

		// ── Quotation builder ────────────────────────────────────
		se.Router.GET("/quotation", handlers.HandleQuotationPage(settings))
		se.Router.POST("/quotation", handlers.HandleQuotationCreate(settings))
		se.Router.POST("/quotation/builder", handlers.HandleQuotationBuilder(settings))
		se.Router.POST("/quotation/summary", handlers.HandleQuotationSummary(settings))

		// ── Quotation export ─────────────────────────────────────
		se.Router.POST("/quotation/export/excel", handlers.HandleQuotationExportExcel(settings))
		se.Router.POST("/quotation/export/pdf", handlers.HandleQuotationExportPDF(settings))

		// ── Room import ──────────────────────────────────────────
		se.Router.GET("/quotation/import/template", handlers.HandleRoomTemplateDownload(settings))
		se.Router.POST("/quotation/import", handlers.HandleRoomImport(settings))
		se.Router.POST("/quotation/import/errors", handlers.HandleRoomImportErrors(settings))

		// ── Invoice ──────────────────────────────────────────────
		se.Router.GET("/invoice", handlers.HandleInvoicePage(settings))
		se.Router.POST("/invoice", handlers.HandleInvoiceFromQuotation(settings))
		se.Router.POST("/invoice/summary", handlers.HandleInvoiceSummary(settings))
		se.Router.POST("/invoice/export/pdf", handlers.HandleInvoiceExportPDF(settings))

		// ── JSON estimate API ────────────────────────────────────
		se.Router.POST("/api/estimate/room", handlers.HandleEstimateRoomAPI(settings))
		se.Router.POST("/api/estimate/quotation", handlers.HandleEstimateQuotationAPI(settings))

		if cfg.Metrics.Enabled {
			se.Router.GET("/metrics", apis.WrapStdHandler(metrics.Handler()))
		}

		// Redirect home to the quotation builder
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotation")
		})

		zap.L().Info("routes registered",
			zap.String("env", cfg.App.Env),
			zap.Bool("metrics", cfg.Metrics.Enabled),
		)
		return se.Next()
	})

	if err := app.Start(); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
