// Command invoiced serves the invoice ledger over HTTP. It is a thin
// boundary: identity comes from the X-Sender header, funds are declared in
// the request body, and value-transfer instructions are returned to the
// caller rather than executed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	ledger "github.com/xraph/invoiceledger"
	"github.com/xraph/invoiceledger/addr/evm"
	"github.com/xraph/invoiceledger/audit"
	"github.com/xraph/invoiceledger/store"
	"github.com/xraph/invoiceledger/store/memory"
	"github.com/xraph/invoiceledger/store/mongo"
	"github.com/xraph/invoiceledger/store/postgres"
	"github.com/xraph/invoiceledger/store/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("invoiced exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}

	opts := []ledger.Option{
		ledger.WithLogger(logger),
		ledger.WithHook(audit.New(slogRecorder(logger))),
	}
	if cfg.EVMAddresses {
		opts = append(opts, ledger.WithValidator(evm.Validator{}))
	}

	l := ledger.New(s, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := l.Start(ctx); err != nil {
		return err
	}
	defer l.Stop() //nolint:errcheck // best-effort shutdown

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Sender"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerRoutes(r, l)

	logger.Info("invoiced listening", "addr", cfg.Addr, "store", cfg.StoreDriver)
	return r.Run(cfg.Addr)
}

func openStore(cfg Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath)
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("INVOICED_POSTGRES_DSN is required for the postgres driver")
		}
		return postgres.Open(cfg.PostgresDSN)
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("INVOICED_MONGO_URI is required for the mongo driver")
		}
		client, err := mongodriver.Connect(options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return mongo.New(client.Database(cfg.MongoDB)), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// slogRecorder writes audit events to the structured log.
func slogRecorder(logger *slog.Logger) audit.RecorderFunc {
	return func(ctx context.Context, ev *audit.Event) error {
		logger.InfoContext(ctx, "audit event",
			"id", ev.ID.String(),
			"action", ev.Action,
			"resource", ev.Resource,
			"resource_id", ev.ResourceID,
			"outcome", ev.Outcome,
			"metadata", ev.Metadata,
		)
		return nil
	}
}
