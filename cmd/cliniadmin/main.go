package main

import (
	"context"
	"database/sql"

	config "github.com/davortiz/cliniadmin/internal/config"
	invoiceApp "github.com/davortiz/cliniadmin/internal/invoice/application"
	invoiceDomain "github.com/davortiz/cliniadmin/internal/invoice/domain"
	invoiceHttp "github.com/davortiz/cliniadmin/internal/invoice/infra/inbound/http"
	invoicePg "github.com/davortiz/cliniadmin/internal/invoice/infra/outbound/db/postgre"
	invoiceSqlite "github.com/davortiz/cliniadmin/internal/invoice/infra/outbound/db/sqlite"
	patientApp "github.com/davortiz/cliniadmin/internal/patient/application"
	patientDomain "github.com/davortiz/cliniadmin/internal/patient/domain"
	patientHttp "github.com/davortiz/cliniadmin/internal/patient/infra/inbound/http"
	patientCache "github.com/davortiz/cliniadmin/internal/patient/infra/outbound/cache"
	patientPg "github.com/davortiz/cliniadmin/internal/patient/infra/outbound/db/postgre"
	patientSqlite "github.com/davortiz/cliniadmin/internal/patient/infra/outbound/db/sqlite"
	paymentApp "github.com/davortiz/cliniadmin/internal/payment/application"
	paymentDomain "github.com/davortiz/cliniadmin/internal/payment/domain"
	paymentHttp "github.com/davortiz/cliniadmin/internal/payment/infra/inbound/http"
	paymentPg "github.com/davortiz/cliniadmin/internal/payment/infra/outbound/db/postgre"
	paymentSqlite "github.com/davortiz/cliniadmin/internal/payment/infra/outbound/db/sqlite"
	"github.com/davortiz/cliniadmin/pkg/httpx"
	"github.com/davortiz/cliniadmin/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// ---------------- Main ----------------
func main() {
	logger.Init()          // inicializa zap
	log := logger.Logger() // obtiene logger estructurado
	defer log.Sync()       // flush buffers al salir

	ctx := context.Background()
	cfg := config.LoadConfig()

	// ---------------- DB ----------------
	var (
		db  *sql.DB
		err error

		patientRepo patientDomain.PatientRepository
		paymentRepo paymentDomain.PaymentRepository
		invoiceRepo invoiceDomain.InvoiceRepository
	)

	switch cfg.DBDriver {
	case "postgres":
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to open Postgres", zap.Error(err))
		}
		if err := patientPg.InitPostgres(db); err != nil {
			log.Fatal("failed to initialize patients table", zap.Error(err))
		}
		if err := paymentPg.InitPostgres(db); err != nil {
			log.Fatal("failed to initialize payments table", zap.Error(err))
		}
		if err := invoicePg.InitPostgres(db); err != nil {
			log.Fatal("failed to initialize invoices table", zap.Error(err))
		}
		patientRepo = patientPg.NewPatientRepoPostgres(db)
		paymentRepo = paymentPg.NewPaymentRepoPostgres(db)
		invoiceRepo = invoicePg.NewInvoiceRepoPostgres(db)

	default:
		// foreign_keys se activa por conexión vía DSN
		db, err = sql.Open("sqlite", cfg.SQLitePath+"?_pragma=foreign_keys(1)")
		if err != nil {
			log.Fatal("failed to open SQLite", zap.Error(err))
		}
		if err := patientSqlite.InitSQLite(db); err != nil {
			log.Fatal("failed to initialize patients table", zap.Error(err))
		}
		if err := paymentSqlite.InitSQLite(db); err != nil {
			log.Fatal("failed to initialize payments table", zap.Error(err))
		}
		if err := invoiceSqlite.InitSQLite(db); err != nil {
			log.Fatal("failed to initialize invoices table", zap.Error(err))
		}
		patientRepo = patientSqlite.NewPatientRepoSQLite(db)
		paymentRepo = paymentSqlite.NewPaymentRepoSQLite(db)
		invoiceRepo = invoiceSqlite.NewInvoiceRepoSQLite(db)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("failed to ping database", zap.Error(err))
	}

	// ---------------- Cache ----------------
	var cacheInstance patientDomain.PatientCache
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("⚠️ Redis no disponible, cache de pacientes deshabilitado", zap.Error(err))
	} else {
		cacheInstance = patientCache.NewRedisPatientCache(rdb, cfg.CacheTTL)
		log.Info("✅ Redis conectado, cache habilitado")
	}

	// --------------- Servicios --------------
	patientService := patientApp.NewPatientService(patientRepo, cacheInstance, log)
	paymentService := paymentApp.NewPaymentService(paymentRepo, log)
	invoiceService := invoiceApp.NewInvoiceService(invoiceRepo, log)

	// ---------------- HTTP ----------------
	router := gin.New()
	router.Use(
		httpx.RequestID(),
		httpx.RequestLogger(log),
		gin.Recovery(),
		cors.Default(),
		httpx.ErrorHandler(log),
	)

	patientHttp.RegisterPatientRoutes(router, patientHttp.NewPatientHandler(patientService))
	paymentHttp.RegisterPaymentRoutes(router, paymentHttp.NewPaymentHandler(paymentService))
	invoiceHttp.RegisterInvoiceRoutes(router, invoiceHttp.NewInvoiceHandler(invoiceService))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
		zap.String("db_driver", cfg.DBDriver),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
