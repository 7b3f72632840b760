package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/logger"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/pg"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/prom"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/redis"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/config"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/handlers"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/repository"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/services"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	redisAdap, err := redis.NewRedisAdapter("default", config.Get().RedisUniversalKeyPrefix, &redis.Options{
		Addrs:      []string{config.Get().RedisAddr},
		ClientName: "default",
		DB:         config.Get().RedisDatabase,
		Username:   config.Get().RedisUsername,
		Password:   config.Get().RedisPassword,
	})
	if err != nil {
		logger.Error("failed connecting to redis", "error", err)
		return
	}

	if err := prom.Create("", config.Get().AppEnv, config.Get().PromNamespace); err != nil {
		logger.Error("failed to register metrics", "error", err)
		return
	}
	if config.Get().AppDebugMetricsAddr != "" {
		go prom.ListenAndServer(config.Get().AppDebugMetricsAddr, config.Get().AppDebugMetricsURI)
	}

	sessions := session.NewStore(redisAdap, config.Get().SessionTTL)

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// services
	authService := services.NewAuthService(userRepo, config.Get().BcryptCost)
	auditService := services.NewAuditService(auditRepo)
	customerService := services.NewCustomerService(customerRepo, accountRepo, auditService)
	accountService := services.NewAccountService(accountRepo, customerRepo, transactionRepo, auditService)
	ledgerService := services.NewLedgerService(accountRepo, transactionRepo)
	dashboardService := services.NewDashboardService(customerRepo, accountRepo, transactionRepo)
	healthService := services.NewHealthService()

	// handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	customerHandler := handlers.NewCustomerHandler(customerService)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	auditHandler := handlers.NewAuditHandler(auditService)
	healthHandler := handlers.NewHealthHandler(healthService)

	s.Use(handlers.SessionMiddleware(sessions))

	handlers.RegisterAuthRoutes(s.Router, authHandler)
	handlers.RegisterCustomerRoutes(s.Router, customerHandler)
	handlers.RegisterAccountRoutes(s.Router, accountHandler)
	handlers.RegisterTransactionRoutes(s.Router, transactionHandler)
	handlers.RegisterDashboardRoutes(s.Router, dashboardHandler)
	handlers.RegisterAuditRoutes(s.Router, auditHandler)
	handlers.RegisterHealthRoutes(s.Router, healthHandler)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	logger.Info("corebank api started",
		"addr", config.Get().HttpListenAddr,
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	<-c
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
