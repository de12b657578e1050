package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"loan-engine/internal/access"
	httpadp "loan-engine/internal/adapter/http"
	"loan-engine/internal/adapter/middleware"
	"loan-engine/internal/adapter/repository/mysql"
	"loan-engine/internal/config"
	"loan-engine/internal/infrastructure/cache"
	"loan-engine/internal/infrastructure/db"
	authuc "loan-engine/internal/usecase/auth"
	loanuc "loan-engine/internal/usecase/loan"
	paymentuc "loan-engine/internal/usecase/payment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	store := cache.NewCache(rdb)
	locks := cache.NewLockManager(rdb)

	customers := mysql.NewCustomerRepository(gormDB)
	loans := mysql.NewLoanRepository(gormDB)
	installments := mysql.NewInstallmentRepository(gormDB)
	users := mysql.NewUserRepository(gormDB)
	uow := mysql.NewGormUoW(gormDB)

	accessSvc := access.NewService()

	loanSvc := loanuc.NewUsecase(uow, customers, loans, locks, store, accessSvc, loanuc.Options{
		LockWait:              cfg.LockWait(),
		LockLease:             cfg.LockLease(),
		LoanCacheTTL:          cfg.LoanCacheTTL(),
		CustomerLoansCacheTTL: cfg.CustomerLoansCacheTTL(),
	})
	paymentSvc := paymentuc.NewUsecase(uow, loans, installments, locks, store, accessSvc, paymentuc.Options{
		LockWait:              cfg.LockWait(),
		LockLease:             cfg.LockLease(),
		MaxInstallmentPayment: cfg.MaxInstallmentPayment,
	})
	authSvc := authuc.NewUsecase(users, cfg.JWTSecret, cfg.JWTTTL())

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loanSvc, paymentSvc)
	authHandler := httpadp.NewAuthHandler(authSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)
	e.POST("/api/auth/login", authHandler.Login)

	api := e.Group("/api/loans", middleware.JWT(cfg.JWTSecret), middleware.Idempotency(rdb, cfg.IdempTTL()))
	api.POST("", loanHandler.CreateLoan)
	api.POST("/pay", loanHandler.Pay)
	api.GET("/:loan_id", loanHandler.GetLoan)
	api.GET("/customer/:customer_id", loanHandler.GetCustomerLoans)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
