package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "library-admin-backend/internal/adapter/http"
	appmw "library-admin-backend/internal/adapter/middleware"
	"library-admin-backend/internal/adapter/repository/mysql"
	"library-admin-backend/internal/config"
	"library-admin-backend/internal/infrastructure/cache"
	"library-admin-backend/internal/infrastructure/db"
	listinguc "library-admin-backend/internal/usecase/listing"
	loanuc "library-admin-backend/internal/usecase/loan"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cache.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	books := mysql.NewBookRepository(gdb)
	members := mysql.NewMemberRepository(gdb)
	categories := mysql.NewCategoryRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	loanEngine := loanuc.NewUsecase(uow, loanuc.Config{
		DefaultLoanDays:    cfg.DefaultLoanDays,
		FinePerDay:         cfg.FinePerDay,
		MaxConcurrentLoans: cfg.MaxConcurrentLoans,
	}, nil)
	lister := listinguc.NewUsecase(books, members, loans, categories, users, cfg.MaxPageSize, nil)

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loanEngine)
	listHandler := httpadp.NewListingHandler(lister, cfg.DefaultPageSize)
	dashHandler := httpadp.NewDashboardHandler(loanEngine)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover(), appmw.Actor())

	e.GET("/health", h.Health)

	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	e.POST("/loans", loanHandler.CreateLoan, idem)
	e.POST("/loans/:loan_code/return", loanHandler.ReturnLoan, idem)
	e.POST("/loans/:loan_code/extend", loanHandler.ExtendLoan, idem)
	e.GET("/loans/:loan_code", loanHandler.GetLoan)

	e.GET("/books", listHandler.ListBooks)
	e.GET("/members", listHandler.ListMembers)
	e.GET("/loans", listHandler.ListLoans)
	e.GET("/categories", listHandler.ListCategories)
	e.GET("/users", listHandler.ListUsers)

	e.GET("/dashboard/stats", dashHandler.Stats)
	e.GET("/reports/overdue", dashHandler.OverdueLoans)
	e.GET("/reports/fines", dashHandler.FineReport)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
