// Package main library management API.
//
// @title           Library Desk API
// @version         1.0
// @description     Library management service (catalog, memberships, loans, fines, reports).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>  (or a plain X-Role header)
package main

import (
	"context"
	"librarydesk/app/echoServer"
	authctrl "librarydesk/app/echoServer/controller/auth"
	bookctrl "librarydesk/app/echoServer/controller/book"
	loanctrl "librarydesk/app/echoServer/controller/loan"
	membershipctrl "librarydesk/app/echoServer/controller/membership"
	reportctrl "librarydesk/app/echoServer/controller/report"
	"librarydesk/app/echoServer/validation"
	"librarydesk/config"
	bookrepo "librarydesk/repository/book"
	membershiprepo "librarydesk/repository/membership"
	txrepo "librarydesk/repository/transaction"
	userrepo "librarydesk/repository/user"
	authsvc "librarydesk/service/auth"
	catalogsvc "librarydesk/service/catalog"
	loansvc "librarydesk/service/loan"
	membershipsvc "librarydesk/service/membership"
	reportsvc "librarydesk/service/report"
	"librarydesk/store"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// record store: postgres when a DSN is configured, JSON files otherwise
	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres store init failed", "err", err)
			os.Exit(1)
		}
		defer pg.Close()
		st = pg
	} else {
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Error("file store init failed", "err", err)
			os.Exit(1)
		}
		st = fs
	}

	// repos: collections load once and stay resident
	br, err := bookrepo.New(ctx, st)
	if err != nil {
		log.Error("load books failed", "err", err)
		os.Exit(1)
	}
	tr, err := txrepo.New(ctx, st)
	if err != nil {
		log.Error("load transactions failed", "err", err)
		os.Exit(1)
	}
	mr, err := membershiprepo.New(ctx, st)
	if err != nil {
		log.Error("load memberships failed", "err", err)
		os.Exit(1)
	}
	ur, err := userrepo.New(ctx, st)
	if err != nil {
		log.Error("load users failed", "err", err)
		os.Exit(1)
	}

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	cs := catalogsvc.New(br)
	ls := loansvc.New(br, tr)
	ms := membershipsvc.New(mr)
	rs := reportsvc.New(tr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: cs, V: v, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, V: v, Log: log}
	membershipC := &membershipctrl.Controller{Svc: ms, V: v, Log: log}
	reportC := &reportctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:       authC,
		Book:       bookC,
		Loan:       loanC,
		Membership: membershipC,
		Report:     reportC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
