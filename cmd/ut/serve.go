package main

import (
	"flag"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/ut/internal/calc"
	"github.com/DjordjeVuckovic/ut/internal/router"
	"github.com/DjordjeVuckovic/ut/internal/server"
	pkgserver "github.com/DjordjeVuckovic/ut/pkg/server"
)

func runServe(cfg *UtConfig, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.String("port", "", "Port to listen on (overrides PORT)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if *port != "" {
		sCfg.Port = *port
		if err := sCfg.Validate(); err != nil {
			return err
		}
	}

	heathChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, heathChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ut calculator API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, calc.New(cfg.Calc))
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	return s.Start()
}
