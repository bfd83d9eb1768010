package main

import (
	"context"
	"log"
	"net/http"

	"alvs-system/internal/mirror"
	"alvs-system/internal/remote"
	"alvs-system/internal/routes"
	"alvs-system/internal/store"
	syncer "alvs-system/internal/sync"
	"alvs-system/pkg/config"
	"alvs-system/pkg/customvalidator"
	apperrors "alvs-system/pkg/errors"
	applogger "alvs-system/pkg/logger"
	"alvs-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("could not register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	m, err := mirror.Open(cfg.Mirror.Path)
	if err != nil {
		logger.Fatal("could not open persistence mirror", zap.Error(err), zap.String("path", cfg.Mirror.Path))
	}
	defer m.Close()

	st := store.New(cfg.Store.CodePrefix)
	remoteClient := remote.New(cfg.Remote.BaseURL, cfg.Remote.Timeout, logger)
	synchronizer := syncer.New(st, m, remoteClient, logger, cfg.Store.SeedOnEmpty, cfg.Remote.Timeout)

	// The initial pull runs in the background so a slow or dead remote never
	// delays startup.
	go synchronizer.Start(context.Background())

	routes.InitRouter(e, st, synchronizer, logger)

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
