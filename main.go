package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub/app"
	"taskhub/config"
	"taskhub/config/appconf"
	"taskhub/internal/dbconn"
	"taskhub/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	log, cleanup, err := logger.New(logger.Options{
		Level:  appconf.LogLevel(),
		Format: appconf.LogFormat(),
		File:   appconf.LogFile(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger setup failed:", err)
		os.Exit(1)
	}
	defer cleanup()

	db, err := dbconn.Open(
		dbconn.WithURL(appconf.DBURL()),
		dbconn.WithLogger(log, gormlogger.Warn),
	)
	if err != nil {
		log.WithError(err).Fatal("db connection failed")
	}
	defer dbconn.Close(db)

	container := app.NewContainer(db, log, appconf.MaxTaskNumber())

	if err := container.Migrate(); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	e := app.NewServer(log, log.GetLevel())
	config.AddRoutes(e, container)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(logrus.Fields{
			"port":            appconf.Port(),
			"env":             appconf.Env(),
			"max_task_number": container.MaxTaskNumber,
		}).Info("starting taskhub")
		if err := e.Start(fmt.Sprintf(":%s", appconf.Port())); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
