package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"garagehub-backend/config"
	"garagehub-backend/routes"
	"garagehub-backend/services"
	"garagehub-backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found")
	}
	if os.Getenv("LOG_LEVEL") == "debug" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Load()

	s := store.New()
	if cfg.DBURL != "" {
		db, err := config.ConnectDB(cfg.DBURL)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect database")
		}
		if err := s.AttachDB(db); err != nil {
			logrus.WithError(err).Fatal("failed to load store from database")
		}
	}
	// An empty store (fresh deployment or no database) gets the demo
	// dataset; with a database attached the seed is written through.
	if s.Clients.Len() == 0 {
		if err := s.Seed(); err != nil {
			logrus.WithError(err).Fatal("failed to seed store")
		}
	}

	relances := services.NewRelanceService(s, services.TwilioConfig{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioFrom,
	})
	if _, err := relances.StartScheduler(cfg.RelanceCron); err != nil {
		logrus.WithError(err).Fatal("failed to start relance scheduler")
	}

	r := routes.SetupRouter(s, cfg)
	printRoutes(r)

	logrus.WithField("port", cfg.Port).Info("garagehub backend listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
