package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nazex2000/LittleLemon/configs"
	"github.com/nazex2000/LittleLemon/routes"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectDB(cfg.DBSource); err != nil {
		logrus.WithError(err).Fatal("connect database failed")
	}
	if err := configs.SetupDatabase(); err != nil {
		logrus.WithError(err).Fatal("migrate failed")
	}
	if err := configs.SeedManager(); err != nil {
		logrus.WithError(err).Fatal("seed manager failed")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, cfg, configs.DB())

	logrus.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
