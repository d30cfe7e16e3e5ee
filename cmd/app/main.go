package main

import (
	"gor/config"
	"gor/di"
	"gor/shared/logger"
)

// @title GOR Badminton Booking API
// @version 1.0
// @description Court booking service for badminton sports halls.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
