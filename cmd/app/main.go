package main

import (
	"fairhall/config"
	"fairhall/di"
	"fairhall/shared/logger"
)

// @title Fairhall API
// @version 1.0
// @description Book fair stall reservation service: stall inventory, reservation workflow, admin directory and floor-plan map.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
