package main

import (
	"festival-campaign-engine/internal/app"
	"festival-campaign-engine/internal/config"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg.Server.LogLevel)
	app.Run(cfg)
}
