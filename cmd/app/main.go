package main

import (
	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/di"
	"github.com/alexfurtado22/djangobnb/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
