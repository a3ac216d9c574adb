package handler

import (
	"net/http"

	"github.com/alexfurtado22/djangobnb/config"
	"github.com/alexfurtado22/djangobnb/di"
	"github.com/alexfurtado22/djangobnb/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.ServeHTTP(w, r)
}
