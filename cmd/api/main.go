package main

import (
	_ "import_admin/docs"
	"import_admin/internal/adapter/http/routes"
	"import_admin/internal/config"
	"import_admin/internal/infrastructure/logging"

	"github.com/sirupsen/logrus"
)

//go:generate swag init -g cmd/api/main.go -o ../../docs -d ../../

// @title           Import Admin API
// @version         1.0
// @description     Admin backend-for-frontend for vehicle imports: cost ledgers, delivery tracking and share links.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("[config][startup] failed to load configuration")
	}

	logger := logging.New(cfg.Log.Level)
	if err := routes.Run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("[http][startup] server stopped")
	}
}
