package main

import (
	"os"

	_ "salesops/docs"
	"salesops/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sales Operations API
// @version         1.0
// @description     Sales pipeline (prospects, sales, handover) and account-management projects.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
