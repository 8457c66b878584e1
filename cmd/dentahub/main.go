// filepath: cmd/dentahub/main.go
package main

import (
	"dentahub/internal/cli"
)

// @title DentaHub API
// @version 1.0.0
// @description REST API for dental clinic management.
// @BasePath /api
// @schemes http
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
