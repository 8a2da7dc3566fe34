// File: cmd/service/main.go
// @title        AnalytIQ API
// @version      1.0
// @description  Backend API for the AnalytIQ spreadsheet analysis app
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
