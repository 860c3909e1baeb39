package main

import (
	_ "joalheria_xpto/docs"
	"joalheria_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title       Quoting Service API
// @version     1.0
// @description Quotes, pricing, appraisals and deposits for jewelry and watch service work.

// @host     localhost:8080
// @BasePath /v1

func main() {
	routes.Run()
}
