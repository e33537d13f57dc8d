package main

import (
	_ "importafacil/docs"
	"importafacil/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ImportaFacil Document Service API
// @version         1.0
// @description     Whole-dataset document service for the ImportaFacil invoicing tool.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
