package main

import (
	"log"
	"os"

	_ "refrigeracao_os/docs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Refrigeração OS API
// @version         1.0
// @description     Price table, material catalog, quotations and service orders for an air-conditioning service company.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
