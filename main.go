package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/association-manager/association-api/cmd/app"
)

// @title           Association back-office API
// @description     Activities, attendances, cotisations, discounts and payments of the association.
// @version         1.0
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
