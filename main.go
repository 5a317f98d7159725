package main

import (
	"log"
	"os"

	"github.com/Leerling-hub/Booking/commands"
	"github.com/Leerling-hub/Booking/config"
	"github.com/joho/godotenv"
)

func main() {
	// a .env file is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	if err := commands.NewRootCmd(cfg).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
