package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/sergiomezzz/mi-api-juegos2/internal/server"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/config"
)

func main() {

	// optional .env file for local development
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
