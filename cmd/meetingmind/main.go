package main

import (
	"context"
	"log"

	"github.com/Kushagra128/meetingmind-cli/internal/client/cli"
	"github.com/Kushagra128/meetingmind-cli/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
