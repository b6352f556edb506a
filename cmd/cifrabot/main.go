package main

import (
	"context"
	"log"

	"github.com/dmelo/cifrabot/internal/bot"
	"github.com/dmelo/cifrabot/internal/bot/client"
	"github.com/dmelo/cifrabot/internal/cache"
	"github.com/dmelo/cifrabot/internal/logger"
	"github.com/dmelo/cifrabot/internal/songbook"
	"github.com/dmelo/cifrabot/internal/utils"
)

func main() {
	env, err := utils.LoadEnv([]string{"BOT_TOKEN"})
	if err != nil {
		log.Fatalf("required env missing: %v", err)
	}

	ctx := context.Background()

	songs, err := songbook.Open(ctx)
	if err != nil {
		log.Fatalf("failed to open songbook: %v", err)
	}
	defer songs.Close()

	cacheManager, err := cache.NewManager()
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	b, err := bot.New("cifrabot", env["BOT_TOKEN"])
	if err != nil {
		log.Fatalf("failed to start bot: %v", err)
	}

	if err := logger.Init(b); err != nil {
		log.Printf("channel logger unavailable: %v", err)
	}
	logger.Info("cifrabot starting")

	handlers := client.NewHandlers(songs, cacheManager)
	b.Start(handlers.Commands(), nil, nil)
}
