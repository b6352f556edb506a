// Package client holds the user-facing bot handlers. Each one is a
// thin caller of the chords engine: look the song up, transpose, render
// and reply.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmelo/cifrabot/internal/bot"
	"github.com/dmelo/cifrabot/internal/cache"
	"github.com/dmelo/cifrabot/internal/chords"
	"github.com/dmelo/cifrabot/internal/logger"
	"github.com/dmelo/cifrabot/internal/songbook"
)

type Handlers struct {
	songs *songbook.Manager
	cache *cache.Manager
}

func NewHandlers(songs *songbook.Manager, cacheManager *cache.Manager) *Handlers {
	return &Handlers{songs: songs, cache: cacheManager}
}

// Commands maps command names to handlers for bot.Start.
func (h *Handlers) Commands() map[string]bot.Handler {
	return map[string]bot.Handler{
		"start": h.startHandler,
		"cifra": h.cifraHandler,
		"tom":   h.tomHandler,
	}
}

func (h *Handlers) startHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(update.Message.Chat.ID,
		"olá! /cifra <id> [tom] mostra a cifra de uma música, "+
			"transposta para o tom pedido. /tom <id> lista os tons disponíveis.")
}

func (h *Handlers) cifraHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	args := strings.Fields(update.Message.CommandArguments())
	if len(args) == 0 {
		return b.SendMessage(chatID, "uso: /cifra <id> [tom]")
	}

	song, found := h.songs.FindByID(args[0])
	if !found {
		return b.SendMessage(chatID, "não achei música com esse id")
	}

	targetKey := song.OriginalKey
	if len(args) > 1 {
		targetKey = args[1]
		if !chords.IsCanonicalKey(targetKey) {
			return b.SendMessage(chatID, fmt.Sprintf("tom desconhecido: %s", targetKey))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	content, err := h.transposed(ctx, song, targetKey)
	if err != nil {
		logger.Error(fmt.Sprintf("cifraHandler: failed to transpose song %s to %s\nError: %v", song.ID, targetKey, err))
		return b.SendMessage(chatID, "algo deu errado ao transpor a cifra")
	}

	if err := h.songs.IncrementCounter(ctx, song.ID); err != nil {
		logger.Error(fmt.Sprintf("cifraHandler: failed to count play for %s\nError: %v", song.ID, err))
	}

	header := fmt.Sprintf("%s (tom: %s)", songbook.FormatSongName(song), targetKey)
	return b.SendMonospace(chatID, header+"\n\n"+chords.FormatStacked(content))
}

// transposed returns the song's content in the requested key, going
// through the snapshot cache when possible. The cache is best-effort: a
// failure falls back to transposing in place.
func (h *Handlers) transposed(ctx context.Context, song songbook.Song, targetKey string) (string, error) {
	if targetKey == song.OriginalKey {
		return song.Content, nil
	}

	if snap, err := h.cache.GetSnapshot(ctx, song.ID, targetKey); err != nil {
		logger.Debug(fmt.Sprintf("snapshot lookup failed for %s/%s: %v", song.ID, targetKey, err))
	} else if snap != nil {
		return snap.Content, nil
	}

	content, err := chords.TransposeContent(song.Content, song.OriginalKey, targetKey)
	if err != nil {
		return "", err
	}

	if err := h.cache.SetSnapshot(ctx, cache.Snapshot{
		SongID:     song.ID,
		Key:        targetKey,
		Content:    content,
		RenderedAt: time.Now(),
	}); err != nil {
		logger.Debug(fmt.Sprintf("snapshot store failed for %s/%s: %v", song.ID, targetKey, err))
	}

	return content, nil
}

func (h *Handlers) tomHandler(b *bot.Bot, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID
	args := strings.Fields(update.Message.CommandArguments())
	if len(args) == 0 {
		return b.SendMessage(chatID, "uso: /tom <id>")
	}

	song, found := h.songs.FindByID(args[0])
	if !found {
		return b.SendMessage(chatID, "não achei música com esse id")
	}

	minor := chords.IsMinorKey(song.OriginalKey)
	var keys []string
	for _, key := range chords.CanonicalKeys() {
		if chords.IsMinorKey(key) == minor {
			keys = append(keys, key)
		}
	}

	return b.SendMessage(chatID, fmt.Sprintf(
		"%s está em %s. tons disponíveis: %s",
		songbook.FormatSongName(song), song.OriginalKey, strings.Join(keys, ", ")))
}
