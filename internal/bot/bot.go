// Package bot is a thin wrapper over the Telegram API: long polling,
// handler dispatch and message sending. It knows nothing about chords.
package bot

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Handler processes one update.
type Handler func(b *Bot, update tgbotapi.Update) error

// Bot wraps one bot account and its update channel.
type Bot struct {
	Client     *tgbotapi.BotAPI
	updateChan tgbotapi.UpdatesChannel
	stopChan   chan struct{}
	name       string
	mu         sync.Mutex
}

// New authorizes a bot and opens its update channel.
func New(name, token string) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	return &Bot{
		Client:     botClient,
		updateChan: botClient.GetUpdatesChan(updateConfig),
		stopChan:   make(chan struct{}),
		name:       name,
	}, nil
}

// Start dispatches updates until Stop is called. Commands route by
// name, callbacks by their data payload, everything else runs through
// the message handlers in order.
func (b *Bot) Start(commands map[string]Handler, messages []Handler, callbacks map[string]Handler) {
	log.Printf("[%s] authorized on account %s", b.name, b.Client.Self.UserName)

	for {
		select {
		case update := <-b.updateChan:
			go b.processUpdate(update, commands, messages, callbacks)
		case <-b.stopChan:
			return
		}
	}
}

func (b *Bot) processUpdate(update tgbotapi.Update, commands map[string]Handler, messages []Handler, callbacks map[string]Handler) {
	if update.Message != nil && update.Message.IsCommand() {
		if handler, exists := commands[update.Message.Command()]; exists {
			if err := handler(b, update); err != nil {
				log.Printf("[%s] command handler error: %v", b.name, err)
			}
			return
		}
	}

	if update.CallbackQuery != nil {
		if handler, exists := callbacks[update.CallbackQuery.Data]; exists {
			if err := handler(b, update); err != nil {
				log.Printf("[%s] callback handler error: %v", b.name, err)
			}
			return
		}
	}

	for _, handler := range messages {
		if err := handler(b, update); err != nil {
			log.Printf("[%s] message handler error: %v", b.name, err)
		}
	}
}

// Stop halts the dispatch loop.
func (b *Bot) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopChan <- struct{}{}
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.Client.Send(msg)
	return err
}

// SendMonospace sends text inside a code block, preserving the column
// alignment of two-row chord sheets.
func (b *Bot) SendMonospace(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, "```\n"+text+"\n```")
	msg.ParseMode = "Markdown"
	_, err := b.Client.Send(msg)
	return err
}
