package logger

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/dmelo/cifrabot/internal/utils"
	"github.com/dmelo/cifrabot/internal/utils/e"
)

var (
	channelID int64
	once      sync.Once
	botClient BotClient
)

// BotClient is whatever can push a log line to the log channel; the bot
// wrapper satisfies it.
type BotClient interface {
	SendMessage(chatID int64, text string) error
}

// Init wires the logger to a bot client and the LOG_CHANNEL_ID channel.
// Without Init the logger falls back to the standard log output, which
// is what the CLI surfaces use.
func Init(client BotClient) error {
	var initErr error
	once.Do(func() {
		env, err := utils.LoadEnv([]string{"LOG_CHANNEL_ID"})
		if err != nil {
			initErr = e.Wrap("failed to load LOG_CHANNEL_ID", err)
			return
		}

		channelID, err = strconv.ParseInt(env["LOG_CHANNEL_ID"], 10, 64)
		if err != nil {
			initErr = e.Wrap("failed to parse LOG_CHANNEL_ID", err)
			return
		}

		botClient = client
	})

	return initErr
}

func Info(message string) {
	sendLog("ℹ️ INFO", message)
}

func Error(message string) {
	sendLog("❌ ERROR", message)
}

func Debug(message string) {
	sendLog("🔍 DEBUG", message)
}

func Success(message string) {
	sendLog("✅ SUCCESS", message)
}

// LogWithErr logs message at info level, or at error level with the
// error appended.
func LogWithErr(message string, err error) {
	if err == nil {
		Info(message)
		return
	}
	Error(fmt.Sprintf("%s\nError: %v", message, err))
}

func sendLog(prefix, message string) {
	if botClient == nil {
		log.Printf("[%s] %s", prefix, message)
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, prefix, message)

	go func() {
		if err := botClient.SendMessage(channelID, logMessage); err != nil {
			log.Printf("failed to send log to channel: %v\nlog was: %s", err, logMessage)
		}
	}()
}
