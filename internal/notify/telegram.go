// Package notify sends score-change alerts. It plugs into the pipeline as
// one more output sink, so the poller stays unaware of it.
package notify

import (
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ndanilov/scoreline/internal/pkg/classify"
	"github.com/ndanilov/scoreline/internal/pkg/config"
	"github.com/ndanilov/scoreline/internal/pkg/models"
)

// Min interval between two Telegram messages to the same chat, to stay
// clear of the ~30/min API limit.
const sendInterval = 2 * time.Second

// TelegramNotifier posts a message whenever a game's score changes or a
// game goes final. It keeps its own snapshot of the previous delivery, so
// it can diff without help from the poller.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	lastSend time.Time
	prev     map[string]models.GameRecord
}

// NewTelegramNotifier creates a notifier, or returns nil when the token is
// unset or the bot cannot be reached. A dead notifier never blocks the
// scoreboard itself.
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	if cfg.BotToken == "" || cfg.ChatID == 0 {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to reach telegram bot API", "error", err)
		return nil
	}

	return &TelegramNotifier{
		bot:    bot,
		chatID: cfg.ChatID,
		prev:   make(map[string]models.GameRecord),
	}
}

// Deliver implements interfaces.Sink.
func (n *TelegramNotifier) Deliver(records []models.GameRecord) error {
	for _, cur := range records {
		if cur.ID == "" {
			continue
		}
		prev, seen := n.prev[cur.ID]
		if seen {
			if msg := changeMessage(prev, cur); msg != "" {
				n.send(msg)
			}
		}
		n.prev[cur.ID] = cur
	}
	return nil
}

// changeMessage describes what changed between two sightings of the same
// game, or returns "" when nothing alert-worthy happened.
func changeMessage(prev, cur models.GameRecord) string {
	scoreChanged := !scoreEqual(prev.AwayScore, cur.AwayScore) ||
		!scoreEqual(prev.HomeScore, cur.HomeScore)
	wentFinal := classify.Classify(prev.Status) != classify.StateEnded &&
		classify.Classify(cur.Status) == classify.StateEnded

	switch {
	case wentFinal:
		return fmt.Sprintf("FINAL: %s %s @ %s %s",
			cur.AwayTeam, models.FormatScore(cur.AwayScore),
			cur.HomeTeam, models.FormatScore(cur.HomeScore))
	case scoreChanged:
		return fmt.Sprintf("%s %s @ %s %s (%s)",
			cur.AwayTeam, models.FormatScore(cur.AwayScore),
			cur.HomeTeam, models.FormatScore(cur.HomeScore),
			cur.Status)
	default:
		return ""
	}
}

func scoreEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (n *TelegramNotifier) send(text string) {
	if wait := sendInterval - time.Since(n.lastSend); wait > 0 {
		time.Sleep(wait)
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		slog.Warn("Failed to send telegram message", "error", err)
		return
	}
	n.lastSend = time.Now()
}
