// Package notifications delivers finance alerts raised by the scheduled tasks.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegram caps message text at 4096 characters.
const maxTelegramText = 4096

// LogNotifier writes alerts to the structured log. It is the fallback when no chat is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, subject, body string) error {
	middleware.GetLoggerFromCtx(ctx).Warn("Finance alert", slog.String("subject", subject), slog.String("body", body))
	return nil
}

// messageSender is the part of *tgbotapi.BotAPI the notifier needs.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts alerts to a single Telegram chat.
type TelegramNotifier struct {
	bot    messageSender
	chatID int64
}

// NewTelegramNotifier authenticates the bot token and returns a notifier for chatID.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, errors.New("telegram bot token and chat id are required")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return newTelegramNotifier(bot, chatID), nil
}

func newTelegramNotifier(bot messageSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (n *TelegramNotifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text := "⚠️ " + subject + "\n\n" + body
	if r := []rune(text); len(r) > maxTelegramText {
		text = string(r[:maxTelegramText-1]) + "…"
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram alert: %w", err)
	}
	return nil
}

// New picks the Telegram notifier when both token and chat are set and falls back to the log.
func New(logger *slog.Logger, token string, chatID int64) portssvc.AlertNotifier {
	if token == "" || chatID == 0 {
		return LogNotifier{}
	}
	n, err := NewTelegramNotifier(token, chatID)
	if err != nil {
		logger.Error("Telegram notifier unavailable, alerts will be logged", slog.String("error", err.Error()))
		return LogNotifier{}
	}
	return n
}
