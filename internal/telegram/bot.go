package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"runnerspro/internal/config"
	"runnerspro/internal/logger"
	"runnerspro/internal/session"
	"runnerspro/internal/stats"
	"runnerspro/internal/training"
)

// WebhookPath is where Telegram delivers updates.
const WebhookPath = "/webhook"

const updateTimeout = time.Minute

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot answers plan commands in Telegram chats. Each chat gets its own session.
type Bot struct {
	api      sender
	sessions *session.Manager
	log      *logger.Logger
	now      func() time.Time
}

// NewBot initializes the Telegram API and sets the webhook when one is configured.
func NewBot(cfg *config.Config, sessions *session.Manager, log *logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Info("Authorized on Telegram", "account", api.Self.UserName)

	if cfg.TelegramWebhookURL != "" {
		wh, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook url %s: %w", cfg.TelegramWebhookURL, err)
		}
		resp, err := api.Request(wh)
		if err != nil {
			return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
		}
		log.Info("Webhook set", "description", resp.Description)
	}

	return newBot(api, sessions, log), nil
}

func newBot(api sender, sessions *session.Manager, log *logger.Logger) *Bot {
	return &Bot{
		api:      api,
		sessions: sessions,
		log:      log.With("component", "telegram"),
		now:      time.Now,
	}
}

// ServeHTTP accepts a webhook update and processes it in the background.
func (b *Bot) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		b.log.Warn("Error parsing update", "error", err)
		http.Error(w, "invalid update", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)

	if update.Message == nil {
		return
	}
	go func(msg *tgbotapi.Message) {
		ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
		defer cancel()
		b.processMessage(ctx, msg)
	}(update.Message)
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !msg.IsCommand() {
		b.reply(chatID, helpText)
		return
	}

	name := ""
	if msg.From != nil {
		name = msg.From.FirstName
	}
	sess, err := b.sessions.ForTelegramChat(ctx, chatID, name)
	if err != nil {
		b.replyError(chatID, "loading your session", err)
		return
	}

	switch msg.Command() {
	case "plan":
		plan, err := b.sessions.Plan(ctx, sess.ID)
		if err != nil {
			b.replyError(chatID, "loading your plan", err)
			return
		}
		b.reply(chatID, formatPlan(plan))
	case "today":
		plan, err := b.sessions.Plan(ctx, sess.ID)
		if err != nil {
			b.replyError(chatID, "loading your plan", err)
			return
		}
		b.reply(chatID, formatDay(plan, b.now().Format(training.DateLayout)))
	case "week":
		plan, err := b.sessions.Plan(ctx, sess.ID)
		if err != nil {
			b.replyError(chatID, "loading your plan", err)
			return
		}
		b.reply(chatID, formatWeekly(stats.ComputeWeeklyTotals(plan.Activities)))
	case "refresh":
		b.reply(chatID, "⏳ *Generating a new plan...*")
		plan, err := b.sessions.RefreshPlan(ctx, sess.ID)
		if err != nil {
			b.replyError(chatID, "generating plan", err)
			return
		}
		b.reply(chatID, formatPlan(plan))
	default:
		b.reply(chatID, helpText)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("Failed to send message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) replyError(chatID int64, action string, err error) {
	b.log.Error("Command failed", "chat_id", chatID, "action", action, "error", err)
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	b.reply(chatID, fmt.Sprintf("❌ *Error %s:*\n```\n%s\n```", action, safeErr))
}
