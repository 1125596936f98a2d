package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/dialog"
)

// Client — то, что боту нужно от Telegram API (*tgbotapi.BotAPI).
type Client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetFileDirectURL(fileID string) (string, error)
}

type Bot struct {
	api       Client
	log       *slog.Logger
	session   *app.Session
	states    *dialog.Repo
	adminChat int64
	events    chan app.Event
	httpc     *http.Client
}

func New(api Client, log *slog.Logger, session *app.Session, statesRepo *dialog.Repo, adminChatID int64) *Bot {
	return &Bot{
		api: api, log: log, session: session, states: statesRepo,
		adminChat: adminChatID,
		events:    make(chan app.Event, 64),
		httpc:     http.DefaultClient,
	}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-b.events:
			b.notify(e)
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil {
		b.onMessage(ctx, upd)
	} else if upd.CallbackQuery != nil {
		b.onCallback(ctx, upd)
	}
}

// Observe — наблюдатель сессии; не блокирует писателя площадки.
func (b *Bot) Observe(e app.Event) {
	switch e.Kind {
	case app.EventGateIn, app.EventGateOut, app.EventSnapshotErr:
	default:
		return
	}
	select {
	case b.events <- e:
	default:
		b.log.Warn("bot notification dropped", "kind", e.Kind)
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// allowed: если админский чат задан, бот отвечает только ему.
func (b *Bot) allowed(chatID int64) bool {
	return b.adminChat == 0 || chatID == b.adminChat
}

func (b *Bot) onMessage(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if !b.allowed(msg.Chat.ID) {
		b.log.Debug("message from foreign chat ignored", "chat", msg.Chat.ID)
		return
	}
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if msg.Document != nil {
		b.handleDocument(ctx, msg)
		return
	}
	b.handleStateMessage(ctx, msg)
}

func (b *Bot) onCallback(ctx context.Context, upd tgbotapi.Update) {
	cb := upd.CallbackQuery
	if cb.Message == nil || !b.allowed(cb.Message.Chat.ID) {
		return
	}
	b.handleCallback(ctx, cb)
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) {
	resp := tgbotapi.NewCallback(cb.ID, text)
	resp.ShowAlert = alert
	if _, err := b.api.Request(resp); err != nil {
		b.log.Warn("callback answer failed", "err", err)
	}
}

func (b *Bot) editTextAndClear(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		chatID, messageID, text,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
	)
	b.send(edit)
}

func (b *Bot) downloadTelegramFile(fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file url: %w", err)
	}

	resp, err := b.httpc.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram returned status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
