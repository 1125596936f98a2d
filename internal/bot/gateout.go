package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/dialog"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

const (
	keyContainer = "cid"
	keyTransport = "tr"
)

// Для выезда компания не обязательна.
var exitFields = []string{"driverName", "truckPlate"}

func (b *Bot) startGateOut(ctx context.Context, chatID int64, id string) {
	id = containerKey(id)
	if id == "" {
		b.reply(chatID, "Uso: /gateout <contenedor>")
		return
	}
	c, ok := b.session.Container(id)
	if !ok || !c.InYard() {
		b.reply(chatID, fmt.Sprintf("❌ El contenedor %s no está en patio.", id))
		return
	}
	_ = b.states.Set(ctx, chatID, dialog.StateGateOutDriver, dialog.Payload{keyContainer: c.ID})
	b.reply(chatID, fmt.Sprintf("Salida de %s (%s, %s).", c.ID, c.Client, yard.Position(c.Location)))
	b.askDriver(chatID)
}

func loadExit(st *dialog.Item) (string, drivers.TransportInfo) {
	id, _ := dialog.GetString(st.Payload, keyContainer)
	var tr drivers.TransportInfo
	dialog.Decode(st.Payload, keyTransport, &tr)
	return id, tr
}

func (b *Bot) advanceGateOut(ctx context.Context, chatID int64, id string, tr drivers.TransportInfo) {
	p := dialog.Payload{keyContainer: id, keyTransport: tr}
	if ask := missing(drivers.Problems(tr, false), exitFields); len(ask) > 0 {
		p[keyField] = ask[0]
		_ = b.states.Set(ctx, chatID, dialog.StateGateOutTransport, p)
		b.askField(chatID, ask[0])
		return
	}
	_ = b.states.Set(ctx, chatID, dialog.StateGateOutConfirm, p)
	text := fmt.Sprintf("📋 Resumen de salida\nContenedor: %s\nConductor: %s (%s)\nPatente: %s",
		id, drivers.ProperCase(tr.DriverName), tr.DriverID, tr.TruckPlate)
	if tr.Company != "" {
		text += "\nEmpresa: " + drivers.ProperCase(tr.Company)
	}
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyMarkup = confirmKeyboard("go")
	b.send(m)
}

func (b *Bot) gateOutText(ctx context.Context, msg *tgbotapi.Message, st *dialog.Item) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	id, tr := loadExit(st)

	switch st.State {
	case dialog.StateGateOutDriver:
		kind := driverType(text)
		docID := drivers.FormatID(text, kind)
		if !drivers.ValidID(docID, kind) {
			b.reply(chatID, "❌ Documento inválido.")
			b.askDriver(chatID)
			return
		}
		if d, ok := b.session.FindDriver(docID); ok {
			tr = d
			b.reply(chatID, fmt.Sprintf("👤 Conductor registrado: %s · %s", drivers.ProperCase(d.DriverName), drivers.ProperCase(d.Company)))
		} else {
			tr = drivers.TransportInfo{DriverID: docID, DriverType: kind}
		}
		b.advanceGateOut(ctx, chatID, id, tr)

	case dialog.StateGateOutTransport:
		field, _ := dialog.GetString(st.Payload, keyField)
		switch field {
		case "driverName":
			tr.DriverName = text
		case "truckPlate":
			tr.TruckPlate = drivers.FormatPlate(text)
		}
		b.advanceGateOut(ctx, chatID, id, tr)

	case dialog.StateGateOutConfirm:
		b.reply(chatID, "Confirme o cancele con los botones.")
	}
}

func (b *Bot) gateOutCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, st *dialog.Item) {
	chatID := cb.Message.Chat.ID
	if cb.Data != "go:confirm" || st.State != dialog.StateGateOutConfirm {
		b.answerCallback(cb, "", false)
		return
	}
	id, tr := loadExit(st)
	res, err := b.session.GateOut(ctx, app.GateOutRequest{
		ContainerID: id,
		Transport:   tr,
		ExitDate:    b.session.Now(),
	})
	if err != nil {
		b.answerCallback(cb, "No se pudo registrar", false)
		_ = b.states.Reset(ctx, chatID)
		b.editTextAndClear(chatID, cb.Message.MessageID, "❌ "+errText(err))
		return
	}
	_ = b.states.Reset(ctx, chatID)
	b.answerCallback(cb, "Registrado", false)
	b.editTextAndClear(chatID, cb.Message.MessageID,
		fmt.Sprintf("✅ Salida registrada\nContenedor: %s\nEstadía: %s", res.Container.ID, res.Stay))
}

func (b *Bot) backGateOut(ctx context.Context, chatID int64, st *dialog.Item) {
	id, _ := loadExit(st)
	_ = b.states.Set(ctx, chatID, dialog.StateGateOutDriver, dialog.Payload{keyContainer: id})
	b.askDriver(chatID)
}
