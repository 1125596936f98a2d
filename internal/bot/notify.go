package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/report"
)

// notify — уведомления в админский чат: EIR на въезд, строка на выезд, сбой записи.
func (b *Bot) notify(e app.Event) {
	if b.adminChat == 0 {
		return
	}
	switch e.Kind {
	case app.EventGateIn:
		if e.GateIn == nil {
			return
		}
		c := e.GateIn.Container
		file, err := report.EIRReceipt(c, b.session.EIRConfig(), b.session.Location())
		if err != nil {
			b.log.Error("eir receipt failed", "container", c.ID, "err", err)
			return
		}
		doc := tgbotapi.NewDocument(b.adminChat, tgbotapi.FileBytes{Name: file.Name, Bytes: file.Bytes})
		doc.Caption = fmt.Sprintf("✅ Ingreso %s\nEIR: %s\nUbicación: %s", c.ID, c.EIRNumber, yard.Position(c.Location))
		b.send(doc)
	case app.EventGateOut:
		if e.GateOut == nil {
			return
		}
		b.reply(b.adminChat, fmt.Sprintf("🚚 Salida %s\nEstadía: %s", e.GateOut.Container.ID, e.GateOut.Stay))
	case app.EventSnapshotErr:
		b.reply(b.adminChat, fmt.Sprintf("⚠️ No se pudo guardar %s: %v", e.Key, e.Err))
	}
}
