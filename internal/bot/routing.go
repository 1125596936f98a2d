package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/dialog"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/report"
)

// errText — сообщение оператору по ошибке сценария.
func errText(err error) string {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Campos inválidos: " + strings.Join(verr.Fields, ", ")
	case errors.Is(err, app.ErrNotInYard):
		return "El contenedor no está en patio."
	case errors.Is(err, app.ErrAlreadyInYard):
		return "El contenedor ya está en patio."
	case errors.Is(err, app.ErrSlotOccupied):
		return "La posición está ocupada."
	case errors.Is(err, app.ErrUnknownSlot):
		return "La posición no existe."
	case errors.Is(err, app.ErrYardFull):
		return "No hay posiciones libres para este tipo de carga."
	case errors.Is(err, yard.ErrBadPosition):
		return "Formato de posición: A-01-1-1."
	case errors.Is(err, yard.ErrUnknownBlock):
		return "Bloque desconocido."
	case errors.Is(err, yard.ErrBadBlockName):
		return "El nombre del bloque no puede contener '-'."
	case errors.Is(err, report.ErrMissingColumn), errors.Is(err, report.ErrBadWorkbook), errors.Is(err, report.ErrNoRows):
		return "Archivo de precargas inválido: " + err.Error()
	}
	return "Error: " + err.Error()
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := strings.Fields(msg.CommandArguments())

	switch msg.Command() {
	case "start", "help":
		b.reply(chatID, helpText)

	case "cancel":
		_ = b.states.Reset(ctx, chatID)
		b.reply(chatID, "Operación cancelada.")

	case "gatein":
		b.startGateIn(ctx, chatID)

	case "gateout":
		if len(args) != 1 {
			b.reply(chatID, "Uso: /gateout <contenedor>")
			return
		}
		b.startGateOut(ctx, chatID, args[0])

	case "relocate":
		if len(args) != 2 {
			b.reply(chatID, "Uso: /relocate <contenedor> <posición>")
			return
		}
		to, err := yard.ParsePosition(args[1])
		if err != nil {
			b.reply(chatID, "❌ "+errText(err))
			return
		}
		id := containerKey(args[0])
		if _, err := b.session.Relocate(ctx, app.RelocateRequest{ContainerID: id, To: to}); err != nil {
			b.reply(chatID, "❌ "+errText(err))
			return
		}
		b.reply(chatID, fmt.Sprintf("✅ %s movido a %s", id, yard.Position(to)))

	case "find":
		q := strings.TrimSpace(msg.CommandArguments())
		if len(q) < 2 {
			b.reply(chatID, "Uso: /find <texto> (mínimo 2 caracteres)")
			return
		}
		b.reply(chatID, findText(b.session.QuickFind(q)))

	case "yard":
		var block, bay string
		if len(args) > 0 {
			block = strings.ToUpper(args[0])
		}
		if len(args) > 1 {
			bay = args[1]
		}
		cfg, slots := b.session.Slots()
		text, err := yardText(cfg, slots, block, bay)
		if err != nil {
			b.reply(chatID, "❌ "+errText(err))
			return
		}
		b.reply(chatID, text)

	case "stats":
		b.reply(chatID, statsText(b.session.Stats()))

	case "stay":
		rows := b.session.Storage("")
		f, err := report.StorageReport(rows, b.session.Now(), b.session.Location())
		if err != nil {
			b.log.Error("storage report failed", "err", err)
			b.reply(chatID, "❌ No se pudo generar el reporte.")
			return
		}
		b.sendFile(chatID, f, fmt.Sprintf("Almacenaje: %d contenedores", len(rows)))

	case "eir":
		if len(args) != 1 {
			b.reply(chatID, "Uso: /eir <contenedor>")
			return
		}
		c, ok := b.session.Container(containerKey(args[0]))
		if !ok {
			b.reply(chatID, "❌ Contenedor no encontrado.")
			return
		}
		f, err := report.EIRReceipt(c, b.session.EIRConfig(), b.session.Location())
		if err != nil {
			b.log.Error("eir receipt failed", "container", c.ID, "err", err)
			b.reply(chatID, "❌ No se pudo generar el EIR.")
			return
		}
		b.sendFile(chatID, f, "EIR "+c.EIRNumber)

	case "template":
		f, err := report.PreloadTemplate()
		if err != nil {
			b.log.Error("preload template failed", "err", err)
			return
		}
		b.sendFile(chatID, f, "Plantilla de precargas")

	default:
		b.reply(chatID, "Comando desconocido. /help")
	}
}

func (b *Bot) handleStateMessage(ctx context.Context, msg *tgbotapi.Message) {
	st, err := b.states.Get(ctx, msg.Chat.ID)
	if err != nil {
		b.log.Error("dialog state read failed", "chat", msg.Chat.ID, "err", err)
		return
	}
	switch st.State {
	case dialog.StateGateInLoad, dialog.StateGateInContainer, dialog.StateGateInNote,
		dialog.StateGateInField, dialog.StateGateInDriver, dialog.StateGateInTransport,
		dialog.StateGateInConfirm:
		b.gateInText(ctx, msg, st)
	case dialog.StateGateOutDriver, dialog.StateGateOutTransport, dialog.StateGateOutConfirm:
		b.gateOutText(ctx, msg, st)
	default:
		b.reply(msg.Chat.ID, "Use /help para ver los comandos.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := cb.Data
	chatID := cb.Message.Chat.ID

	// Общая навигация
	if data == "nav:cancel" {
		_ = b.states.Reset(ctx, chatID)
		b.editTextAndClear(chatID, cb.Message.MessageID, "Operación cancelada.")
		b.answerCallback(cb, "Cancelado", false)
		return
	}

	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Error("dialog state read failed", "chat", chatID, "err", err)
		b.answerCallback(cb, "Error", true)
		return
	}

	switch {
	case data == "nav:back":
		b.answerCallback(cb, "", false)
		if strings.HasPrefix(string(st.State), "go:") {
			b.backGateOut(ctx, chatID, st)
			return
		}
		if strings.HasPrefix(string(st.State), "gi:") {
			b.backGateIn(ctx, chatID, st)
		}
	case strings.HasPrefix(data, "gi:"):
		b.gateInCallback(ctx, cb, st)
	case strings.HasPrefix(data, "go:"):
		b.gateOutCallback(ctx, cb, st)
	default:
		b.answerCallback(cb, "", false)
	}
}

// handleDocument импортирует Excel с преднагрузками.
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	doc := msg.Document
	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") {
		b.reply(chatID, "Solo se aceptan archivos .xlsx de precargas.")
		return
	}
	data, err := b.downloadTelegramFile(doc.FileID)
	if err != nil {
		b.log.Error("preload download failed", "file", doc.FileName, "err", err)
		b.reply(chatID, "❌ No se pudo descargar el archivo.")
		return
	}
	rows, err := report.ParsePreloads(bytes.NewReader(data))
	if err != nil {
		b.reply(chatID, "❌ "+errText(err))
		return
	}
	added, err := b.session.ImportPreloads(ctx, rows)
	if err != nil {
		b.reply(chatID, "❌ "+errText(err))
		return
	}
	b.reply(chatID, fmt.Sprintf("✅ Precargas importadas: %d", len(added)))
}
