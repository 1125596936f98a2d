package bot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/dialog"
	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

// ключи payload
const (
	keyReq   = "req"
	keyAuto  = "auto"
	keyField = "field"
	keyPos   = "pos" // позиция указана оператором
)

// Поля, которые бот дозапрашивает по одному, в этом порядке.
var (
	cargoFields     = []string{"client", "vessel", "shippingLine", "weight", "cargoQuantity", "cargoWeight", "materialType"}
	transportFields = []string{"driverName", "company", "truckPlate"}
)

var prompts = map[string]string{
	"client":        "Cliente:",
	"vessel":        "Nave:",
	"shippingLine":  "Línea naviera:",
	"weight":        "Peso bruto (KG):",
	"cargoQuantity": "Cantidad de bultos:",
	"cargoWeight":   "Peso de la carga (KG):",
	"materialType":  "Tipo de material:",
	"driverName":    "Nombre del conductor:",
	"company":       "Empresa de transporte:",
	"truckPlate":    "Patente del camión (ej. ABCD-12):",
}

var materials = []containers.MaterialType{
	containers.MaterialBoxes, containers.MaterialCoils, containers.MaterialPallets,
	containers.MaterialBags, containers.MaterialPlates,
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("número inválido: %q", s)
	}
	return v, nil
}

// setField пишет ответ оператора в поле формы.
func setField(f *app.GateInForm, field, text string) error {
	text = strings.TrimSpace(text)
	r := &f.Req
	switch field {
	case "client":
		r.Client = text
	case "vessel":
		r.Vessel = text
	case "shippingLine":
		r.ShippingLine = text
	case "weight":
		v, err := parseNumber(text)
		if err != nil {
			return err
		}
		r.Weight = v
	case "cargoWeight":
		v, err := parseNumber(text)
		if err != nil {
			return err
		}
		r.CargoWeight = v
	case "cargoQuantity":
		n, err := strconv.Atoi(text)
		if err != nil || n <= 0 {
			return fmt.Errorf("cantidad inválida: %q", text)
		}
		r.CargoQuantity = n
	case "materialType":
		for _, m := range materials {
			if strings.EqualFold(string(m), text) {
				r.MaterialType = m
				return nil
			}
		}
		return fmt.Errorf("material desconocido: %q", text)
	case "driverName":
		r.Transport.DriverName = text
	case "company":
		r.Transport.Company = text
	case "truckPlate":
		f.SetTruckPlate(text)
	default:
		return fmt.Errorf("campo desconocido: %s", field)
	}
	return nil
}

// missing — поля из набора, которые форма ещё считает неверными.
func missing(problems, set []string) []string {
	var out []string
	for _, f := range set {
		if slices.Contains(problems, f) {
			out = append(out, f)
		}
	}
	return out
}

// driverType: 8 цифр + цифра/K — национальный документ, иначе иностранный.
func driverType(text string) drivers.IDType {
	id := drivers.FormatID(text, drivers.IDNational)
	if !drivers.ValidID(id, drivers.IDNational) {
		return drivers.IDForeign
	}
	for _, r := range id[:8] {
		if r < '0' || r > '9' {
			return drivers.IDForeign
		}
	}
	return drivers.IDNational
}

func loadForm(st *dialog.Item) *app.GateInForm {
	var req app.GateInRequest
	dialog.Decode(st.Payload, keyReq, &req)
	auto := true
	if v, ok := st.Payload[keyAuto].(bool); ok {
		auto = v
	}
	return app.ResumeGateInForm(req, auto)
}

func formPayload(f *app.GateInForm, st *dialog.Item) dialog.Payload {
	p := dialog.Payload{keyReq: f.Request(), keyAuto: f.AutoDigit()}
	if st != nil {
		if v, ok := st.Payload[keyPos]; ok {
			p[keyPos] = v
		}
	}
	return p
}

func (b *Bot) startGateIn(ctx context.Context, chatID int64) {
	_ = b.states.Set(ctx, chatID, dialog.StateGateInLoad, dialog.Payload{})
	m := tgbotapi.NewMessage(chatID, "Nuevo ingreso. Seleccione el tipo de carga:")
	m.ReplyMarkup = loadKeyboard()
	b.send(m)
}

func (b *Bot) askContainer(chatID int64) {
	m := tgbotapi.NewMessage(chatID, "Ingrese sigla y número del contenedor (ej. MSKU305438).\nEl dígito verificador se calcula automáticamente.")
	m.ReplyMarkup = navKeyboard(true, true)
	b.send(m)
}

func (b *Bot) askNote(chatID int64) {
	m := tgbotapi.NewMessage(chatID, "Número de nota de recepción:")
	m.ReplyMarkup = navKeyboard(true, true)
	b.send(m)
}

func (b *Bot) askDriver(chatID int64) {
	m := tgbotapi.NewMessage(chatID, "Documento del conductor (RUT 12345678-9 o pasaporte):")
	m.ReplyMarkup = navKeyboard(true, true)
	b.send(m)
}

func (b *Bot) askField(chatID int64, field string) {
	m := tgbotapi.NewMessage(chatID, prompts[field])
	if field == "materialType" {
		m.ReplyMarkup = materialKeyboard()
	} else {
		m.ReplyMarkup = navKeyboard(true, true)
	}
	b.send(m)
}

// advanceGateIn переводит диалог на первый незаполненный шаг.
func (b *Bot) advanceGateIn(ctx context.Context, chatID int64, f *app.GateInForm, st *dialog.Item) {
	p := formPayload(f, st)
	problems := f.Problems()

	if ask := missing(problems, cargoFields); len(ask) > 0 {
		p[keyField] = ask[0]
		_ = b.states.Set(ctx, chatID, dialog.StateGateInField, p)
		b.askField(chatID, ask[0])
		return
	}
	if slices.Contains(problems, "driverId") {
		_ = b.states.Set(ctx, chatID, dialog.StateGateInDriver, p)
		b.askDriver(chatID)
		return
	}
	if ask := missing(problems, transportFields); len(ask) > 0 {
		p[keyField] = ask[0]
		_ = b.states.Set(ctx, chatID, dialog.StateGateInTransport, p)
		b.askField(chatID, ask[0])
		return
	}
	b.showGateInSummary(ctx, chatID, f, p[keyPos] != nil)
}

func (b *Bot) gateInSummary(f *app.GateInForm) string {
	r := f.Req
	var sb strings.Builder
	sb.WriteString("📋 Resumen de ingreso\n")
	fmt.Fprintf(&sb, "Contenedor: %s (%s)\n", r.ContainerID(), r.LoadType)
	fmt.Fprintf(&sb, "Cliente: %s\n", r.Client)
	fmt.Fprintf(&sb, "Nota de recepción: %s\n", r.ReceptionNote)
	if r.LoadType == containers.LoadLCL {
		fmt.Fprintf(&sb, "Bultos: %d · %.0f KG · %s\n", r.CargoQuantity, r.CargoWeight, r.MaterialType)
	} else {
		fmt.Fprintf(&sb, "Nave / Línea: %s / %s\n", r.Vessel, r.ShippingLine)
		fmt.Fprintf(&sb, "Peso bruto: %.0f KG\n", r.Weight)
	}
	t := r.Transport
	fmt.Fprintf(&sb, "Conductor: %s (%s) · %s\n", drivers.ProperCase(t.DriverName), t.DriverID, drivers.ProperCase(t.Company))
	fmt.Fprintf(&sb, "Patente: %s\n", t.TruckPlate)
	if r.Slot != nil {
		fmt.Fprintf(&sb, "Ubicación: %s\n", yard.Position(*r.Slot))
	} else {
		sb.WriteString("Ubicación: sin posiciones libres\n")
	}
	sb.WriteString("\nEnvíe otra posición (ej. B-03-2-1) para cambiarla.")
	return sb.String()
}

// showGateInSummary: без ручной позиции подбирается свежий свободный слот.
func (b *Bot) showGateInSummary(ctx context.Context, chatID int64, f *app.GateInForm, manualPos bool) {
	if !manualPos {
		f.Req.Slot = nil
	}
	b.session.FillForm(f, "", "")
	p := formPayload(f, nil)
	if manualPos {
		p[keyPos] = true
	}
	_ = b.states.Set(ctx, chatID, dialog.StateGateInConfirm, p)
	m := tgbotapi.NewMessage(chatID, b.gateInSummary(f))
	m.ReplyMarkup = confirmKeyboard("gi")
	b.send(m)
}

func (b *Bot) gateInText(ctx context.Context, msg *tgbotapi.Message, st *dialog.Item) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	f := loadForm(st)

	switch st.State {
	case dialog.StateGateInLoad:
		b.reply(chatID, "Seleccione FCL o LCL con los botones.")

	case dialog.StateGateInContainer:
		clean := containers.CleanID(text)
		if len(clean) < 10 {
			b.reply(chatID, "Formato: 4 letras y 6 dígitos, ej. MSKU305438.")
			return
		}
		f.SetOwnerCode(clean[:4])
		f.SetSerial(clean[4:10])
		if len(clean) > 10 {
			f.SetCheckDigit(clean[10:11])
		}
		if len(f.Req.OwnerCode) != 4 || len(f.Req.Serial) != 6 {
			b.reply(chatID, "Formato: 4 letras y 6 dígitos, ej. MSKU305438.")
			return
		}
		out := "Contenedor: " + f.Req.ContainerID()
		if d, ok := containers.CheckDigit(f.Req.OwnerCode + f.Req.Serial); ok && fmt.Sprint(d) != f.Req.CheckDigit {
			out += fmt.Sprintf("\n⚠️ El dígito verificador calculado es %d.", d)
		}
		b.reply(chatID, out)
		_ = b.states.Set(ctx, chatID, dialog.StateGateInNote, formPayload(f, st))
		b.askNote(chatID)

	case dialog.StateGateInNote:
		if text == "" {
			b.askNote(chatID)
			return
		}
		b.session.FillForm(f, text, "")
		if f.Preloaded() {
			r := f.Req
			b.reply(chatID, fmt.Sprintf("📄 Precarga encontrada: %s · BL %s · %s", r.Client, r.BL, r.Vessel))
		}
		b.advanceGateIn(ctx, chatID, f, st)

	case dialog.StateGateInField, dialog.StateGateInTransport:
		field, _ := dialog.GetString(st.Payload, keyField)
		if err := setField(f, field, text); err != nil {
			b.reply(chatID, "❌ "+err.Error())
			b.askField(chatID, field)
			return
		}
		b.advanceGateIn(ctx, chatID, f, st)

	case dialog.StateGateInDriver:
		f.SetDriverType(driverType(text))
		b.session.FillForm(f, "", text)
		t := f.Req.Transport
		if !drivers.ValidID(t.DriverID, t.DriverType) {
			b.reply(chatID, "❌ Documento inválido.")
			b.askDriver(chatID)
			return
		}
		if !f.NewDriver() {
			b.reply(chatID, fmt.Sprintf("👤 Conductor registrado: %s · %s", t.DriverName, t.Company))
		}
		b.advanceGateIn(ctx, chatID, f, st)

	case dialog.StateGateInConfirm:
		loc, err := yard.ParsePosition(text)
		if err != nil {
			b.reply(chatID, "Formato de posición: A-01-1-1")
			return
		}
		_, slots := b.session.Slots()
		slot, ok := yard.At(slots, loc)
		if !ok {
			b.reply(chatID, "❌ La posición "+yard.Position(loc)+" no existe.")
			return
		}
		if !slot.Free() {
			b.reply(chatID, fmt.Sprintf("❌ La posición %s está ocupada por %s.", yard.Position(loc), slot.ContainerID))
			return
		}
		f.Req.Slot = &slot.Location
		b.showGateInSummary(ctx, chatID, f, true)
	}
}

func (b *Bot) gateInCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, st *dialog.Item) {
	chatID := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case strings.HasPrefix(data, "gi:load:"):
		if st.State != dialog.StateGateInLoad {
			b.answerCallback(cb, "", false)
			return
		}
		load := containers.LoadType(strings.TrimPrefix(data, "gi:load:"))
		f := b.session.NewGateInForm(load)
		b.editTextAndClear(chatID, cb.Message.MessageID, "Tipo de carga: "+string(load))
		b.answerCallback(cb, "", false)
		if load == containers.LoadLCL {
			_ = b.states.Set(ctx, chatID, dialog.StateGateInNote, formPayload(f, nil))
			b.askNote(chatID)
			return
		}
		_ = b.states.Set(ctx, chatID, dialog.StateGateInContainer, formPayload(f, nil))
		b.askContainer(chatID)

	case strings.HasPrefix(data, "gi:mat:"):
		field, _ := dialog.GetString(st.Payload, keyField)
		if st.State != dialog.StateGateInField || field != "materialType" {
			b.answerCallback(cb, "", false)
			return
		}
		f := loadForm(st)
		if err := setField(f, field, strings.TrimPrefix(data, "gi:mat:")); err != nil {
			b.answerCallback(cb, err.Error(), true)
			return
		}
		b.editTextAndClear(chatID, cb.Message.MessageID, "Material: "+string(f.Req.MaterialType))
		b.answerCallback(cb, "", false)
		b.advanceGateIn(ctx, chatID, f, st)

	case data == "gi:confirm":
		if st.State != dialog.StateGateInConfirm {
			b.answerCallback(cb, "", false)
			return
		}
		b.confirmGateIn(ctx, cb, st)
	}
}

func (b *Bot) confirmGateIn(ctx context.Context, cb *tgbotapi.CallbackQuery, st *dialog.Item) {
	chatID := cb.Message.Chat.ID
	f := loadForm(st)
	// время въезда — момент подтверждения, а не начала диалога
	f.Req.EntryDate = b.session.Now()
	res, err := b.session.GateIn(ctx, f.Request())
	if err != nil {
		b.answerCallback(cb, "No se pudo registrar", false)
		b.reply(chatID, "❌ "+errText(err))
		var verr *app.ValidationError
		switch {
		case errors.Is(err, app.ErrSlotOccupied), errors.Is(err, app.ErrUnknownSlot):
			b.showGateInSummary(ctx, chatID, f, false)
		case errors.As(err, &verr):
			b.advanceGateIn(ctx, chatID, f, st)
		}
		return
	}
	_ = b.states.Reset(ctx, chatID)
	b.answerCallback(cb, "Registrado", false)
	c := res.Container
	b.editTextAndClear(chatID, cb.Message.MessageID,
		fmt.Sprintf("✅ Ingreso registrado\nContenedor: %s\nEIR: %s\nUbicación: %s", c.ID, c.EIRNumber, yard.Position(c.Location)))
}

// backGateIn — шаг назад в диалоге въезда.
func (b *Bot) backGateIn(ctx context.Context, chatID int64, st *dialog.Item) {
	f := loadForm(st)
	switch st.State {
	case dialog.StateGateInContainer:
		b.startGateIn(ctx, chatID)
	case dialog.StateGateInNote:
		if f.Req.LoadType == containers.LoadLCL {
			b.startGateIn(ctx, chatID)
			return
		}
		_ = b.states.Set(ctx, chatID, dialog.StateGateInContainer, formPayload(f, st))
		b.askContainer(chatID)
	case dialog.StateGateInField, dialog.StateGateInDriver:
		_ = b.states.Set(ctx, chatID, dialog.StateGateInNote, formPayload(f, st))
		b.askNote(chatID)
	case dialog.StateGateInTransport, dialog.StateGateInConfirm:
		_ = b.states.Set(ctx, chatID, dialog.StateGateInDriver, formPayload(f, st))
		b.askDriver(chatID)
	default:
		b.startGateIn(ctx, chatID)
	}
}
