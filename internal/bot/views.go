package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/report"
)

const helpText = `Comandos:
/gatein — registrar ingreso
/gateout <contenedor> — registrar salida
/relocate <contenedor> <posición> — mover (ej. B-03-2-1)
/find <texto> — buscar en patio
/yard [bloque] [bay] — mapa del patio
/stats — indicadores
/stay — reporte de almacenaje (xlsx)
/eir <contenedor> — EIR de recepción (xlsx)
/template — plantilla de precargas (xlsx)
/cancel — cancelar operación

Envíe un archivo .xlsx para importar precargas.`

func statsText(s app.Stats) string {
	return fmt.Sprintf("📊 Patio\nEn stock: %d / %d\nOcupación: %s%%\nMovimientos hoy: %d\nEstadía promedio: %.1f días",
		s.InStock, s.Capacity, s.Occupancy, s.MovementsToday, s.AvgStayDays)
}

func findText(list []containers.Container) string {
	if len(list) == 0 {
		return "Sin resultados."
	}
	var sb strings.Builder
	for _, c := range list {
		fmt.Fprintf(&sb, "%s · %s · %s\n", c.ID, yard.Position(c.Location), c.Client)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func countFree(slots []yard.Slot, keep func(yard.Slot) bool) (used, total int) {
	for _, s := range slots {
		if !keep(s) {
			continue
		}
		total++
		if !s.Free() {
			used++
		}
	}
	return used, total
}

// yardText — карта площадки: сводка по блокам, по бэям блока или сетка одного бэя.
func yardText(cfg yard.Config, slots []yard.Slot, block, bay string) (string, error) {
	var sb strings.Builder
	if block == "" {
		for _, bl := range cfg.Blocks {
			used, total := countFree(slots, func(s yard.Slot) bool { return s.Block == bl })
			tag := ""
			if bl == cfg.PartLoadBlock() && len(cfg.Blocks) > 1 {
				tag = " (LCL)"
			}
			fmt.Fprintf(&sb, "Bloque %s%s: %d/%d\n", bl, tag, used, total)
		}
		fmt.Fprintf(&sb, "Total: %d/%d", yard.Occupied(slots), len(slots))
		return sb.String(), nil
	}
	if !cfg.HasBlock(block) {
		return "", fmt.Errorf("%w: %s", yard.ErrUnknownBlock, block)
	}
	if bay == "" {
		for _, label := range yard.BayLabels(cfg.BaysCount) {
			used, total := countFree(slots, func(s yard.Slot) bool { return s.Block == block && s.Bay == label })
			fmt.Fprintf(&sb, "Bay %s: %d/%d\n", label, used, total)
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	}

	loc, err := yard.ParsePosition(fmt.Sprintf("%s-%s-1-1", block, bay))
	if err != nil {
		return "", err
	}
	if !cfg.Contains(loc) {
		return "", fmt.Errorf("%w: bay %s", yard.ErrBadPosition, bay)
	}
	bay = loc.Bay
	fmt.Fprintf(&sb, "Bloque %s · Bay %s\n", block, bay)
	var taken []yard.Slot
	for row := 1; row <= cfg.RowsCount; row++ {
		fmt.Fprintf(&sb, "Fila %d:", row)
		for tier := 1; tier <= cfg.TiersCount; tier++ {
			s, ok := yard.At(slots, yard.Location{Block: block, Bay: bay, Row: row, Tier: tier})
			switch {
			case !ok:
				sb.WriteString(" ?")
			case s.Free():
				sb.WriteString(" □")
			default:
				sb.WriteString(" ■")
				taken = append(taken, s)
			}
		}
		sb.WriteString("\n")
	}
	for _, s := range taken {
		fmt.Fprintf(&sb, "%s %s\n", yard.Position(s.Location), s.ContainerID)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (b *Bot) sendFile(chatID int64, f report.File, caption string) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: f.Name, Bytes: f.Bytes})
	doc.Caption = caption
	b.send(doc)
}

// containerKey приводит ввод оператора к id из журнала: MSKU3054388 -> MSKU305438-8.
func containerKey(v string) string {
	owner, serial, digit := containers.SplitID(v)
	if len(owner) == 4 && len(serial) == 6 && digit != "" && len(containers.CleanID(v)) == 11 {
		return containers.FullLoadID(owner, serial, digit)
	}
	return strings.ToUpper(strings.TrimSpace(v))
}
