package report

import (
	"fmt"
	"time"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/containers"
)

const storageSheet = "Almacenaje"

var storageHeader = []interface{}{
	"Contenedor", "Cliente", "BL", "Carga", "Posición", "Fecha Ingreso", "Días", "Libres", "Excedido", "Peso (KG)",
}

// StorageReport — отчёт о хранении: контейнеры в площадке и дни стоянки.
func StorageReport(rows []app.StorageRow, now time.Time, loc *time.Location) (File, error) {
	if loc == nil {
		loc = time.UTC
	}
	data := make([][]interface{}, 0, len(rows)+1)
	data = append(data, storageHeader)
	for _, r := range rows {
		overdue := "No"
		if r.Overdue {
			overdue = "Sí"
		}
		data = append(data, []interface{}{
			r.Container.ID,
			r.Container.Client,
			r.Container.BL,
			string(r.Container.Load()),
			r.Position,
			r.Container.EntryDate.In(loc).Format("02.01.2006"),
			r.Days,
			containers.FreeDays,
			overdue,
			r.Weight,
		})
	}

	f, err := newBook(storageSheet)
	if err != nil {
		return File{}, err
	}
	defer func() { _ = f.Close() }()

	if err := setRows(f, storageSheet, data); err != nil {
		return File{}, err
	}
	if st := bold(f); st != 0 {
		_ = f.SetCellStyle(storageSheet, "A1", "J1", st)
	}
	_ = f.SetColWidth(storageSheet, "A", "A", 16)
	_ = f.SetColWidth(storageSheet, "B", "C", 22)

	return finish(f, fmt.Sprintf("almacenaje_%s.xlsx", now.In(loc).Format("20060102_150405")))
}
