package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/yard-terminal/internal/domain/preloads"
)

var (
	ErrBadWorkbook   = errors.New("report: unreadable workbook")
	ErrMissingColumn = errors.New("report: missing column")
	ErrNoRows        = errors.New("report: no data rows")
)

const preloadSheet = "Precargas"

// PreloadColumns — заголовок файла массовой загрузки.
var PreloadColumns = []string{
	"receptionNote", "containerId", "client", "bl", "weight", "shippingLine", "vessel", "voyage",
}

// PreloadTemplate — пустой шаблон с заголовком и строкой-примером.
func PreloadTemplate() (File, error) {
	header := make([]interface{}, len(PreloadColumns))
	for i, c := range PreloadColumns {
		header[i] = c
	}
	sample := []interface{}{"GR-0001", "MSKU3054388", "CLIENTE EJEMPLO", "BL-0001", 24000, "MAERSK", "MAERSK LINE", "001E"}

	f, err := newBook(preloadSheet)
	if err != nil {
		return File{}, err
	}
	defer func() { _ = f.Close() }()

	if err := setRows(f, preloadSheet, [][]interface{}{header, sample}); err != nil {
		return File{}, err
	}
	return finish(f, "plantilla_precargas.xlsx")
}

// ParsePreloads читает книгу массовой загрузки. Колонки ищутся по заголовку,
// порядок не важен; пустые строки пропускаются.
func ParsePreloads(r io.Reader) ([]preloads.Preload, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWorkbook, err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx["receptionnote"]; !ok {
		return nil, fmt.Errorf("%w: receptionNote", ErrMissingColumn)
	}
	cell := func(row []string, col string) string {
		i, ok := idx[strings.ToLower(col)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []preloads.Preload
	for n, row := range rows[1:] {
		p := preloads.Preload{
			ReceptionNote: cell(row, "receptionNote"),
			ContainerID:   cell(row, "containerId"),
			Client:        cell(row, "client"),
			BL:            cell(row, "bl"),
			ShippingLine:  cell(row, "shippingLine"),
			Vessel:        cell(row, "vessel"),
			Voyage:        cell(row, "voyage"),
		}
		if w := cell(row, "weight"); w != "" {
			v, err := strconv.ParseFloat(strings.ReplaceAll(w, ",", "."), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: weight %q: %w", n+2, w, err)
			}
			p.Weight = v
		}
		if p == (preloads.Preload{}) {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}
