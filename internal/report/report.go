package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// File — готовая книга для отправки (HTTP, Telegram).
type File struct {
	Name  string
	Bytes []byte
}

// setRows пишет строки начиная с первой ячейки листа.
func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

// newBook создаёт книгу с одним переименованным листом.
func newBook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func finish(f *excelize.File, name string) (File, error) {
	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return File{}, fmt.Errorf("write %s: %w", name, err)
	}
	return File{Name: name, Bytes: buf.Bytes()}, nil
}

func bold(f *excelize.File) int {
	id, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0
	}
	return id
}
