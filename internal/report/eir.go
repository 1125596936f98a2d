package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/eir"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

const eirSheet = "EIR"

func kg(v float64) string { return fmt.Sprintf("%.0f KG", v) }

// EIRReceipt — квитанция приёма контейнера (Equipment Interchange Receipt).
func EIRReceipt(c containers.Container, cfg eir.Config, loc *time.Location) (File, error) {
	if loc == nil {
		loc = time.UTC
	}
	number := c.EIRNumber
	if number == "" {
		number = cfg.EIRPrefix + "-000000"
	}

	rows := [][]interface{}{
		{cfg.CompanyName, "", "EIR RECEPCIÓN"},
		{cfg.CompanyAddress, "", number},
		{fmt.Sprintf("RUT: %s | TEL: %s", cfg.CompanyTaxID, cfg.CompanyPhone), "", "Fecha: " + c.EntryDate.In(loc).Format("02.01.2006 15:04")},
		{"TERMINAL CODE: " + cfg.TerminalCode},
		{},
		{"Datos de la Unidad"},
		{"Número Sigla", c.ID},
		{"Tipo / Medida", strings.TrimSpace(string(c.Size) + " " + string(c.Type))},
		{"Línea Naviera", c.ShippingLine},
		{"Carga", string(c.Load())},
		{"Tara (KG)", kg(c.Tare)},
		{"Peso Bruto (KG)", kg(c.DisplayWeight())},
		{},
		{"Logística Marítima"},
		{"Nave / Buque", c.Vessel},
		{"Viaje", c.Voyage},
		{"N° Bill of Lading (BL)", c.BL},
		{"Cliente / Consignatario", c.Client},
		{"Guía de Recepción", c.ReceptionNote},
		{"Condición", "IN-DEPOT"},
		{},
		{"Información Transporte"},
		{"Patente Camión", c.Transport.TruckPlate},
		{"Empresa Transporte", c.Transport.Company},
		{"Nombre Chofer", c.Transport.DriverName},
		{"ID Chofer", c.Transport.DriverID},
		{},
		{"Ubicación en Patio", yard.Position(c.Location)},
	}
	if c.Load() == containers.LoadLCL {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Bultos", c.CargoQuantity},
			[]interface{}{"Material", string(c.MaterialType)},
		)
	}
	if cfg.FooterNotes != "" {
		rows = append(rows, []interface{}{}, []interface{}{cfg.FooterNotes})
	}

	f, err := newBook(eirSheet)
	if err != nil {
		return File{}, err
	}
	defer func() { _ = f.Close() }()

	if err := setRows(f, eirSheet, rows); err != nil {
		return File{}, err
	}
	_ = f.SetColWidth(eirSheet, "A", "A", 28)
	_ = f.SetColWidth(eirSheet, "B", "C", 26)
	if st := bold(f); st != 0 {
		_ = f.SetCellStyle(eirSheet, "A1", "C1", st)
		_ = f.SetCellStyle(eirSheet, "C2", "C2", st)
	}

	return finish(f, fmt.Sprintf("EIR_%s_%s.xlsx", c.ID, number))
}
