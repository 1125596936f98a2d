package app

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/preloads"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

// GateInForm — модель формы въезда: автоподсчёт контрольной цифры,
// автозаполнение из преднагрузки и из справочника водителей.
type GateInForm struct {
	Req GateInRequest

	autoDigit bool
	preloaded bool
	newDriver bool
}

func NewGateInForm(load containers.LoadType, now time.Time) *GateInForm {
	return &GateInForm{
		Req: GateInRequest{
			LoadType:  load,
			Size:      containers.Size20,
			Type:      containers.TypeDry,
			EntryDate: now,
			Transport: drivers.TransportInfo{DriverType: drivers.IDNational},
		},
		autoDigit: true,
	}
}

// ResumeGateInForm восстанавливает форму из сохранённого черновика (диалог бота).
func ResumeGateInForm(req GateInRequest, autoDigit bool) *GateInForm {
	return &GateInForm{Req: req, autoDigit: autoDigit}
}

func (f *GateInForm) AutoDigit() bool { return f.autoDigit }
func (f *GateInForm) Preloaded() bool { return f.preloaded }
func (f *GateInForm) NewDriver() bool { return f.newDriver }

func keep(s string, ok func(rune) bool, limit int) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.ToUpper(s) {
		if n == limit {
			break
		}
		if ok(r) {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

func isLatin(r rune) bool { return r >= 'A' && r <= 'Z' }

func (f *GateInForm) SetLoadType(l containers.LoadType) {
	f.Req.LoadType = l
	f.recompute()
}

func (f *GateInForm) SetOwnerCode(v string) {
	f.Req.OwnerCode = keep(v, isLatin, 4)
	f.recompute()
}

func (f *GateInForm) SetSerial(v string) {
	f.Req.Serial = keep(v, unicode.IsDigit, 6)
	f.recompute()
}

// SetCheckDigit — ручной ввод выключает автоподсчёт.
func (f *GateInForm) SetCheckDigit(v string) {
	f.Req.CheckDigit = keep(v, unicode.IsDigit, 1)
	f.autoDigit = false
}

func (f *GateInForm) SetAutoDigit(on bool) {
	f.autoDigit = on
	f.recompute()
}

func (f *GateInForm) recompute() {
	if f.Req.load() != containers.LoadFCL || !f.autoDigit {
		return
	}
	combined := f.Req.OwnerCode + f.Req.Serial
	if len(combined) != 10 {
		return
	}
	if d, ok := containers.CheckDigit(combined); ok {
		f.Req.CheckDigit = fmt.Sprint(d)
	}
}

// SetReceptionNote подтягивает данные преднагрузки при точном совпадении номера.
func (f *GateInForm) SetReceptionNote(note string, list []preloads.Preload) bool {
	f.Req.ReceptionNote = note
	p, ok := preloads.Match(list, note)
	f.preloaded = ok
	if !ok {
		return false
	}
	f.Req.Client = p.Client
	f.Req.Vessel = p.Vessel
	f.Req.Voyage = p.Voyage
	f.Req.BL = p.BL
	f.Req.ShippingLine = p.ShippingLine
	f.Req.Weight = p.Weight

	if p.ContainerID != "" && f.Req.load() == containers.LoadFCL {
		cid := containers.CleanID(p.ContainerID)
		if len(cid) >= 4 {
			f.Req.OwnerCode = cid[:4]
		}
		if len(cid) >= 10 {
			f.Req.Serial = cid[4:10]
		}
		if len(cid) >= 11 {
			f.Req.CheckDigit = cid[10:11]
			f.autoDigit = false
		}
		f.recompute()
	}
	return true
}

// SetDriverID подставляет известного водителя; номер машины сохраняется, если уже введён.
func (f *GateInForm) SetDriverID(id string, known []drivers.TransportInfo) bool {
	f.Req.Transport.DriverID = drivers.FormatID(id, f.Req.Transport.DriverType)
	key := drivers.Normalize(f.Req.Transport.DriverID)
	if len(key) < 6 {
		return false
	}
	d, ok := drivers.Find(known, key)
	f.newDriver = !ok
	if !ok {
		return false
	}
	t := &f.Req.Transport
	t.DriverName = drivers.ProperCase(d.DriverName)
	t.Company = drivers.ProperCase(d.Company)
	t.DriverType = d.DriverType
	if t.TruckPlate == "" {
		t.TruckPlate = d.TruckPlate
	}
	return true
}

// SetDriverType сбрасывает номер документа, как и смена вкладки в форме.
func (f *GateInForm) SetDriverType(t drivers.IDType) {
	f.Req.Transport.DriverType = t
	f.Req.Transport.DriverID = ""
}

func (f *GateInForm) SetTruckPlate(v string) {
	f.Req.Transport.TruckPlate = drivers.FormatPlate(v)
}

// SelectSlot — выбор на карте; тип груза следует за блоком.
func (f *GateInForm) SelectSlot(cfg yard.Config, loc yard.Location) {
	l := loc
	f.Req.Slot = &l
	if loc.Block == cfg.PartLoadBlock() && len(cfg.Blocks) > 1 {
		f.Req.LoadType = containers.LoadLCL
	} else {
		f.Req.LoadType = containers.LoadFCL
	}
	f.recompute()
}

// SuggestSlot — первый свободный слот для текущего типа груза.
func (f *GateInForm) SuggestSlot(cfg yard.Config, slots []yard.Slot) (yard.Location, bool) {
	s, ok := yard.FirstFree(cfg, slots, yardLoad(f.Req.load()))
	if !ok {
		return yard.Location{}, false
	}
	return s.Location, true
}

func (f *GateInForm) Problems() []string { return f.Req.Problems() }

func (f *GateInForm) Request() GateInRequest { return f.Req }
