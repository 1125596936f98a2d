package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/eir"
	"github.com/Spok95/yard-terminal/internal/domain/internments"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

type GateInRequest struct {
	LoadType containers.LoadType `json:"loadType"`

	// FCL: owner + serial + контрольная цифра
	OwnerCode  string `json:"ownerCode,omitempty"`
	Serial     string `json:"serial,omitempty"`
	CheckDigit string `json:"checkDigit,omitempty"`

	Client        string                `json:"client"`
	ReceptionNote string                `json:"receptionNote"`
	EIRNumber     string                `json:"eirNumber,omitempty"`
	Vessel        string                `json:"vessel"`
	Voyage        string                `json:"voyage,omitempty"`
	BL            string                `json:"bl"`
	ShippingLine  string                `json:"shippingLine"`
	Weight        float64               `json:"weight"`
	Tare          float64               `json:"tare"`
	Size          containers.Size       `json:"size,omitempty"`
	Type          containers.Type       `json:"type,omitempty"`
	EntryDate     time.Time             `json:"entryDate"`
	Slot          *yard.Location        `json:"slot,omitempty"`
	Transport     drivers.TransportInfo `json:"transport"`

	// LCL
	CargoQuantity int                     `json:"cargoQuantity,omitempty"`
	CargoWeight   float64                 `json:"cargoWeight,omitempty"`
	MaterialType  containers.MaterialType `json:"materialType,omitempty"`
}

func (r GateInRequest) load() containers.LoadType {
	if r.LoadType == "" {
		return containers.LoadFCL
	}
	return r.LoadType
}

func yardLoad(l containers.LoadType) yard.Load {
	if l == containers.LoadLCL {
		return yard.LoadPart
	}
	return yard.LoadFull
}

// ContainerID — итоговый id контейнера для запроса.
func (r GateInRequest) ContainerID() string {
	if r.load() == containers.LoadLCL {
		return containers.PartLoadID(strings.TrimSpace(r.ReceptionNote), strings.TrimSpace(r.Client))
	}
	return containers.FullLoadID(r.OwnerCode, r.Serial, r.CheckDigit)
}

// Problems — проверка полей формы въезда.
func (r GateInRequest) Problems() []string {
	out := drivers.Problems(r.Transport, true)
	if strings.TrimSpace(r.Client) == "" {
		out = append(out, "client")
	}
	if strings.TrimSpace(r.ReceptionNote) == "" {
		out = append(out, "receptionNote")
	}
	if r.EntryDate.IsZero() {
		out = append(out, "entryDate")
	}
	switch r.load() {
	case containers.LoadFCL:
		if len([]rune(strings.TrimSpace(r.Vessel))) < 2 {
			out = append(out, "vessel")
		}
		if len(strings.TrimSpace(r.OwnerCode)) != 4 {
			out = append(out, "ownerCode")
		}
		if len(strings.TrimSpace(r.Serial)) != 6 {
			out = append(out, "serial")
		}
		if len(strings.TrimSpace(r.CheckDigit)) != 1 {
			out = append(out, "checkDigit")
		}
		if strings.TrimSpace(r.ShippingLine) == "" {
			out = append(out, "shippingLine")
		}
		if r.Tare < 0 {
			out = append(out, "tare")
		}
		if r.Weight <= 0 {
			out = append(out, "weight")
		}
	case containers.LoadLCL:
		if r.CargoQuantity <= 0 {
			out = append(out, "cargoQuantity")
		}
		if r.CargoWeight <= 0 {
			out = append(out, "cargoWeight")
		}
		if r.MaterialType == "" {
			out = append(out, "materialType")
		}
	default:
		out = append(out, "loadType")
	}
	return out
}

type GateInResult struct {
	Container  containers.Container `json:"container"`
	Movement   movements.Movement   `json:"movement"`
	Internment string               `json:"internment,omitempty"` // id продвинутой записи
}

// resolveSlot: явный слот должен существовать и быть свободным; иначе первый свободный по типу груза.
func resolveSlot(st *State, want *yard.Location, load containers.LoadType) (yard.Location, error) {
	slots := st.Slots()
	if want != nil {
		s, ok := yard.At(slots, *want)
		if !ok {
			return yard.Location{}, fmt.Errorf("%w: %s", ErrUnknownSlot, yard.Position(*want))
		}
		if !s.Free() {
			return yard.Location{}, fmt.Errorf("%w: %s by %s", ErrSlotOccupied, yard.Position(*want), s.ContainerID)
		}
		return s.Location, nil
	}
	s, ok := yard.FirstFree(st.Yard, slots, yardLoad(load))
	if !ok {
		return yard.Location{}, ErrYardFull
	}
	return s.Location, nil
}

// GateIn регистрирует въезд. При ошибке состояние не меняется.
func GateIn(st *State, req GateInRequest) (GateInResult, error) {
	if err := invalid(req.Problems()); err != nil {
		return GateInResult{}, err
	}
	load := req.load()
	loc, err := resolveSlot(st, req.Slot, load)
	if err != nil {
		return GateInResult{}, err
	}

	id := req.ContainerID()
	if containers.FindIn(st.Containers, id) >= 0 {
		return GateInResult{}, fmt.Errorf("%w: %s", ErrAlreadyInYard, id)
	}

	eirNumber := strings.TrimSpace(req.EIRNumber)
	if eirNumber == "" {
		eirNumber = eir.NewNumber(st.EIR.EIRPrefix)
	}

	transport := req.Transport
	transport.DriverName = drivers.ProperCase(strings.TrimSpace(transport.DriverName))
	transport.Company = drivers.ProperCase(strings.TrimSpace(transport.Company))

	c := containers.Container{
		ID:            id,
		Client:        strings.TrimSpace(req.Client),
		ReceptionNote: strings.TrimSpace(req.ReceptionNote),
		EIRNumber:     eirNumber,
		Vessel:        strings.TrimSpace(req.Vessel),
		Voyage:        strings.TrimSpace(req.Voyage),
		BL:            strings.TrimSpace(req.BL),
		ShippingLine:  strings.TrimSpace(req.ShippingLine),
		Weight:        req.Weight,
		Tare:          req.Tare,
		Size:          req.Size,
		Type:          req.Type,
		EntryDate:     req.EntryDate,
		Status:        containers.StatusIn,
		Location:      loc,
		Transport:     transport,
		LoadType:      load,
	}
	if c.Size == "" {
		c.Size = containers.Size20
	}
	if c.Type == "" {
		c.Type = containers.TypeDry
	}
	if load == containers.LoadLCL {
		c.CargoQuantity = req.CargoQuantity
		c.CargoWeight = req.CargoWeight
		c.MaterialType = req.MaterialType
	}

	mv := movements.Transport(uuid.NewString(), id, movements.KindGateIn, req.EntryDate, transport)

	st.Containers = append(st.Containers, c)
	st.Movements = movements.Prepend(st.Movements, mv)
	st.Drivers = drivers.Upsert(st.Drivers, transport)

	res := GateInResult{Container: c, Movement: mv}
	if next, i := internments.AdvanceOnGateIn(st.Internments, id); i >= 0 {
		res.Internment = next[i].ID
		st.Internments = next
	}
	return res, nil
}
