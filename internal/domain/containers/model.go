package containers

import (
	"time"

	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

type Status string

const (
	StatusIn  Status = "In"
	StatusOut Status = "Out"
)

type LoadType string

const (
	LoadFCL LoadType = "FCL"
	LoadLCL LoadType = "LCL"
)

type Size string

const (
	Size20 Size = "20'"
	Size40 Size = "40'"
	Size45 Size = "45'"
	Size48 Size = "48'"
)

type Type string

const (
	TypeDry      Type = "Dry"
	TypeReefer   Type = "Reefer"
	TypeOpenTop  Type = "Open Top"
	TypeFlatRack Type = "Flat Rack"
	TypeTank     Type = "Tank"
)

type MaterialType string

const (
	MaterialBoxes   MaterialType = "Cajas"
	MaterialCoils   MaterialType = "Bobinas"
	MaterialPallets MaterialType = "Pallets"
	MaterialBags    MaterialType = "Sacos"
	MaterialPlates  MaterialType = "Planchas"
)

type Container struct {
	ID            string                `json:"id"`
	Client        string                `json:"client"`
	ReceptionNote string                `json:"receptionNote"`
	EIRNumber     string                `json:"eirNumber,omitempty"`
	Vessel        string                `json:"vessel"`
	Voyage        string                `json:"voyage,omitempty"`
	BL            string                `json:"bl"`
	ShippingLine  string                `json:"shippingLine"`
	Weight        float64               `json:"weight"`
	Tare          float64               `json:"tare"`
	Size          Size                  `json:"size"`
	Type          Type                  `json:"type"`
	EntryDate     time.Time             `json:"entryDate"`
	ExitDate      *time.Time            `json:"exitDate,omitempty"`
	Status        Status                `json:"status"`
	Location      yard.Location         `json:"location"`
	Transport     drivers.TransportInfo `json:"transport"`
	LoadType      LoadType              `json:"loadType,omitempty"`
	CargoQuantity int                   `json:"cargoQuantity,omitempty"`
	CargoWeight   float64               `json:"cargoWeight,omitempty"`
	MaterialType  MaterialType          `json:"materialType,omitempty"`
}

func (c Container) InYard() bool { return c.Status == StatusIn }

// Load — тип загрузки; старые записи без поля считаются FCL.
func (c Container) Load() LoadType {
	if c.LoadType == "" {
		return LoadFCL
	}
	return c.LoadType
}

// DisplayWeight — вес для таблиц: брутто, иначе вес груза LCL.
func (c Container) DisplayWeight() float64 {
	if c.Weight > 0 {
		return c.Weight
	}
	return c.CargoWeight
}

// Occupants адаптирует контейнеры к построителю сетки.
func Occupants(list []Container) []yard.Occupant {
	out := make([]yard.Occupant, 0, len(list))
	for _, c := range list {
		out = append(out, yard.Occupant{ID: c.ID, Location: c.Location, InYard: c.InYard()})
	}
	return out
}

// FindIn возвращает индекс контейнера id в статусе In, иначе -1.
func FindIn(list []Container, id string) int {
	for i, c := range list {
		if c.ID == id && c.InYard() {
			return i
		}
	}
	return -1
}

func InYard(list []Container) []Container {
	out := make([]Container, 0, len(list))
	for _, c := range list {
		if c.InYard() {
			out = append(out, c)
		}
	}
	return out
}

// RemoveAll удаляет все записи с данным id (включая выданные).
func RemoveAll(list []Container, id string) ([]Container, int) {
	out := list[:0:0]
	removed := 0
	for _, c := range list {
		if c.ID == id {
			removed++
			continue
		}
		out = append(out, c)
	}
	return out, removed
}
