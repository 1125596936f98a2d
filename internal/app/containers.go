package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
)

// ContainerPatch — правка полей записи. Позиция и статус здесь не меняются.
type ContainerPatch struct {
	Client        *string                  `json:"client,omitempty"`
	ReceptionNote *string                  `json:"receptionNote,omitempty"`
	EIRNumber     *string                  `json:"eirNumber,omitempty"`
	Vessel        *string                  `json:"vessel,omitempty"`
	Voyage        *string                  `json:"voyage,omitempty"`
	BL            *string                  `json:"bl,omitempty"`
	ShippingLine  *string                  `json:"shippingLine,omitempty"`
	Weight        *float64                 `json:"weight,omitempty"`
	Tare          *float64                 `json:"tare,omitempty"`
	Size          *containers.Size         `json:"size,omitempty"`
	Type          *containers.Type         `json:"type,omitempty"`
	EntryDate     *time.Time               `json:"entryDate,omitempty"`
	CargoQuantity *int                     `json:"cargoQuantity,omitempty"`
	CargoWeight   *float64                 `json:"cargoWeight,omitempty"`
	MaterialType  *containers.MaterialType `json:"materialType,omitempty"`
	Transport     *drivers.TransportInfo   `json:"transport,omitempty"`
}

func (p ContainerPatch) Problems() []string {
	var out []string
	if p.Client != nil && strings.TrimSpace(*p.Client) == "" {
		out = append(out, "client")
	}
	if p.Weight != nil && *p.Weight < 0 {
		out = append(out, "weight")
	}
	if p.Tare != nil && *p.Tare < 0 {
		out = append(out, "tare")
	}
	if p.CargoQuantity != nil && *p.CargoQuantity < 0 {
		out = append(out, "cargoQuantity")
	}
	if p.CargoWeight != nil && *p.CargoWeight < 0 {
		out = append(out, "cargoWeight")
	}
	if p.EntryDate != nil && p.EntryDate.IsZero() {
		out = append(out, "entryDate")
	}
	return out
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func (p ContainerPatch) apply(c containers.Container) containers.Container {
	setStr(&c.Client, p.Client)
	setStr(&c.ReceptionNote, p.ReceptionNote)
	setStr(&c.EIRNumber, p.EIRNumber)
	setStr(&c.Vessel, p.Vessel)
	setStr(&c.Voyage, p.Voyage)
	setStr(&c.BL, p.BL)
	setStr(&c.ShippingLine, p.ShippingLine)
	if p.Weight != nil {
		c.Weight = *p.Weight
	}
	if p.Tare != nil {
		c.Tare = *p.Tare
	}
	if p.Size != nil {
		c.Size = *p.Size
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.EntryDate != nil {
		c.EntryDate = *p.EntryDate
	}
	if p.CargoQuantity != nil {
		c.CargoQuantity = *p.CargoQuantity
	}
	if p.CargoWeight != nil {
		c.CargoWeight = *p.CargoWeight
	}
	if p.MaterialType != nil {
		c.MaterialType = *p.MaterialType
	}
	if p.Transport != nil {
		c.Transport = *p.Transport
	}
	return c
}

// UpdateContainer правит запись контейнера в площадке и пишет Correction в журнал.
func UpdateContainer(st *State, id string, patch ContainerPatch, now time.Time) (containers.Container, movements.Movement, error) {
	if err := invalid(patch.Problems()); err != nil {
		return containers.Container{}, movements.Movement{}, err
	}
	idx := containers.FindIn(st.Containers, id)
	if idx < 0 {
		return containers.Container{}, movements.Movement{}, fmt.Errorf("%w: %s", ErrNotInYard, id)
	}
	c := patch.apply(st.Containers[idx])
	mv := movements.Transport(uuid.NewString(), id, movements.KindCorrection, now, c.Transport)

	next := make([]containers.Container, len(st.Containers))
	copy(next, st.Containers)
	next[idx] = c
	st.Containers = next
	st.Movements = movements.Prepend(st.Movements, mv)
	return c, mv, nil
}

// RemoveContainer удаляет все записи с этим id. Журнал движений не трогается.
func RemoveContainer(st *State, id string) error {
	next, n := containers.RemoveAll(st.Containers, id)
	if n == 0 {
		return fmt.Errorf("%w: container %s", ErrNotFound, id)
	}
	st.Containers = next
	return nil
}
