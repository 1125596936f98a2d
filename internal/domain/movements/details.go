package movements

import (
	"encoding/json"
	"fmt"

	"github.com/Spok95/yard-terminal/internal/domain/drivers"
)

type DetailsKind string

const (
	DetailsTransport  DetailsKind = "transport"
	DetailsRelocation DetailsKind = "relocation"
)

type Relocation struct {
	Reason string `json:"reason"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// Details — размеченное объединение: либо транспорт, либо перемещение.
type Details struct {
	Kind       DetailsKind
	Transport  *drivers.TransportInfo
	Relocation *Relocation
}

func TransportDetails(t drivers.TransportInfo) Details {
	return Details{Kind: DetailsTransport, Transport: &t}
}

func RelocationDetails(r Relocation) Details {
	return Details{Kind: DetailsRelocation, Relocation: &r}
}

// В JSON сохраняем плоскую форму (поля транспорта или reason/from/to) плюс "kind".
func (d Details) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DetailsTransport:
		var t drivers.TransportInfo
		if d.Transport != nil {
			t = *d.Transport
		}
		return json.Marshal(struct {
			Kind DetailsKind `json:"kind"`
			drivers.TransportInfo
		}{d.Kind, t})
	case DetailsRelocation:
		var r Relocation
		if d.Relocation != nil {
			r = *d.Relocation
		}
		return json.Marshal(struct {
			Kind DetailsKind `json:"kind"`
			Relocation
		}{d.Kind, r})
	case "":
		return []byte("null"), nil
	}
	return nil, fmt.Errorf("movements: unknown details kind %q", d.Kind)
}

func (d *Details) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Details{}
		return nil
	}
	var probe struct {
		Kind       DetailsKind `json:"kind"`
		TruckPlate *string     `json:"truckPlate"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	kind := probe.Kind
	if kind == "" {
		// старые снапшоты без разметки: транспорт узнаём по truckPlate
		kind = DetailsRelocation
		if probe.TruckPlate != nil {
			kind = DetailsTransport
		}
	}
	switch kind {
	case DetailsTransport:
		var t drivers.TransportInfo
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		*d = TransportDetails(t)
	case DetailsRelocation:
		var r Relocation
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*d = RelocationDetails(r)
	default:
		return fmt.Errorf("movements: unknown details kind %q", kind)
	}
	return nil
}
