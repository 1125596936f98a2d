package app

import (
	"slices"

	"github.com/Spok95/yard-terminal/internal/domain/catalog"
	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/eir"
	"github.com/Spok95/yard-terminal/internal/domain/internments"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
	"github.com/Spok95/yard-terminal/internal/domain/preloads"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

// Key — имя снапшота в хранилище.
type Key string

const (
	KeyVessels     Key = "vessels"
	KeyLines       Key = "lines"
	KeyAgencies    Key = "agencies"
	KeyClients     Key = "clients"
	KeyMaterials   Key = "materials"
	KeyDrivers     Key = "drivers"
	KeyYard        Key = "yard_config"
	KeyEIR         Key = "eir_config"
	KeyContainers  Key = "containers"
	KeyMovements   Key = "movements"
	KeyInternments Key = "internments"
	KeyPreloads    Key = "preloads"
	KeyAuth        Key = "auth"
)

var AllKeys = []Key{
	KeyVessels, KeyLines, KeyAgencies, KeyClients, KeyMaterials, KeyDrivers,
	KeyYard, KeyEIR, KeyContainers, KeyMovements, KeyInternments, KeyPreloads, KeyAuth,
}

type Defaults struct {
	Yard yard.Config
	EIR  eir.Config
}

func DefaultDefaults() Defaults {
	return Defaults{Yard: yard.DefaultConfig(), EIR: eir.DefaultConfig()}
}

// State — всё состояние площадки. Меняется только через функции сценариев.
type State struct {
	Vessels       []catalog.Vessel
	Lines         []catalog.ShippingLine
	Agencies      []catalog.CustomsAgency
	Clients       []catalog.Client
	Materials     []catalog.Material
	Drivers       []drivers.TransportInfo
	Yard          yard.Config
	EIR           eir.Config
	Containers    []containers.Container
	Movements     []movements.Movement
	Internments   []internments.Internment
	Preloads      []preloads.Preload
	Authenticated bool
}

func NewState(d Defaults) *State {
	y := d.Yard
	y.Blocks = slices.Clone(y.Blocks)
	return &State{Yard: y, EIR: d.EIR}
}

// Slots — производная сетка по текущим контейнерам.
func (s *State) Slots() []yard.Slot {
	return yard.Derive(s.Yard, containers.Occupants(s.Containers))
}

// field возвращает указатель на поле, хранящееся под ключом k.
func (s *State) field(k Key) any {
	switch k {
	case KeyVessels:
		return &s.Vessels
	case KeyLines:
		return &s.Lines
	case KeyAgencies:
		return &s.Agencies
	case KeyClients:
		return &s.Clients
	case KeyMaterials:
		return &s.Materials
	case KeyDrivers:
		return &s.Drivers
	case KeyYard:
		return &s.Yard
	case KeyEIR:
		return &s.EIR
	case KeyContainers:
		return &s.Containers
	case KeyMovements:
		return &s.Movements
	case KeyInternments:
		return &s.Internments
	case KeyPreloads:
		return &s.Preloads
	case KeyAuth:
		return &s.Authenticated
	}
	return nil
}

// resetKey возвращает поле к значению из def.
func (s *State) resetKey(k Key, def *State) {
	switch k {
	case KeyVessels:
		s.Vessels = def.Vessels
	case KeyLines:
		s.Lines = def.Lines
	case KeyAgencies:
		s.Agencies = def.Agencies
	case KeyClients:
		s.Clients = def.Clients
	case KeyMaterials:
		s.Materials = def.Materials
	case KeyDrivers:
		s.Drivers = def.Drivers
	case KeyYard:
		s.Yard = def.Yard
	case KeyEIR:
		s.EIR = def.EIR
	case KeyContainers:
		s.Containers = def.Containers
	case KeyMovements:
		s.Movements = def.Movements
	case KeyInternments:
		s.Internments = def.Internments
	case KeyPreloads:
		s.Preloads = def.Preloads
	case KeyAuth:
		s.Authenticated = def.Authenticated
	}
}

// Clone — копия для читателей; срезы копируются поверхностно.
func (s *State) Clone() *State {
	c := *s
	c.Vessels = slices.Clone(s.Vessels)
	c.Lines = slices.Clone(s.Lines)
	c.Agencies = slices.Clone(s.Agencies)
	c.Clients = slices.Clone(s.Clients)
	c.Materials = slices.Clone(s.Materials)
	c.Drivers = slices.Clone(s.Drivers)
	c.Yard.Blocks = slices.Clone(s.Yard.Blocks)
	c.Containers = slices.Clone(s.Containers)
	c.Movements = slices.Clone(s.Movements)
	c.Internments = slices.Clone(s.Internments)
	c.Preloads = slices.Clone(s.Preloads)
	return &c
}
