package app

import (
	"context"
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

var (
	gateInKeys  = []Key{KeyContainers, KeyMovements, KeyDrivers, KeyInternments}
	gateOutKeys = gateInKeys
)

func (s *Session) GateIn(ctx context.Context, req GateInRequest) (GateInResult, error) {
	var res GateInResult
	err := s.mutate(ctx, gateInKeys, func(st *State) (Event, error) {
		var err error
		res, err = GateIn(st, req)
		return Event{Kind: EventGateIn, GateIn: &res}, err
	})
	if err == nil {
		s.log.Info("gate-in", "container", res.Container.ID, "eir", res.Container.EIRNumber,
			"position", yard.Position(res.Container.Location))
	}
	return res, err
}

func (s *Session) GateOut(ctx context.Context, req GateOutRequest) (GateOutResult, error) {
	var res GateOutResult
	err := s.mutate(ctx, gateOutKeys, func(st *State) (Event, error) {
		var err error
		res, err = GateOut(st, req)
		return Event{Kind: EventGateOut, GateOut: &res}, err
	})
	if err == nil {
		s.log.Info("gate-out", "container", res.Container.ID, "stay", res.Stay)
	}
	return res, err
}

func (s *Session) Relocate(ctx context.Context, req RelocateRequest) (movements.Movement, error) {
	var mv movements.Movement
	err := s.mutate(ctx, []Key{KeyContainers, KeyMovements}, func(st *State) (Event, error) {
		var err error
		mv, err = Relocate(st, req, s.now())
		return Event{Kind: EventRelocation, Payload: mv}, err
	})
	return mv, err
}

func (s *Session) UpdateContainer(ctx context.Context, id string, patch ContainerPatch) (containers.Container, error) {
	var c containers.Container
	err := s.mutate(ctx, []Key{KeyContainers, KeyMovements}, func(st *State) (Event, error) {
		var (
			mv  movements.Movement
			err error
		)
		c, mv, err = UpdateContainer(st, id, patch, s.now())
		return Event{Kind: EventCorrection, Payload: mv}, err
	})
	return c, err
}

func (s *Session) RemoveContainer(ctx context.Context, id string) error {
	return s.mutate(ctx, []Key{KeyContainers}, func(st *State) (Event, error) {
		return Event{Kind: EventRemoved, Payload: id}, RemoveContainer(st, id)
	})
}

// masterData — общий враппер для операций со справочниками.
func (s *Session) masterData(ctx context.Context, key Key, fn func(st *State) error) error {
	return s.mutate(ctx, []Key{key}, func(st *State) (Event, error) {
		return Event{Kind: EventMasterData, Key: key}, fn(st)
	})
}

func (s *Session) AddVessel(ctx context.Context, v catalog.Vessel) (out catalog.Vessel, err error) {
	err = s.masterData(ctx, KeyVessels, func(st *State) (e error) { out, e = AddVessel(st, v); return })
	return out, err
}

func (s *Session) UpdateVessel(ctx context.Context, v catalog.Vessel) error {
	return s.masterData(ctx, KeyVessels, func(st *State) error { return UpdateVessel(st, v) })
}

func (s *Session) RemoveVessel(ctx context.Context, id string) error {
	return s.masterData(ctx, KeyVessels, func(st *State) error { return RemoveVessel(st, id) })
}

func (s *Session) AddLine(ctx context.Context, l catalog.ShippingLine) (out catalog.ShippingLine, err error) {
	err = s.masterData(ctx, KeyLines, func(st *State) (e error) { out, e = AddLine(st, l); return })
	return out, err
}

func (s *Session) UpdateLine(ctx context.Context, l catalog.ShippingLine) error {
	return s.masterData(ctx, KeyLines, func(st *State) error { return UpdateLine(st, l) })
}

func (s *Session) RemoveLine(ctx context.Context, id string) error {
	return s.masterData(ctx, KeyLines, func(st *State) error { return RemoveLine(st, id) })
}

func (s *Session) AddAgency(ctx context.Context, a catalog.CustomsAgency) (out catalog.CustomsAgency, err error) {
	err = s.masterData(ctx, KeyAgencies, func(st *State) (e error) { out, e = AddAgency(st, a); return })
	return out, err
}

func (s *Session) UpdateAgency(ctx context.Context, a catalog.CustomsAgency) error {
	return s.masterData(ctx, KeyAgencies, func(st *State) error { return UpdateAgency(st, a) })
}

func (s *Session) RemoveAgency(ctx context.Context, id string) error {
	return s.masterData(ctx, KeyAgencies, func(st *State) error { return RemoveAgency(st, id) })
}

func (s *Session) AddClient(ctx context.Context, c catalog.Client) (out catalog.Client, err error) {
	err = s.masterData(ctx, KeyClients, func(st *State) (e error) { out, e = AddClient(st, c); return })
	return out, err
}

func (s *Session) UpdateClient(ctx context.Context, c catalog.Client) error {
	return s.masterData(ctx, KeyClients, func(st *State) error { return UpdateClient(st, c) })
}

func (s *Session) RemoveClient(ctx context.Context, id string) error {
	return s.masterData(ctx, KeyClients, func(st *State) error { return RemoveClient(st, id) })
}

func (s *Session) AddMaterial(ctx context.Context, m catalog.Material) (out catalog.Material, err error) {
	err = s.masterData(ctx, KeyMaterials, func(st *State) (e error) { out, e = AddMaterial(st, m); return })
	return out, err
}

func (s *Session) UpdateMaterial(ctx context.Context, m catalog.Material) error {
	return s.masterData(ctx, KeyMaterials, func(st *State) error { return UpdateMaterial(st, m) })
}

func (s *Session) RemoveMaterial(ctx context.Context, id string) error {
	return s.masterData(ctx, KeyMaterials, func(st *State) error { return RemoveMaterial(st, id) })
}

func (s *Session) SaveDriver(ctx context.Context, d drivers.TransportInfo) (out drivers.TransportInfo, err error) {
	err = s.masterData(ctx, KeyDrivers, func(st *State) (e error) { out, e = SaveDriver(st, d); return })
	return out, err
}

func (s *Session) RemoveDriver(ctx context.Context, id string) error {
	return s.masterData(ctx, KeyDrivers, func(st *State) error { return RemoveDriver(st, id) })
}

func (s *Session) settings(ctx context.Context, key Key, fn func(st *State) error) error {
	return s.mutate(ctx, []Key{key}, func(st *State) (Event, error) {
		return Event{Kind: EventSettings, Key: key}, fn(st)
	})
}

func (s *Session) UpdateYard(ctx context.Context, cfg yard.Config, force bool) (out yard.Config, err error) {
	err = s.settings(ctx, KeyYard, func(st *State) (e error) { out, e = UpdateYard(st, cfg, force); return })
	return out, err
}

func (s *Session) AddBlock(ctx context.Context, name string) (out yard.Config, err error) {
	err = s.settings(ctx, KeyYard, func(st *State) (e error) { out, e = AddBlock(st, name); return })
	return out, err
}

func (s *Session) RemoveBlock(ctx context.Context, name string, force bool) (out yard.Config, err error) {
	err = s.settings(ctx, KeyYard, func(st *State) (e error) { out, e = RemoveBlock(st, name, force); return })
	return out, err
}

func (s *Session) SetDimensions(ctx context.Context, bays, rows, tiers int, force bool) (out yard.Config, err error) {
	err = s.settings(ctx, KeyYard, func(st *State) (e error) { out, e = SetDimensions(st, bays, rows, tiers, force); return })
	return out, err
}

func (s *Session) SetLCLBlock(ctx context.Context, name string) (out yard.Config, err error) {
	err = s.settings(ctx, KeyYard, func(st *State) (e error) { out, e = SetLCLBlock(st, name); return })
	return out, err
}

func (s *Session) UpdateEIR(ctx context.Context, cfg eir.Config) (out eir.Config, err error) {
	err = s.settings(ctx, KeyEIR, func(st *State) error { out = UpdateEIR(st, cfg); return nil })
	return out, err
}

func (s *Session) documents(ctx context.Context, key Key, fn func(st *State) error) error {
	return s.mutate(ctx, []Key{key}, func(st *State) (Event, error) {
		return Event{Kind: EventDocuments, Key: key}, fn(st)
	})
}

func (s *Session) AddPreload(ctx context.Context, p preloads.Preload) (out preloads.Preload, err error) {
	err = s.documents(ctx, KeyPreloads, func(st *State) (e error) { out, e = AddPreload(st, p, s.now()); return })
	return out, err
}

func (s *Session) ImportPreloads(ctx context.Context, rows []preloads.Preload) (out []preloads.Preload, err error) {
	err = s.documents(ctx, KeyPreloads, func(st *State) (e error) { out, e = ImportPreloads(st, rows, s.now()); return })
	return out, err
}

func (s *Session) RemovePreload(ctx context.Context, id string) error {
	return s.documents(ctx, KeyPreloads, func(st *State) error { return RemovePreload(st, id) })
}

func (s *Session) AttachPreloadFile(ctx context.Context, id, name, mime string, data []byte) (out preloads.Preload, err error) {
	err = s.documents(ctx, KeyPreloads, func(st *State) (e error) { out, e = AttachPreloadFile(st, id, name, mime, data); return })
	return out, err
}

func (s *Session) AddInternment(ctx context.Context, in internments.Internment) (out internments.Internment, err error) {
	err = s.documents(ctx, KeyInternments, func(st *State) (e error) { out, e = AddInternment(st, in); return })
	return out, err
}

func (s *Session) RemoveInternment(ctx context.Context, id string) error {
	return s.documents(ctx, KeyInternments, func(st *State) error { return RemoveInternment(st, id) })
}

// --- чтение ---

func (s *Session) read(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.st)
}

func (s *Session) Stats() (out Stats) {
	s.read(func(st *State) { out = ComputeStats(st, s.now(), s.loc) })
	return out
}

func (s *Session) Storage(q string) (out []StorageRow) {
	s.read(func(st *State) { out = Storage(st, q, s.now(), s.loc) })
	return out
}

func (s *Session) Slots() (cfg yard.Config, slots []yard.Slot) {
	s.read(func(st *State) {
		cfg = st.Yard
		cfg.Blocks = slices.Clone(st.Yard.Blocks)
		slots = st.Slots()
	})
	return cfg, slots
}

func (s *Session) Container(id string) (c containers.Container, ok bool) {
	s.read(func(st *State) {
		if i := containers.FindIn(st.Containers, id); i >= 0 {
			c, ok = st.Containers[i], true
			return
		}
		// последняя запись с этим id (для выданных)
		for i := len(st.Containers) - 1; i >= 0; i-- {
			if st.Containers[i].ID == id {
				c, ok = st.Containers[i], true
				return
			}
		}
	})
	return c, ok
}

func (s *Session) SearchContainers(q string) (out []containers.Container) {
	s.read(func(st *State) { out = slices.Clone(containers.Search(st.Containers, q)) })
	return out
}

func (s *Session) QuickFind(q string) (out []containers.Container) {
	s.read(func(st *State) { out = containers.QuickFind(st.Containers, q, 10) })
	return out
}

func (s *Session) History(q string, kind movements.Kind) (out []movements.Movement) {
	s.read(func(st *State) { out = History(st, q, kind) })
	return out
}

func (s *Session) ContainerHistory(id string) (out []movements.Movement) {
	s.read(func(st *State) { out = movements.ForContainer(st.Movements, id) })
	return out
}

func (s *Session) EIRConfig() (out eir.Config) {
	s.read(func(st *State) { out = st.EIR })
	return out
}

// NewGateInForm — форма с учётом текущего времени терминала.
func (s *Session) NewGateInForm(load containers.LoadType) *GateInForm {
	return NewGateInForm(load, s.Now())
}

// FillForm применяет справочники к форме: преднагрузку и водителя.
func (s *Session) FillForm(f *GateInForm, note, driverID string) {
	s.read(func(st *State) {
		if note != "" {
			f.SetReceptionNote(note, st.Preloads)
		}
		if driverID != "" {
			f.SetDriverID(driverID, st.Drivers)
		}
		if f.Req.Slot == nil {
			if loc, ok := f.SuggestSlot(st.Yard, st.Slots()); ok {
				f.Req.Slot = &loc
			}
		}
	})
}

// FindDriver ищет водителя в справочнике по документу.
func (s *Session) FindDriver(id string) (d drivers.TransportInfo, ok bool) {
	s.read(func(st *State) { d, ok = drivers.Find(st.Drivers, id) })
	return d, ok
}
