package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Spok95/yard-terminal/internal/domain/catalog"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
)

// Справочники: без ссылочной целостности, контейнер может ссылаться на отсутствующее судно.

func addEntry[T catalog.Entry](list []T, item T) ([]T, error) {
	if strings.TrimSpace(item.EntryName()) == "" {
		return list, invalid([]string{"name"})
	}
	return catalog.Add(list, item), nil
}

func updateEntry[T catalog.Entry](list []T, item T) ([]T, error) {
	if strings.TrimSpace(item.EntryName()) == "" {
		return list, invalid([]string{"name"})
	}
	next, ok := catalog.Update(list, item)
	if !ok {
		return list, fmt.Errorf("%w: %s", ErrNotFound, item.EntryID())
	}
	return next, nil
}

func removeEntry[T catalog.Entry](list []T, id string) ([]T, error) {
	next, ok := catalog.Remove(list, id)
	if !ok {
		return list, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return next, nil
}

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func AddVessel(st *State, v catalog.Vessel) (catalog.Vessel, error) {
	v.ID = newID(v.ID)
	next, err := addEntry(st.Vessels, v)
	if err == nil {
		st.Vessels = next
	}
	return v, err
}

func UpdateVessel(st *State, v catalog.Vessel) (err error) {
	st.Vessels, err = updateEntry(st.Vessels, v)
	return err
}

func RemoveVessel(st *State, id string) (err error) {
	st.Vessels, err = removeEntry(st.Vessels, id)
	return err
}

func AddLine(st *State, l catalog.ShippingLine) (catalog.ShippingLine, error) {
	l.ID = newID(l.ID)
	next, err := addEntry(st.Lines, l)
	if err == nil {
		st.Lines = next
	}
	return l, err
}

func UpdateLine(st *State, l catalog.ShippingLine) (err error) {
	st.Lines, err = updateEntry(st.Lines, l)
	return err
}

func RemoveLine(st *State, id string) (err error) {
	st.Lines, err = removeEntry(st.Lines, id)
	return err
}

func AddAgency(st *State, a catalog.CustomsAgency) (catalog.CustomsAgency, error) {
	a.ID = newID(a.ID)
	next, err := addEntry(st.Agencies, a)
	if err == nil {
		st.Agencies = next
	}
	return a, err
}

func UpdateAgency(st *State, a catalog.CustomsAgency) (err error) {
	st.Agencies, err = updateEntry(st.Agencies, a)
	return err
}

func RemoveAgency(st *State, id string) (err error) {
	st.Agencies, err = removeEntry(st.Agencies, id)
	return err
}

func AddClient(st *State, c catalog.Client) (catalog.Client, error) {
	c.ID = newID(c.ID)
	next, err := addEntry(st.Clients, c)
	if err == nil {
		st.Clients = next
	}
	return c, err
}

func UpdateClient(st *State, c catalog.Client) (err error) {
	st.Clients, err = updateEntry(st.Clients, c)
	return err
}

func RemoveClient(st *State, id string) (err error) {
	st.Clients, err = removeEntry(st.Clients, id)
	return err
}

func AddMaterial(st *State, m catalog.Material) (catalog.Material, error) {
	m.ID = newID(m.ID)
	next, err := addEntry(st.Materials, m)
	if err == nil {
		st.Materials = next
	}
	return m, err
}

func UpdateMaterial(st *State, m catalog.Material) (err error) {
	st.Materials, err = updateEntry(st.Materials, m)
	return err
}

func RemoveMaterial(st *State, id string) (err error) {
	st.Materials, err = removeEntry(st.Materials, id)
	return err
}

// SaveDriver — та же нормализация, что и в сценариях въезда/выезда.
func SaveDriver(st *State, d drivers.TransportInfo) (drivers.TransportInfo, error) {
	var problems []string
	if drivers.Normalize(d.DriverID) == "" {
		problems = append(problems, "driverId")
	}
	if strings.TrimSpace(d.DriverName) == "" {
		problems = append(problems, "driverName")
	}
	if err := invalid(problems); err != nil {
		return d, err
	}
	if d.DriverType == "" {
		d.DriverType = drivers.IDNational
	}
	d.DriverName = drivers.ProperCase(strings.TrimSpace(d.DriverName))
	d.Company = drivers.ProperCase(strings.TrimSpace(d.Company))
	st.Drivers = drivers.Upsert(st.Drivers, d)
	return d, nil
}

func RemoveDriver(st *State, id string) error {
	next, ok := drivers.Remove(st.Drivers, id)
	if !ok {
		return fmt.Errorf("%w: driver %s", ErrNotFound, id)
	}
	st.Drivers = next
	return nil
}
