package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/internments"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
)

type GateOutRequest struct {
	ContainerID string                `json:"containerId"`
	Transport   drivers.TransportInfo `json:"transport"`
	ExitDate    time.Time             `json:"exitDate"`
	// Исправления полей, сделанные на выезде.
	Corrections *ContainerPatch `json:"corrections,omitempty"`
}

func (r GateOutRequest) Problems() []string {
	out := drivers.Problems(r.Transport, false)
	if strings.TrimSpace(r.ContainerID) == "" {
		out = append(out, "containerId")
	}
	if r.ExitDate.IsZero() {
		out = append(out, "exitDate")
	}
	if r.Corrections != nil {
		out = append(out, r.Corrections.Problems()...)
	}
	return out
}

type GateOutResult struct {
	Container  containers.Container `json:"container"`
	Movement   movements.Movement   `json:"movement"`
	Stay       string               `json:"stay"`
	Internment string               `json:"internment,omitempty"`
}

// GateOut выпускает контейнер. Слот освобождается неявно: сетка видит только In.
func GateOut(st *State, req GateOutRequest) (GateOutResult, error) {
	if err := invalid(req.Problems()); err != nil {
		return GateOutResult{}, err
	}
	id := strings.TrimSpace(req.ContainerID)
	idx := containers.FindIn(st.Containers, id)
	if idx < 0 {
		return GateOutResult{}, fmt.Errorf("%w: %s", ErrNotInYard, id)
	}

	transport := req.Transport
	transport.DriverName = drivers.ProperCase(strings.TrimSpace(transport.DriverName))
	transport.Company = drivers.ProperCase(strings.TrimSpace(transport.Company))

	c := st.Containers[idx]
	if req.Corrections != nil {
		c = req.Corrections.apply(c)
	}
	exit := req.ExitDate
	c.Status = containers.StatusOut
	c.ExitDate = &exit

	mv := movements.Transport(uuid.NewString(), id, movements.KindGateOut, exit, transport)

	next := make([]containers.Container, len(st.Containers))
	copy(next, st.Containers)
	next[idx] = c
	st.Containers = next
	st.Movements = movements.Prepend(st.Movements, mv)
	st.Drivers = drivers.Upsert(st.Drivers, transport)

	res := GateOutResult{
		Container: c,
		Movement:  mv,
		Stay:      containers.FormatStay(containers.StayDuration(c.EntryDate, exit)),
	}
	if list, i := internments.AdvanceOnGateOut(st.Internments, id); i >= 0 {
		res.Internment = list[i].ID
		st.Internments = list
	}
	return res, nil
}
