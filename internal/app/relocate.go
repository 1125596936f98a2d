package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

const DefaultRelocationReason = "Cambio de posición manual"

type RelocateRequest struct {
	ContainerID string        `json:"containerId"`
	To          yard.Location `json:"to"`
	Reason      string        `json:"reason,omitempty"`
}

// Relocate меняет только позицию; занятый слот никогда не перезаписывается.
func Relocate(st *State, req RelocateRequest, now time.Time) (movements.Movement, error) {
	idx := containers.FindIn(st.Containers, req.ContainerID)
	if idx < 0 {
		return movements.Movement{}, fmt.Errorf("%w: %s", ErrNotInYard, req.ContainerID)
	}
	slot, ok := yard.At(st.Slots(), req.To)
	if !ok {
		return movements.Movement{}, fmt.Errorf("%w: %s", ErrUnknownSlot, yard.Position(req.To))
	}
	if !slot.Free() {
		return movements.Movement{}, fmt.Errorf("%w: %s by %s", ErrSlotOccupied, yard.Position(req.To), slot.ContainerID)
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = DefaultRelocationReason
	}
	c := st.Containers[idx]
	mv := movements.Movement{
		ID:          uuid.NewString(),
		ContainerID: c.ID,
		Type:        movements.KindRelocation,
		Timestamp:   now,
		Details: movements.RelocationDetails(movements.Relocation{
			Reason: reason,
			From:   yard.Position(c.Location),
			To:     yard.Position(req.To),
		}),
	}

	c.Location = req.To
	next := make([]containers.Container, len(st.Containers))
	copy(next, st.Containers)
	next[idx] = c
	st.Containers = next
	st.Movements = movements.Prepend(st.Movements, mv)
	return mv, nil
}
