package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/internments"
	"github.com/Spok95/yard-terminal/internal/domain/preloads"
)

// AddPreload регистрирует предварительную документацию (новые сверху).
func AddPreload(st *State, p preloads.Preload, now time.Time) (preloads.Preload, error) {
	p.ReceptionNote = strings.ToUpper(strings.TrimSpace(p.ReceptionNote))
	if p.ReceptionNote == "" {
		return p, invalid([]string{"receptionNote"})
	}
	p.ID = newID(p.ID)
	if p.Condition == "" {
		p.Condition = preloads.Indirect
	}
	if p.PreloadDate.IsZero() {
		p.PreloadDate = now
	}
	if p.ContainerID != "" {
		owner, serial, digit := containers.SplitID(p.ContainerID)
		if digit == "" && len(owner+serial) == 10 {
			if d, ok := containers.CheckDigit(owner + serial); ok {
				digit = fmt.Sprint(d)
			}
		}
		if len(owner) == 4 && len(serial) == 6 && digit != "" {
			p.ContainerID = containers.FullLoadID(owner, serial, digit)
		} else {
			p.ContainerID = strings.ToUpper(strings.TrimSpace(p.ContainerID))
		}
	}
	st.Preloads = preloads.Prepend(st.Preloads, p)
	return p, nil
}

// ImportPreloads добавляет строки массовой загрузки.
func ImportPreloads(st *State, rows []preloads.Preload, now time.Time) ([]preloads.Preload, error) {
	var problems []string
	for i, r := range rows {
		if strings.TrimSpace(r.ReceptionNote) == "" {
			problems = append(problems, fmt.Sprintf("row %d: receptionNote", i+2))
		}
	}
	if err := invalid(problems); err != nil {
		return nil, err
	}
	out := make([]preloads.Preload, 0, len(rows))
	for _, r := range rows {
		r.CustomsAgency = preloads.MassAgency
		r.Condition = preloads.Indirect
		r.PreloadDate = now
		p, err := AddPreload(st, r, now)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}

func RemovePreload(st *State, id string) error {
	next, ok := preloads.Remove(st.Preloads, id)
	if !ok {
		return fmt.Errorf("%w: preload %s", ErrNotFound, id)
	}
	st.Preloads = next
	return nil
}

// AttachPreloadFile встраивает файл в преднагрузку.
func AttachPreloadFile(st *State, id, name, mime string, data []byte) (preloads.Preload, error) {
	for i, p := range st.Preloads {
		if p.ID != id {
			continue
		}
		p = preloads.Attach(p, name, mime, data)
		next := make([]preloads.Preload, len(st.Preloads))
		copy(next, st.Preloads)
		next[i] = p
		st.Preloads = next
		return p, nil
	}
	return preloads.Preload{}, fmt.Errorf("%w: preload %s", ErrNotFound, id)
}

func AddInternment(st *State, in internments.Internment) (internments.Internment, error) {
	var problems []string
	if strings.TrimSpace(in.ContainerID) == "" {
		problems = append(problems, "containerId")
	}
	if strings.TrimSpace(in.BL) == "" {
		problems = append(problems, "bl")
	}
	if err := invalid(problems); err != nil {
		return in, err
	}
	in = internments.Normalize(in)
	in.ID = newID(in.ID)
	st.Internments = internments.Prepend(st.Internments, in)
	return in, nil
}

func RemoveInternment(st *State, id string) error {
	next, ok := internments.Remove(st.Internments, id)
	if !ok {
		return fmt.Errorf("%w: internment %s", ErrNotFound, id)
	}
	st.Internments = next
	return nil
}
