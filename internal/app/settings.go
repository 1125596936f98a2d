package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/eir"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

func validateYard(cfg yard.Config) (yard.Config, error) {
	var problems []string
	blocks := make([]string, 0, len(cfg.Blocks))
	for _, b := range cfg.Blocks {
		b = strings.ToUpper(strings.TrimSpace(b))
		if b == "" {
			continue
		}
		if !yard.ValidBlockName(b) {
			return cfg, fmt.Errorf("%w: %s", yard.ErrBadBlockName, b)
		}
		if slices.Contains(blocks, b) {
			return cfg, fmt.Errorf("%w: %s", yard.ErrDuplicateBlock, b)
		}
		blocks = append(blocks, b)
	}
	if len(blocks) == 0 {
		return cfg, yard.ErrLastBlock
	}
	slices.Sort(blocks)
	cfg.Blocks = blocks
	if cfg.BaysCount < 1 {
		problems = append(problems, "baysCount")
	}
	if cfg.RowsCount < 1 {
		problems = append(problems, "rowsCount")
	}
	if cfg.TiersCount < 1 {
		problems = append(problems, "tiersCount")
	}
	if err := invalid(problems); err != nil {
		return cfg, err
	}
	cfg.LCLBlock = strings.ToUpper(strings.TrimSpace(cfg.LCLBlock))
	if !cfg.HasBlock(cfg.LCLBlock) {
		cfg.LCLBlock = blocks[len(blocks)-1]
	}
	return cfg, nil
}

// needsConfirm: при контейнерах в площадке изменение размеров или потеря занятых позиций требует подтверждения.
func needsConfirm(st *State, next yard.Config) bool {
	inYard := containers.InYard(st.Containers)
	if len(inYard) == 0 {
		return false
	}
	cur := st.Yard
	if next.BaysCount != cur.BaysCount || next.RowsCount != cur.RowsCount || next.TiersCount != cur.TiersCount {
		return true
	}
	occupied := make([]yard.Location, 0, len(inYard))
	for _, c := range inYard {
		occupied = append(occupied, c.Location)
	}
	return len(yard.Stranded(next, occupied)) > 0
}

// UpdateYard сохраняет схему площадки целиком.
func UpdateYard(st *State, cfg yard.Config, force bool) (yard.Config, error) {
	next, err := validateYard(cfg)
	if err != nil {
		return st.Yard, err
	}
	if needsConfirm(st, next) && !force {
		return st.Yard, ErrConfirmRequired
	}
	st.Yard = next
	return next, nil
}

func AddBlock(st *State, name string) (yard.Config, error) {
	next, err := yard.AddBlock(st.Yard, name)
	if err != nil {
		return st.Yard, err
	}
	return UpdateYard(st, next, false)
}

func RemoveBlock(st *State, name string, force bool) (yard.Config, error) {
	next, err := yard.RemoveBlock(st.Yard, strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return st.Yard, err
	}
	return UpdateYard(st, next, force)
}

func SetDimensions(st *State, bays, rows, tiers int, force bool) (yard.Config, error) {
	next, err := yard.SetDimensions(st.Yard, bays, rows, tiers)
	if err != nil {
		return st.Yard, err
	}
	return UpdateYard(st, next, force)
}

func SetLCLBlock(st *State, name string) (yard.Config, error) {
	next, err := yard.SetLCLBlock(st.Yard, strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return st.Yard, err
	}
	st.Yard = next
	return next, nil
}

func UpdateEIR(st *State, cfg eir.Config) eir.Config {
	cfg.EIRPrefix = strings.ToUpper(strings.TrimSpace(cfg.EIRPrefix))
	if cfg.EIRPrefix == "" {
		cfg.EIRPrefix = eir.DefaultConfig().EIRPrefix
	}
	st.EIR = cfg
	return cfg
}
