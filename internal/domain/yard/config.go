package yard

import (
	"fmt"
	"slices"
	"strings"
)

// Normalize накладывает загруженный снапшот поверх значений по умолчанию.
func Normalize(loaded, defaults Config) Config {
	out := defaults
	if len(loaded.Blocks) > 0 {
		out.Blocks = slices.Clone(loaded.Blocks)
	} else {
		out.Blocks = slices.Clone(defaults.Blocks)
	}
	if loaded.BaysCount > 0 {
		out.BaysCount = loaded.BaysCount
	}
	if loaded.RowsCount > 0 {
		out.RowsCount = loaded.RowsCount
	}
	if loaded.TiersCount > 0 {
		out.TiersCount = loaded.TiersCount
	}
	if loaded.LCLBlock != "" {
		out.LCLBlock = loaded.LCLBlock
	}
	if !out.HasBlock(out.LCLBlock) && len(out.Blocks) > 0 {
		out.LCLBlock = out.Blocks[len(out.Blocks)-1]
	}
	return out
}

// ValidBlockName: дефис разделяет части позиции A-01-1-1, в имени блока его быть не может.
func ValidBlockName(name string) bool {
	return name != "" && !strings.Contains(name, "-")
}

func AddBlock(c Config, name string) (Config, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return c, fmt.Errorf("%w: empty name", ErrUnknownBlock)
	}
	if !ValidBlockName(name) {
		return c, fmt.Errorf("%w: %s", ErrBadBlockName, name)
	}
	if c.HasBlock(name) {
		return c, fmt.Errorf("%w: %s", ErrDuplicateBlock, name)
	}
	c.Blocks = append(slices.Clone(c.Blocks), name)
	slices.Sort(c.Blocks)
	return c, nil
}

// RemoveBlock: последний блок не удаляется; при удалении блока LCL им становится последний оставшийся.
func RemoveBlock(c Config, name string) (Config, error) {
	if !c.HasBlock(name) {
		return c, fmt.Errorf("%w: %s", ErrUnknownBlock, name)
	}
	if len(c.Blocks) <= 1 {
		return c, ErrLastBlock
	}
	c.Blocks = slices.DeleteFunc(slices.Clone(c.Blocks), func(b string) bool { return b == name })
	if c.LCLBlock == name {
		c.LCLBlock = c.Blocks[len(c.Blocks)-1]
	}
	return c, nil
}

func SetLCLBlock(c Config, name string) (Config, error) {
	if !c.HasBlock(name) {
		return c, fmt.Errorf("%w: %s", ErrUnknownBlock, name)
	}
	c.LCLBlock = name
	return c, nil
}

func SetDimensions(c Config, bays, rows, tiers int) (Config, error) {
	if bays < 1 || rows < 1 || tiers < 1 {
		return c, ErrBadDimensions
	}
	c.BaysCount, c.RowsCount, c.TiersCount = bays, rows, tiers
	return c, nil
}

// Stranded возвращает позиции занятых слотов, которых нет в новой схеме.
func Stranded(next Config, occupied []Location) []Location {
	var out []Location
	for _, l := range occupied {
		if !next.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}
