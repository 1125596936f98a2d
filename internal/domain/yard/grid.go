package yard

import "fmt"

func BayLabel(i int) string { return fmt.Sprintf("%02d", 2*i+1) }

// BayLabels — нечётные номера 01, 03, 05 …
func BayLabels(n int) []string {
	out := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, BayLabel(i))
	}
	return out
}

// Derive строит полную сетку; слот получает первый контейнер In с точным совпадением.
func Derive(cfg Config, occupants []Occupant) []Slot {
	bays := BayLabels(cfg.BaysCount)
	slots := make([]Slot, 0, cfg.Capacity())
	for _, block := range cfg.Blocks {
		for _, bay := range bays {
			for row := 1; row <= cfg.RowsCount; row++ {
				for tier := 1; tier <= cfg.TiersCount; tier++ {
					loc := Location{Block: block, Bay: bay, Row: row, Tier: tier}
					slots = append(slots, Slot{Location: loc, ContainerID: occupantAt(occupants, loc)})
				}
			}
		}
	}
	return slots
}

func occupantAt(occupants []Occupant, loc Location) string {
	for _, o := range occupants {
		if o.InYard && o.Location == loc {
			return o.ID
		}
	}
	return ""
}

func (c Config) Capacity() int {
	if c.BaysCount <= 0 || c.RowsCount <= 0 || c.TiersCount <= 0 {
		return 0
	}
	return len(c.Blocks) * c.BaysCount * c.RowsCount * c.TiersCount
}

// Contains — существует ли такой слот в текущей схеме.
func (c Config) Contains(loc Location) bool {
	if !c.HasBlock(loc.Block) {
		return false
	}
	if loc.Row < 1 || loc.Row > c.RowsCount || loc.Tier < 1 || loc.Tier > c.TiersCount {
		return false
	}
	for _, b := range BayLabels(c.BaysCount) {
		if b == loc.Bay {
			return true
		}
	}
	return false
}

func (c Config) HasBlock(block string) bool {
	for _, b := range c.Blocks {
		if b == block {
			return true
		}
	}
	return false
}

// PartLoadBlock — блок LCL; если не задан, последний блок.
func (c Config) PartLoadBlock() string {
	if c.LCLBlock != "" {
		return c.LCLBlock
	}
	if len(c.Blocks) == 0 {
		return ""
	}
	return c.Blocks[len(c.Blocks)-1]
}

// AllowsBlock — доступен ли блок для данного типа груза.
func (c Config) AllowsBlock(load Load, block string) bool {
	lcl := c.PartLoadBlock()
	if load == LoadPart {
		return block == lcl
	}
	if len(c.Blocks) <= 1 {
		return true
	}
	return block != lcl
}

func Available(slots []Slot) []Slot {
	var out []Slot
	for _, s := range slots {
		if s.Free() {
			out = append(out, s)
		}
	}
	return out
}

// ForLoad фильтрует слоты по типу груза.
func ForLoad(cfg Config, slots []Slot, load Load) []Slot {
	var out []Slot
	for _, s := range slots {
		if cfg.AllowsBlock(load, s.Block) {
			out = append(out, s)
		}
	}
	return out
}

// FirstFree — первый свободный слот для типа груза.
func FirstFree(cfg Config, slots []Slot, load Load) (Slot, bool) {
	for _, s := range slots {
		if s.Free() && cfg.AllowsBlock(load, s.Block) {
			return s, true
		}
	}
	return Slot{}, false
}

// At возвращает слот по координате.
func At(slots []Slot, loc Location) (Slot, bool) {
	for _, s := range slots {
		if s.Location == loc {
			return s, true
		}
	}
	return Slot{}, false
}

func Occupied(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if !s.Free() {
			n++
		}
	}
	return n
}
