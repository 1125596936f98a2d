package yard

import "errors"

var (
	ErrDuplicateBlock = errors.New("yard: block already exists")
	ErrLastBlock      = errors.New("yard: cannot remove the last block")
	ErrUnknownBlock   = errors.New("yard: unknown block")
	ErrBadDimensions  = errors.New("yard: dimensions must be >= 1")
	ErrBadPosition    = errors.New("yard: malformed position")
	ErrBadBlockName   = errors.New("yard: block name must not contain '-'")
)

// Location — координата «барот»: блок, бэй, ряд, ярус.
type Location struct {
	Block string `json:"block"`
	Bay   string `json:"bay"`
	Row   int    `json:"row"`
	Tier  int    `json:"tier"`
}

func (l Location) IsZero() bool { return l == Location{} }

type Config struct {
	Blocks     []string `json:"blocks"`
	BaysCount  int      `json:"baysCount"`
	RowsCount  int      `json:"rowsCount"`
	TiersCount int      `json:"tiersCount"`
	LCLBlock   string   `json:"lclBlock,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Blocks:     []string{"A", "B", "C"},
		BaysCount:  6,
		RowsCount:  5,
		TiersCount: 5,
		LCLBlock:   "C",
	}
}

// Slot — производное значение, не хранится.
type Slot struct {
	Location
	ContainerID string `json:"containerId,omitempty"`
}

func (s Slot) Free() bool { return s.ContainerID == "" }

// Occupant — то, что построителю нужно знать о контейнере.
type Occupant struct {
	ID       string
	Location Location
	InYard   bool
}

type Load string

const (
	LoadFull Load = "FCL"
	LoadPart Load = "LCL"
)
