package internments

import "time"

type Status string

const (
	Scheduled Status = "Programado"
	InYard    Status = "En Patio"
	Released  Status = "Liberado"
)

type Priority string

const (
	High   Priority = "Alta"
	Medium Priority = "Media"
	Low    Priority = "Baja"
)

type Operation string

const (
	OpFCL     Operation = "FCL"
	OpLCL     Operation = "LCL"
	OpPrimary Operation = "Primaria"
)

// Internment — запланированный приход, не связанный со схемой площадки.
type Internment struct {
	ID            string    `json:"id"`
	ContainerID   string    `json:"containerId"`
	BL            string    `json:"bl"`
	Client        string    `json:"client"`
	Vessel        string    `json:"vessel"`
	ETA           time.Time `json:"eta"`
	Weight        float64   `json:"weight"`
	Commodity     string    `json:"commodity"`
	Status        Status    `json:"status"`
	Priority      Priority  `json:"priority"`
	OperationType Operation `json:"operationType,omitempty"`
}

// Operation: записи без типа считаются FCL.
func (i Internment) Operation() Operation {
	if i.OperationType == "" {
		return OpFCL
	}
	return i.OperationType
}
