package preloads

import "time"

type Condition string

const (
	Direct   Condition = "Directo"
	Indirect Condition = "Indirecto"
)

// MassAgency — агентство для строк массовой загрузки.
const MassAgency = "AGENCIA MASIVA"

// Preload — предварительная документация к приходу контейнера.
type Preload struct {
	ID            string    `json:"id"`
	ReceptionNote string    `json:"receptionNote"`
	Client        string    `json:"client"`
	CustomsAgency string    `json:"customsAgency"`
	ShippingLine  string    `json:"shippingLine"`
	Vessel        string    `json:"vessel"`
	Voyage        string    `json:"voyage"`
	Weight        float64   `json:"weight"`
	BL            string    `json:"bl"`
	Condition     Condition `json:"condition"`
	PreloadDate   time.Time `json:"preloadDate"`
	ContainerID   string    `json:"containerId,omitempty"`
	FileName      string    `json:"fileName,omitempty"`
	FileData      string    `json:"fileData,omitempty"` // data URL
	FileType      string    `json:"fileType,omitempty"`
}

func (p Preload) HasAttachment() bool { return p.FileData != "" }
