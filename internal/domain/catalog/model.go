package catalog

type VesselType string

const (
	VesselContainer VesselType = "Portacontenedores"
	VesselBulk      VesselType = "Granelero"
	VesselTanker    VesselType = "Tanque"
	VesselRoRo      VesselType = "Ro-Ro"
)

type Unit string

const (
	UnitPieces  Unit = "Unidades"
	UnitKG      Unit = "KG"
	UnitMeters  Unit = "Metros"
	UnitPallets Unit = "Pallets"
)

type Vessel struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	IMO  string     `json:"imo"`
	Flag string     `json:"flag"`
	Type VesselType `json:"type"`
}

type ShippingLine struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SCAC         string `json:"scac"`
	ContactEmail string `json:"contactEmail"`
	Website      string `json:"website,omitempty"`
}

type CustomsAgency struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TaxID        string `json:"taxId"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address,omitempty"`
}

type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
	Email string `json:"email"`
}

type Material struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        Unit   `json:"unit"`
}

func (v Vessel) EntryID() string          { return v.ID }
func (v Vessel) EntryName() string        { return v.Name }
func (l ShippingLine) EntryID() string    { return l.ID }
func (l ShippingLine) EntryName() string  { return l.Name }
func (a CustomsAgency) EntryID() string   { return a.ID }
func (a CustomsAgency) EntryName() string { return a.Name }
func (c Client) EntryID() string          { return c.ID }
func (c Client) EntryName() string        { return c.Name }
func (m Material) EntryID() string        { return m.ID }
func (m Material) EntryName() string      { return m.Name }

// SetID — для обработчиков, где id приходит из пути запроса.
func (v *Vessel) SetID(id string)        { v.ID = id }
func (l *ShippingLine) SetID(id string)  { l.ID = id }
func (a *CustomsAgency) SetID(id string) { a.ID = id }
func (c *Client) SetID(id string)        { c.ID = id }
func (m *Material) SetID(id string)      { m.ID = id }
