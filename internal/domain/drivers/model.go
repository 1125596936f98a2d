package drivers

type IDType string

const (
	IDNational IDType = "Nacional"
	IDForeign  IDType = "Extranjero"
)

// TransportInfo — данные перевозчика; одновременно мастер-запись водителя.
type TransportInfo struct {
	TruckPlate string `json:"truckPlate"`
	DriverName string `json:"driverName"`
	DriverID   string `json:"driverId"`
	DriverType IDType `json:"driverType"`
	Company    string `json:"company"`
}

func (t TransportInfo) Key() string { return Normalize(t.DriverID) }
