package drivers

import "strings"

// Problems возвращает список незаполненных полей. withCompany — для въезда компания обязательна.
func Problems(t TransportInfo, withCompany bool) []string {
	var out []string
	if len([]rune(strings.TrimSpace(t.TruckPlate))) != 7 {
		out = append(out, "truckPlate")
	}
	if len([]rune(strings.TrimSpace(t.DriverName))) < 3 {
		out = append(out, "driverName")
	}
	if !ValidID(t.DriverID, t.DriverType) {
		out = append(out, "driverId")
	}
	if withCompany && len([]rune(strings.TrimSpace(t.Company))) < 2 {
		out = append(out, "company")
	}
	return out
}

// ValidID: Nacional — ровно 10 символов (12345678-9), Extranjero — от 6.
func ValidID(id string, t IDType) bool {
	n := len([]rune(strings.TrimSpace(id)))
	if t == IDForeign {
		return n >= 6
	}
	return n == 10
}
