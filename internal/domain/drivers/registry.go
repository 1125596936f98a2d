package drivers

import "strings"

// Normalize — единый ключ сравнения водителей.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Upsert заменяет запись с тем же ключом на месте, иначе добавляет в начало.
func Upsert(list []TransportInfo, info TransportInfo) []TransportInfo {
	key := info.Key()
	out := make([]TransportInfo, len(list), len(list)+1)
	copy(out, list)
	for i := range out {
		if out[i].Key() == key {
			out[i] = info
			return out
		}
	}
	return append([]TransportInfo{info}, out...)
}

func Find(list []TransportInfo, id string) (TransportInfo, bool) {
	key := Normalize(id)
	if key == "" {
		return TransportInfo{}, false
	}
	for _, d := range list {
		if d.Key() == key {
			return d, true
		}
	}
	return TransportInfo{}, false
}

func Remove(list []TransportInfo, id string) ([]TransportInfo, bool) {
	key := Normalize(id)
	out := make([]TransportInfo, 0, len(list))
	found := false
	for _, d := range list {
		if d.Key() == key {
			found = true
			continue
		}
		out = append(out, d)
	}
	return out, found
}

// Search по имени, id, компании или номеру.
func Search(list []TransportInfo, q string) []TransportInfo {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	var out []TransportInfo
	for _, d := range list {
		if strings.Contains(strings.ToLower(d.DriverName), q) ||
			strings.Contains(strings.ToLower(d.DriverID), q) ||
			strings.Contains(strings.ToLower(d.Company), q) ||
			strings.Contains(strings.ToLower(d.TruckPlate), q) {
			out = append(out, d)
		}
	}
	return out
}
