package containers

import "strings"

// Search ищет по id, клиенту и BL без учёта регистра.
func Search(list []Container, q string) []Container {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	var out []Container
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.ID), q) ||
			strings.Contains(strings.ToLower(c.Client), q) ||
			strings.Contains(strings.ToLower(c.BL), q) {
			out = append(out, c)
		}
	}
	return out
}

// QuickFind — быстрый поиск по карте: от 2 символов, только In, до limit результатов.
func QuickFind(list []Container, q string, limit int) []Container {
	q = strings.ToLower(strings.TrimSpace(q))
	if len(q) < 2 {
		return nil
	}
	var out []Container
	for _, c := range list {
		if !c.InYard() {
			continue
		}
		if strings.Contains(strings.ToLower(c.ID), q) || strings.Contains(strings.ToLower(c.Client), q) {
			out = append(out, c)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}
