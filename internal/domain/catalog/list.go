package catalog

import (
	"slices"
	"strings"
)

// Entry — общая часть записей справочников.
type Entry interface {
	EntryID() string
	EntryName() string
}

// Add добавляет запись в конец списка.
func Add[T Entry](list []T, item T) []T {
	return append(slices.Clone(list), item)
}

// Update заменяет запись с тем же id; false, если не найдена.
func Update[T Entry](list []T, item T) ([]T, bool) {
	i := slices.IndexFunc(list, func(e T) bool { return e.EntryID() == item.EntryID() })
	if i < 0 {
		return list, false
	}
	out := slices.Clone(list)
	out[i] = item
	return out, true
}

func Remove[T Entry](list []T, id string) ([]T, bool) {
	i := slices.IndexFunc(list, func(e T) bool { return e.EntryID() == id })
	if i < 0 {
		return list, false
	}
	return slices.Delete(slices.Clone(list), i, i+1), true
}

func Get[T Entry](list []T, id string) (T, bool) {
	for _, e := range list {
		if e.EntryID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Search — подстрока в названии без учёта регистра.
func Search[T Entry](list []T, q string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	var out []T
	for _, e := range list {
		if strings.Contains(strings.ToLower(e.EntryName()), q) {
			out = append(out, e)
		}
	}
	return out
}
