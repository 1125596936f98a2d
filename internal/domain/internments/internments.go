package internments

import (
	"slices"
	"strings"
)

// minPrefix — префикс короче этого не считается совпадением при въезде.
const minPrefix = 4

// Normalize приводит новую запись к виду журнала: верхний регистр, статус Programado.
func Normalize(i Internment) Internment {
	i.ContainerID = strings.ToUpper(strings.TrimSpace(i.ContainerID))
	i.BL = strings.ToUpper(strings.TrimSpace(i.BL))
	i.Client = strings.ToUpper(strings.TrimSpace(i.Client))
	i.Vessel = strings.ToUpper(strings.TrimSpace(i.Vessel))
	i.Commodity = strings.ToUpper(strings.TrimSpace(i.Commodity))
	i.Status = Scheduled
	if i.Priority == "" {
		i.Priority = Medium
	}
	if i.OperationType == "" {
		i.OperationType = OpFCL
	}
	return i
}

func Prepend(list []Internment, i Internment) []Internment {
	return append([]Internment{i}, list...)
}

func Remove(list []Internment, id string) ([]Internment, bool) {
	i := slices.IndexFunc(list, func(x Internment) bool { return x.ID == id })
	if i < 0 {
		return list, false
	}
	return slices.Delete(slices.Clone(list), i, i+1), true
}

// AdvanceOnGateIn переводит первую подходящую запись в En Patio.
// Совпадение: точное либо id записи (длиннее 4 символов) — префикс нового id.
// Возвращает индекс изменённой записи или -1.
func AdvanceOnGateIn(list []Internment, containerID string) ([]Internment, int) {
	i := slices.IndexFunc(list, func(x Internment) bool {
		return x.ContainerID == containerID ||
			(len(x.ContainerID) > minPrefix && strings.HasPrefix(containerID, x.ContainerID))
	})
	return setStatus(list, i, InYard)
}

// AdvanceOnGateOut — только точное совпадение id.
func AdvanceOnGateOut(list []Internment, containerID string) ([]Internment, int) {
	i := slices.IndexFunc(list, func(x Internment) bool { return x.ContainerID == containerID })
	return setStatus(list, i, Released)
}

func setStatus(list []Internment, i int, s Status) ([]Internment, int) {
	if i < 0 {
		return list, -1
	}
	out := slices.Clone(list)
	out[i].Status = s
	return out, i
}

// Filter — по типу операции и подстроке в id, BL или клиенте.
func Filter(list []Internment, op Operation, q string) []Internment {
	q = strings.ToUpper(strings.TrimSpace(q))
	var out []Internment
	for _, x := range list {
		if op != "" && x.Operation() != op {
			continue
		}
		if q != "" && !strings.Contains(x.ContainerID, q) && !strings.Contains(x.BL, q) && !strings.Contains(x.Client, q) {
			continue
		}
		out = append(out, x)
	}
	return out
}
