package preloads

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrBadAttachment = errors.New("preloads: malformed attachment")

// MinNoteLen — с какой длины номер ноты ищется в преднагрузках.
const MinNoteLen = 4

func normNote(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// Match ищет преднагрузку по точному совпадению номера ноты.
func Match(list []Preload, note string) (Preload, bool) {
	n := normNote(note)
	if len(n) < MinNoteLen {
		return Preload{}, false
	}
	for _, p := range list {
		if normNote(p.ReceptionNote) == n {
			return p, true
		}
	}
	return Preload{}, false
}

// Prepend — новые записи показываются первыми.
func Prepend(list []Preload, p Preload) []Preload {
	return append([]Preload{p}, list...)
}

func Remove(list []Preload, id string) ([]Preload, bool) {
	out := make([]Preload, 0, len(list))
	found := false
	for _, p := range list {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}

func Search(list []Preload, q string) []Preload {
	q = strings.ToUpper(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	var out []Preload
	for _, p := range list {
		if strings.Contains(strings.ToUpper(p.ReceptionNote), q) ||
			strings.Contains(strings.ToUpper(p.BL), q) ||
			strings.Contains(strings.ToUpper(p.Client), q) ||
			strings.Contains(strings.ToUpper(p.ContainerID), q) {
			out = append(out, p)
		}
	}
	return out
}

// Attach встраивает файл как data URL.
func Attach(p Preload, name, mime string, data []byte) Preload {
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	p.FileName = name
	p.FileType = mime
	p.FileData = fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	return p
}

// Attachment декодирует встроенный файл.
func Attachment(p Preload) (name, mime string, data []byte, err error) {
	if !p.HasAttachment() {
		return "", "", nil, ErrBadAttachment
	}
	head, body, ok := strings.Cut(p.FileData, ",")
	if !ok || !strings.HasPrefix(head, "data:") || !strings.HasSuffix(head, ";base64") {
		return "", "", nil, ErrBadAttachment
	}
	data, err = base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %v", ErrBadAttachment, err)
	}
	mime = p.FileType
	if mime == "" {
		mime = strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")
	}
	return p.FileName, mime, data, nil
}
