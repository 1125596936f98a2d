package yard

import (
	"fmt"
	"strconv"
	"strings"
)

// Position форматирует координату как A-01-1-1.
func Position(l Location) string {
	return fmt.Sprintf("%s-%s-%d-%d", l.Block, l.Bay, l.Row, l.Tier)
}

func ParsePosition(s string) (Location, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "-")
	if len(parts) != 4 || parts[0] == "" {
		return Location{}, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	bay, err := strconv.Atoi(parts[1])
	if err != nil {
		return Location{}, fmt.Errorf("%w: bay %q", ErrBadPosition, parts[1])
	}
	row, err := strconv.Atoi(parts[2])
	if err != nil {
		return Location{}, fmt.Errorf("%w: row %q", ErrBadPosition, parts[2])
	}
	tier, err := strconv.Atoi(parts[3])
	if err != nil {
		return Location{}, fmt.Errorf("%w: tier %q", ErrBadPosition, parts[3])
	}
	return Location{Block: parts[0], Bay: fmt.Sprintf("%02d", bay), Row: row, Tier: tier}, nil
}
