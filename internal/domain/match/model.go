package match

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInUse marks a match delete blocked by dependent rows (entries, performances, results).
var ErrInUse = errors.New("match is referenced by other records")

// ErrEntryInUse marks a match-team delete blocked by a recorded score.
var ErrEntryInUse = errors.New("match team entry is referenced by a score")

// ErrDuplicateEntry marks a team being entered into the same match twice.
var ErrDuplicateEntry = errors.New("team already entered for match")

// Type represents match format categories.
type Type string

const (
	TypeODI  Type = "ODI"
	TypeTest Type = "Test"
	TypeT20  Type = "T20"
	TypeT10  Type = "T10"
)

var AllTypes = map[Type]struct{}{
	TypeODI:  {},
	TypeTest: {},
	TypeT20:  {},
	TypeT10:  {},
}

// Match is a scheduled fixture between two teams at a venue.
type Match struct {
	ID        int64
	Venue     string
	MatchDate time.Time
	MatchType Type
	CreatedAt time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Venue) == "" {
		return fmt.Errorf("match venue is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if _, ok := AllTypes[m.MatchType]; !ok {
		return fmt.Errorf("invalid match type: %s", m.MatchType)
	}

	return nil
}

// TeamEntry links one participating team to a match. A scoreable match is
// expected to carry exactly two entries, but the data model does not enforce
// it; only result recording requires the pair to be complete.
type TeamEntry struct {
	ID      int64
	MatchID int64
	TeamID  int64
}
