package award

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInUse marks an award delete blocked by player-award rows.
var ErrInUse = errors.New("award is referenced by player awards")

// ErrNameTaken marks a unique-name violation on awards.
var ErrNameTaken = errors.New("award name already exists")

// MinYear is the earliest year a player award may be granted for.
const MinYear = 1900

// Category represents award classification buckets.
type Category string

const (
	CategoryPerformance Category = "Performance"
	CategorySeason      Category = "Season"
	CategoryLeadership  Category = "Leadership"
	CategoryConduct     Category = "Conduct"
)

var AllCategories = map[Category]struct{}{
	CategoryPerformance: {},
	CategorySeason:      {},
	CategoryLeadership:  {},
	CategoryConduct:     {},
}

// Award is a named honor that can be granted to players.
type Award struct {
	ID       int64
	Name     string
	Category Category
}

func (a Award) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("award name is required")
	}
	if _, ok := AllCategories[a.Category]; !ok {
		return fmt.Errorf("invalid award category: %s", a.Category)
	}

	return nil
}

// PlayerAward grants an award to a player for a given year.
type PlayerAward struct {
	ID       int64
	PlayerID int64
	AwardID  int64
	Year     int
}

func (pa PlayerAward) Validate() error {
	if pa.PlayerID <= 0 {
		return fmt.Errorf("player award player id is required")
	}
	if pa.AwardID <= 0 {
		return fmt.Errorf("player award award id is required")
	}
	if pa.Year < MinYear {
		return fmt.Errorf("player award year must be %d or later", MinYear)
	}

	return nil
}
