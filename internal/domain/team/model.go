package team

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNameTaken marks a create/update that collides with an existing team name.
var ErrNameTaken = errors.New("team name already exists")

// ErrInUse marks a delete blocked by dependent rows (players, match entries, results).
var ErrInUse = errors.New("team is referenced by other records")

// Team is a national or club side that players belong to.
type Team struct {
	ID        int64
	Name      string
	Country   string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Country) == "" {
		return fmt.Errorf("team country is required")
	}

	return nil
}
