package player

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInUse marks a delete blocked by dependent rows (performances, awards).
var ErrInUse = errors.New("player is referenced by other records")

// Role represents the playing role categories used in squad records.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketKeeper Role = "Wicket-keeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// Player is a squad member registered under a team.
type Player struct {
	ID        int64
	Name      string
	TeamID    int64
	Role      Role
	CreatedAt time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}

	return nil
}
