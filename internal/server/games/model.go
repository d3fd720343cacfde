package games

import "time"

// Game is a catalog record owned by exactly one user. UserID is set at
// creation and never reassigned.
type Game struct {
	ID          string
	Title       string
	Description string
	Genre       string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
