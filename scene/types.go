// Package scene holds a small game-like object graph used to exercise
// bindings in tests, examples and declaration files.
package scene

import (
	"errors"
	"time"

	"propbind/utils"
)

// Faction is a string enum with a validity check.
type Faction string

const (
	FactionRed  Faction = "red"
	FactionBlue Faction = "blue"
)

// IsValid reports whether f is a known faction.
func (f Faction) IsValid() bool {
	return f == FactionRed || f == FactionBlue
}

// Stats is the numeric state of a player.
type Stats struct {
	Score  int
	Health float64
	Shield *int
}

// Player is a typical binding source.
type Player struct {
	Name      string
	Level     int
	Faction   Faction
	Stats     *Stats
	SpawnedAt time.Time
	Respawn   time.Duration

	title string
}

// Title is a read-write property.
func (p *Player) Title() string { return p.title }

// SetTitle sets the title.
func (p *Player) SetTitle(title string) { p.title = title }

// Label is a piece of text on screen.
type Label struct {
	Text    string
	Visible bool
}

// Widget carries identity shared by every HUD element.
type Widget struct {
	ID string
}

// ErrAlphaRange is returned by SetAlpha for values outside [0, 1].
var ErrAlphaRange = errors.New("scene: alpha out of range")

// HUD is a typical binding target.
type HUD struct {
	*Widget

	Score  Label
	Health *Label
	Timer  Label

	alpha float64
	theme string
}

// Caption is a read-only property.
func (h *HUD) Caption() string { return "HUD " + h.Score.Text }

// GetAlpha returns the opacity.
func (h *HUD) GetAlpha() float64 { return h.alpha }

// SetAlpha sets the opacity.
func (h *HUD) SetAlpha(alpha float64) error {
	if !utils.IsInRange(0, alpha, 1) {
		return ErrAlphaRange
	}

	h.alpha = alpha

	return nil
}

// SetTheme is a write-only property.
func (h *HUD) SetTheme(theme string) { h.theme = theme }

// ThemeOr returns the theme or fallback when none was set.
func (h *HUD) ThemeOr(fallback string) string {
	if h.theme == "" {
		return fallback
	}

	return h.theme
}

// Reset is a plain method, not a property.
func (h *HUD) Reset(keepTheme bool) {
	h.Score, h.Timer = Label{}, Label{}
	if !keepTheme {
		h.theme = ""
	}
}

// NewHUD returns a HUD with every element allocated.
func NewHUD(id string) *HUD {
	return &HUD{Widget: &Widget{ID: id}, Health: &Label{}, alpha: 1}
}
