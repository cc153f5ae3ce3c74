// Package model defines the shared entities described in the data model:
// rooms, users, drawing events, and per-room game state. These are plain
// data holders with no persistence tags — nothing here is ever written to
// disk, per the no-persistent-storage non-goal.
package model

import "time"

// Palette is the fixed 12-entry color set a User's color is drawn from
// uniformly at random at join time. Colors are drawn with replacement;
// collisions across users in the same room are permitted by design.
var Palette = [12]string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
	"#bcf60c", "#fabebe", "#008080", "#e6beff",
}

// User is a transient record bound 1:1 to an active transport connection.
type User struct {
	UserID   string
	Username string
	Color    string
	JoinedAt time.Time
}

// DrawingEventType distinguishes a pen stroke from an eraser stroke.
type DrawingEventType string

const (
	DrawingEventDraw  DrawingEventType = "draw"
	DrawingEventErase DrawingEventType = "erase"
)

// Point is a single sampled location along a stroke.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DrawingEvent is the envelope stored in a room's Drawing Log in arrival
// order and replayed verbatim to late joiners.
type DrawingEvent struct {
	Type      DrawingEventType `json:"type"`
	Points    []Point          `json:"points"`
	Color     string           `json:"color"`
	LineWidth float64          `json:"lineWidth"`
	UserID    string           `json:"userId"`
	Timestamp time.Time        `json:"timestamp"`
}

// Player is a Game's view of a room member: identity plus score state.
// hasGuessed is irrelevant for the current drawer.
type Player struct {
	ID         string
	Username   string
	Score      int
	HasGuessed bool
}

// Room is identified by a server-minted opaque RoomId, unique even across
// deletions.
type Room struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
