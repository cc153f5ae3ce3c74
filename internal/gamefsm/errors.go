package gamefsm

import "errors"

// Sentinel errors the Session Router maps onto the §7 error taxonomy.
// Everything here is "Forbidden by state" or "Invalid input" — never
// fatal to the room or the process.
var (
	ErrInvalidSettings  = errors.New("gamefsm: invalid game settings")
	ErrNotDrawer        = errors.New("gamefsm: actor is not the current drawer")
	ErrWordNotOffered   = errors.New("gamefsm: word not among current options")
	ErrRoundAlreadyOn   = errors.New("gamefsm: round already active")
	ErrNoRoundActive    = errors.New("gamefsm: no round is active")
	ErrUnknownPlayer    = errors.New("gamefsm: player not in this game")
	ErrNotEnoughPlayers = errors.New("gamefsm: not enough players")
)
