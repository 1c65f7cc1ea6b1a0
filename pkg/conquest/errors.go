package conquest

import "errors"

// Command errors
var (
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrUnknownTerritory = errors.New("unknown territory")
	ErrUnknownDesign    = errors.New("unknown design")
	ErrUnknownArmy      = errors.New("unknown army")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrNotOwner         = errors.New("not owned by player")
	ErrDesignInUse      = errors.New("design is still used by units")
	ErrInvalidDesign    = errors.New("invalid design")
	ErrNotAdjacent      = errors.New("destination is not a neighbor")
	ErrWrongLocation    = errors.New("unit and army are in different territories")
	ErrNoCargoSpace     = errors.New("no cargo space")
	ErrGameStarted      = errors.New("game already started")
)
