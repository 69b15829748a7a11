package models

import "errors"

// Custom errors
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateKey    = errors.New("duplicate key violation")
	ErrInvalidInning   = errors.New("inning must be between 1 and 9")
	ErrUnknownCategory = errors.New("unknown parlay category")
	ErrUnknownTeam     = errors.New("unrecognized team name")
)
