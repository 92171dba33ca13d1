package models

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidJSON     = errors.New("invalid json")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidGames    = errors.New("invalid number of games")
	ErrTooManyGames    = errors.New("too many games requested")
	ErrRunNotFinished  = errors.New("simulation run not finished")
)
