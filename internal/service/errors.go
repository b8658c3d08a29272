package service

import "errors"

var (
	ErrInvalidCharacters = errors.New("invalid LLM IDs provided")
	ErrInvalidStat       = errors.New("invalid stat")
	ErrInvalidCount      = errors.New("count must be positive")
	ErrInvalidRounds     = errors.New("rounds out of range")
	ErrEmptyCatalog      = errors.New("catalog is empty")
)
