package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("resource not found")
	ErrLocked           = errors.New("submission locked")
	ErrEliminated       = errors.New("player eliminated")
	ErrTeamAlreadyUsed  = errors.New("team already used")
	ErrNoGameFound      = errors.New("no game found for team")
	ErrNoGamesScheduled = errors.New("no games scheduled")
	ErrStorageFailure   = errors.New("storage failure")
)

func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}
