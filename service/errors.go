package service

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Failure kinds returned by services. The transport layer maps them to status
// codes with errors.Is; none are fatal and none should be retried blindly.
var (
	ErrNotFound            = errors.New("not found")
	ErrNotOwner            = errors.New("caller's team does not own the resource")
	ErrNoTeam              = errors.New("caller has no team")
	ErrDuplicateProject    = errors.New("team already has a project for this hackathon")
	ErrOutOfWindow         = errors.New("outside the check-in window")
	ErrSelfCheckInDisabled = errors.New("self check-in is disabled for this item")
	ErrInsufficientAccess  = errors.New("access level too low for this item")
	ErrInvalid             = errors.New("invalid request")
)

// ErrAlreadyDecided is returned in strict admission mode when a second
// decision is applied to an already admitted or rejected user.
var ErrAlreadyDecided = fmt.Errorf("%w: admission already decided", ErrInvalid)

func translateNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
