package fockspace

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fockspace/binary"
	"github.com/hupe1980/fockspace/partition"
)

var (
	// ErrInvalidNumSites is returned for a negative site count or one above MaxSites.
	ErrInvalidNumSites = partition.ErrInvalidNumSites

	// ErrInvalidWidth is returned for an encoding width outside [0, 64].
	ErrInvalidWidth = binary.ErrInvalidWidth
)

// MaxSites is the largest supported number of lattice sites.
const MaxSites = partition.MaxSites

// ErrConstruction indicates malformed input at a construction boundary.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrConstruction struct {
	NumSites int
	cause    error
}

func (e *ErrConstruction) Error() string {
	return fmt.Sprintf("cannot build basis for %d sites: %v", e.NumSites, e.cause)
}

func (e *ErrConstruction) Unwrap() error { return e.cause }

// ErrIndexOutOfRange indicates a flat state index that does not address a
// state of the sector.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("state index %d out of range for sector of size %d", e.Index, e.Size)
}

func translateError(numSites int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, partition.ErrInvalidNumSites) || errors.Is(err, binary.ErrInvalidWidth) {
		return &ErrConstruction{NumSites: numSites, cause: err}
	}
	return err
}
