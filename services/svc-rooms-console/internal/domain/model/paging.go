package model

import (
	"fmt"
	"slices"
)

// MaxPage bounds the zero based page index so offsets stay well inside uint.
const MaxPage uint = 1_000_000

var DefaultRowsPerPageOptions = []uint{5, 10, 15}

// PageRequest addresses one page of rooms. Page is zero based on the console
// side and one based on the wire.
type PageRequest struct {
	Page uint
	Size uint
}

func (p PageRequest) APIPage() uint {
	return p.Page + 1
}

func (p PageRequest) Validate(options []uint) error {
	if len(options) == 0 {
		options = DefaultRowsPerPageOptions
	}

	if !slices.Contains(options, p.Size) {
		return fmt.Errorf("%w: %d not in %v", ErrInvalidPageSize, p.Size, options)
	}

	return nil
}

type RoomPage struct {
	Rooms []Room
	// TotalCount is set only when the backend reports a total.
	TotalCount *uint
}

func (p *RoomPage) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Rooms)
}
