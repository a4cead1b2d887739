package model

import (
	"fmt"
	"strings"
)

// RoomID is the opaque identifier assigned by the rooms backend.
type RoomID string

func ParseRoomID(s string) (RoomID, error) {
	id := strings.TrimSpace(s)
	if id == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidRoomID)
	}

	if strings.ContainsAny(id, "/?#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidRoomID, s)
	}

	return RoomID(id), nil
}

func (id RoomID) String() string {
	return string(id)
}

func (id RoomID) IsZero() bool {
	return id == ""
}

type Room struct {
	ID         RoomID   `json:"_id"`
	RoomNumber string   `json:"roomNumber"`
	Images     []string `json:"images"`
	Price      float64  `json:"price"`
	Discount   float64  `json:"discount"`
	Capacity   int      `json:"capacity"`
}

// Thumbnail is the first image, or empty when the room has none.
func (r Room) Thumbnail() string {
	if len(r.Images) == 0 {
		return ""
	}

	return r.Images[0]
}
