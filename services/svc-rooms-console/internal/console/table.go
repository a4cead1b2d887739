package console

import "github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"

type (
	Table struct {
		Loading      bool        `json:"loading"`
		Placeholders int         `json:"placeholders"`
		Empty        bool        `json:"empty"`
		Rows         []Row       `json:"rows"`
		Pagination   *Pagination `json:"pagination,omitempty"`
	}

	Row struct {
		ID         model.RoomID `json:"id"`
		RoomNumber string       `json:"roomNumber"`
		Thumbnail  string       `json:"thumbnail"`
		Price      float64      `json:"price"`
		Discount   float64      `json:"discount"`
		Capacity   int          `json:"capacity"`
		MenuOpen   bool         `json:"menuOpen"`
	}

	// Pagination describes the paging control. Count is exact only when
	// CountIsTotal is set.
	Pagination struct {
		Page         uint   `json:"page"`
		RowsPerPage  uint   `json:"rowsPerPage"`
		Options      []uint `json:"options"`
		Count        uint   `json:"count"`
		CountIsTotal bool   `json:"countIsTotal"`
		From         uint   `json:"from"`
		To           uint   `json:"to"`
		HasPrevious  bool   `json:"hasPrevious"`
		HasNext      bool   `json:"hasNext"`
	}
)

// BuildTable derives what the rooms table shows from a snapshot.
func BuildTable(s Snapshot) Table {
	if s.Loading {
		return Table{Loading: true, Placeholders: skeletonRows}
	}

	if len(s.Rooms) == 0 {
		table := Table{Empty: true}

		// Past the first page the pager stays, so there is a way back.
		if s.Page > 0 {
			table.Pagination = paginate(s, 0)
		}

		return table
	}

	visible := visibleRooms(s.Rooms, s.Page, s.RowsPerPage, s.Options.PagingMode)

	rows := make([]Row, 0, len(visible))
	for _, room := range visible {
		rows = append(rows, Row{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			Thumbnail:  room.Thumbnail(),
			Price:      room.Price,
			Discount:   room.Discount,
			Capacity:   room.Capacity,
			MenuOpen:   !s.OpenMenuFor.IsZero() && room.ID == s.OpenMenuFor,
		})
	}

	return Table{
		Rows:       rows,
		Pagination: paginate(s, uint(len(rows))),
	}
}

func paginate(s Snapshot, shown uint) *Pagination {
	p := &Pagination{
		Page:        s.Page,
		RowsPerPage: s.RowsPerPage,
		Options:     s.Options.RowsPerPageOptions,
		HasPrevious: s.Page > 0,
	}

	offset := s.Page * s.RowsPerPage

	switch {
	case s.Options.PagingMode == PagingModeLegacy:
		p.Count = uint(len(s.Rooms))
		p.CountIsTotal = true
		p.HasNext = offset+s.RowsPerPage < p.Count

	case s.TotalCount != nil:
		p.Count = *s.TotalCount
		p.CountIsTotal = true
		p.HasNext = offset+s.RowsPerPage < p.Count

	default:
		// No total from the backend: a full page suggests there may be more.
		p.Count = offset + shown
		p.HasNext = shown == s.RowsPerPage
	}

	if shown > 0 {
		p.From = offset + 1
		p.To = offset + shown
	}

	return p
}

// visibleRooms is the slice of rooms rendered as rows.
func visibleRooms(rooms []model.Room, page, size uint, mode PagingMode) []model.Room {
	if mode != PagingModeLegacy {
		return rooms
	}

	start := page * size
	if start >= uint(len(rooms)) {
		return nil
	}

	end := min(start+size, uint(len(rooms)))

	return rooms[start:end]
}

func (l *RoomsList) isRenderedLocked(id model.RoomID) bool {
	if l.loading {
		return false
	}

	for _, room := range visibleRooms(l.rooms, l.page, l.rowsPerPage, l.opts.PagingMode) {
		if room.ID == id {
			return true
		}
	}

	return false
}
