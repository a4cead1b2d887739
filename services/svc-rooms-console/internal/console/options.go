package console

import (
	"fmt"
	"slices"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/config"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
)

type PagingMode string

const (
	// PagingModeServer renders the page exactly as the backend returned it.
	PagingModeServer PagingMode = config.PagingModeServer
	// PagingModeLegacy slices the returned list again by page and size and
	// counts only what was returned.
	PagingModeLegacy PagingMode = config.PagingModeLegacy

	skeletonRows = 4
)

type Options struct {
	RowsPerPageOptions []uint
	DefaultRowsPerPage uint
	PagingMode         PagingMode
	AddRoomPath        string
	EditPathPrefix     string
}

func DefaultOptions() Options {
	return Options{
		RowsPerPageOptions: slices.Clone(model.DefaultRowsPerPageOptions),
		DefaultRowsPerPage: model.DefaultRowsPerPageOptions[0],
		PagingMode:         PagingModeServer,
		AddRoomPath:        "/dashboard/roomsdata",
		EditPathPrefix:     "/dashboard/roomsedit",
	}
}

func OptionsFromConfig(cfg config.Console) Options {
	opts := Options{
		RowsPerPageOptions: slices.Clone(cfg.RowsPerPageOptions),
		DefaultRowsPerPage: cfg.DefaultRowsPerPage,
		PagingMode:         PagingMode(cfg.PagingMode),
		AddRoomPath:        cfg.AddRoomPath,
		EditPathPrefix:     cfg.EditPathPrefix,
	}

	defaults := DefaultOptions()

	if len(opts.RowsPerPageOptions) == 0 {
		opts.RowsPerPageOptions = defaults.RowsPerPageOptions
	}

	if !slices.Contains(opts.RowsPerPageOptions, opts.DefaultRowsPerPage) {
		opts.DefaultRowsPerPage = opts.RowsPerPageOptions[0]
	}

	if opts.PagingMode == "" {
		opts.PagingMode = defaults.PagingMode
	}

	if opts.AddRoomPath == "" {
		opts.AddRoomPath = defaults.AddRoomPath
	}

	if opts.EditPathPrefix == "" {
		opts.EditPathPrefix = defaults.EditPathPrefix
	}

	return opts
}

func (o Options) editPath(id model.RoomID) string {
	return fmt.Sprintf("%s/%s", o.EditPathPrefix, id)
}
