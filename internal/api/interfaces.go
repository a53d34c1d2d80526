package api

import (
	"context"

	"github.com/nikmy/palettes/internal/palettes"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type paletteStore interface {
	FetchByKey(ctx context.Context, name string) (palettes.Palette, bool, error)
	InsertOne(ctx context.Context, p palettes.Palette) error
	UpsertOne(ctx context.Context, p palettes.Palette) error
	UpdateOne(ctx context.Context, p palettes.Palette) error
	DeleteOne(ctx context.Context, p palettes.Palette) error
}

type resetter interface {
	ResetAll(ctx context.Context) error
}
