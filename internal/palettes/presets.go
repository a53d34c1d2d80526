package palettes

import (
	"context"

	"github.com/nikmy/palettes/internal/simpledb"
	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

// Presets come from colorhunt.co and are named after their ids there.
var (
	MediumGreen = New("118869", "#5ba19b", "#fceaea", "#f5d9d9", "#fbead1")
	BoldGreen   = New("111393", "#e7f5f2", "#f9c7cf", "#12776f", "#0f4137")
	Sand        = New("98666", "#f5e1da", "#f1f1f1", "#40a798", "#476269")
)

func Presets() []Palette {
	return []Palette{MediumGreen, BoldGreen, Sand}
}

// Seed stores the presets if there are no palettes at all. It reports
// whether anything was written.
func Seed(ctx context.Context, table *simpledb.Table[Palette, string], log logger.Logger) (bool, error) {
	existing, err := table.FetchAll(ctx)
	if err != nil {
		return false, errors.WrapFail(err, "check existing palettes")
	}

	if len(existing) > 0 {
		return false, nil
	}

	if err := table.UpsertMany(ctx, Presets()); err != nil {
		return false, errors.WrapFail(err, "seed presets")
	}

	log.Infof("seeded %d preset palettes", len(Presets()))
	return true, nil
}
