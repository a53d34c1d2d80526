// Package palettes holds the palette record and everything the service
// knows about colours.
package palettes

import (
	"strings"

	"github.com/nikmy/palettes/internal/simpledb"
	"github.com/nikmy/palettes/pkg/errors"
)

var ErrInvalid = errors.Error("invalid palette")

// Palette is four colours under a unique name. Colours are kept as
// "#rrggbb" strings once normalized.
type Palette struct {
	Name       string `json:"name" bson:"name" yaml:"name"`
	Primary    string `json:"primary" bson:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" bson:"secondary" yaml:"secondary"`
	Tertiary   string `json:"tertiary" bson:"tertiary" yaml:"tertiary"`
	Quaternary string `json:"quaternary" bson:"quaternary" yaml:"quaternary"`
}

const (
	FieldName       = "name"
	FieldPrimary    = "primary"
	FieldSecondary  = "secondary"
	FieldTertiary   = "tertiary"
	FieldQuaternary = "quaternary"
)

// Tag is the partition palettes are stored under.
const Tag = "palette"

// Kind keys palettes by name.
var Kind = simpledb.NewKind(Tag, func(p Palette) string { return p.Name })

func New(name, primary, secondary, tertiary, quaternary string) Palette {
	return Palette{
		Name:       name,
		Primary:    primary,
		Secondary:  secondary,
		Tertiary:   tertiary,
		Quaternary: quaternary,
	}
}

func (p Palette) Colors() [4]string {
	return [4]string{p.Primary, p.Secondary, p.Tertiary, p.Quaternary}
}

// Normalized validates p and returns a copy with a trimmed name and every
// colour in "#rrggbb" form.
func (p Palette) Normalized() (Palette, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Palette{}, errors.Wrap(ErrInvalid, "name is empty")
	}

	fields := [...]struct {
		name  string
		value *string
	}{
		{FieldPrimary, &p.Primary},
		{FieldSecondary, &p.Secondary},
		{FieldTertiary, &p.Tertiary},
		{FieldQuaternary, &p.Quaternary},
	}

	for _, f := range fields {
		hex, err := NormalizeHex(*f.value)
		if err != nil {
			return Palette{}, errors.Wrapf(errors.Join([]error{ErrInvalid, err}), "%s colour", f.name)
		}
		*f.value = hex
	}

	return p, nil
}

// Patch overlays the non-empty colours of other onto p. The name is kept.
func (p Palette) Patch(other Palette) Palette {
	if other.Primary != "" {
		p.Primary = other.Primary
	}
	if other.Secondary != "" {
		p.Secondary = other.Secondary
	}
	if other.Tertiary != "" {
		p.Tertiary = other.Tertiary
	}
	if other.Quaternary != "" {
		p.Quaternary = other.Quaternary
	}
	return p
}
