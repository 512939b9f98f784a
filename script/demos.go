package script

import (
	"embed"
	"fmt"

	"github.com/me21jarus/dsa/core"
)

//go:embed demos/*.yaml
var demoFS embed.FS

// Demo returns the demonstration script for v.
func Demo(v core.Variant) (*Script, error) {
	data, err := demoFS.ReadFile("demos/" + v.String() + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("Demo(%s): %w", v, core.ErrUnknownVariant)
	}

	return Parse(data)
}

// Demos returns every demonstration script in core.Variants order.
func Demos() ([]*Script, error) {
	out := make([]*Script, 0, len(core.Variants()))
	for _, v := range core.Variants() {
		s, err := Demo(v)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
