package optim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/coaster/internal/config"
)

var ErrUnknownKnob = errors.New("optim: unknown knob")

// ParseAxis reads "name=v1,v2,...".
func ParseAxis(s string) (Axis, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok || name == "" || list == "" {
		return Axis{}, fmt.Errorf("optim: axis %q: want name=v1,v2,...", s)
	}

	var ax Axis
	ax.Name = strings.TrimSpace(name)
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Axis{}, fmt.Errorf("optim: axis %q: %w", s, err)
		}
		ax.Values = append(ax.Values, v)
	}
	return ax, nil
}

// Apply sets one knob on cfg. Physics knobs are gravity, friction, slice and
// duration; "<segment>.<param>" sets a shape parameter, e.g. "0.slope".
func Apply(cfg *config.Config, name string, v float64) error {
	switch name {
	case "gravity":
		cfg.Physics.Gravity = v
		return nil
	case "friction":
		cfg.Physics.Friction = v
		return nil
	case "slice":
		cfg.Physics.TimeSlice = v
		return nil
	case "duration":
		cfg.Duration = v
		return nil
	}

	idx, param, ok := strings.Cut(name, ".")
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKnob, name)
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 || i >= len(cfg.Segments) {
		return fmt.Errorf("%w: %s has no segment %q", ErrUnknownKnob, name, idx)
	}
	seg := &cfg.Segments[i]
	if seg.Params == nil {
		seg.Params = map[string]float64{}
	}
	seg.Params[param] = v
	return nil
}
