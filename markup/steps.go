package markup

import (
	"github.com/prism-cli/prism/color"
	"github.com/samber/lo"
)

// Steps returns exactly steps colors moving linearly from start toward end.
// The per-channel delta uses truncating integer division; the first color is
// always start and, for two or more steps, the last is always end. A single
// step yields start alone.
func Steps(start, end color.RGB, steps int) []color.RGB {
	if steps <= 0 {
		return []color.RGB{}
	}

	if steps == 1 {
		return []color.RGB{start}
	}

	r := newChannel(start.R, end.R, steps)
	g := newChannel(start.G, end.G, steps)
	b := newChannel(start.B, end.B, steps)

	colors := make([]color.RGB, steps)
	for i := range colors {
		colors[i] = color.RGB{R: r.at(i), G: g.at(i), B: b.at(i)}
	}
	colors[steps-1] = end

	return colors
}

type channel struct {
	start     int
	delta     int
	direction int
}

func newChannel(start, end uint8, steps int) channel {
	s, e := int(start), int(end)

	direction := -1
	if s < e {
		direction = 1
	}

	magnitude := s - e
	if magnitude < 0 {
		magnitude = -magnitude
	}

	return channel{
		start:     s,
		delta:     magnitude / (steps - 1),
		direction: direction,
	}
}

func (c channel) at(i int) uint8 {
	return uint8(lo.Clamp(c.start+i*c.delta*c.direction, 0, 255))
}
