package gocube

// MoveOption configures how Cube.Move replays a sequence.
type MoveOption func(*moveConfig)

type moveConfig struct {
	orientation Orientation
}

func defaultMoveConfig() *moveConfig {
	return &moveConfig{
		orientation: DefaultOrientation,
	}
}

// WithOrientation replays the sequence with every token remapped to the
// physical faces that play its logical roles under o.
func WithOrientation(o Orientation) MoveOption {
	return func(c *moveConfig) {
		c.orientation = o
	}
}

// WithFront is shorthand for WithOrientation keeping UP on top.
func WithFront(front Face) MoveOption {
	return func(c *moveConfig) {
		c.orientation = Orientation{Up: Up, Front: front}
	}
}
