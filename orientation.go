package gocube

import (
	"fmt"
	"strings"
)

// Orientation assigns physical faces to the logical up and front roles.
// Algorithms are written against the default orientation; replaying them
// under another Orientation turns the faces that currently play those roles.
type Orientation struct {
	Up    Face
	Front Face
}

// DefaultOrientation is the frame algorithms are authored in.
var DefaultOrientation = Orientation{Up: Up, Front: Front}

// Validate checks that up and front are perpendicular faces.
func (o Orientation) Validate() error {
	if !o.Up.valid() || !o.Front.valid() {
		return fmt.Errorf("%w: %w", ErrInvalidOrientation, ErrUnknownFace)
	}
	if o.Up.Normal().Dot(o.Front.Normal()) != 0 {
		return fmt.Errorf("%w: up=%s front=%s are not perpendicular", ErrInvalidOrientation, o.Up, o.Front)
	}
	return nil
}

// right returns the physical face playing the logical right role. It is
// derived from up and front so the remap is always a proper rotation.
func (o Orientation) right() Face {
	f, err := FaceOf(o.Up.Normal().Cross(o.Front.Normal()))
	if err != nil {
		panic(fmt.Sprintf("gocube: orientation %s has no right face", o))
	}
	return f
}

// Physical returns the physical face that plays the logical role.
func (o Orientation) Physical(logical Face) Face {
	switch logical {
	case Up:
		return o.Up
	case Down:
		return o.Up.Opposite()
	case Front:
		return o.Front
	case Back:
		return o.Front.Opposite()
	case Right:
		return o.right()
	default:
		return o.right().Opposite()
	}
}

// Logical returns the role the physical face plays.
func (o Orientation) Logical(physical Face) Face {
	for _, f := range AllFaces {
		if o.Physical(f) == physical {
			return f
		}
	}
	return physical
}

func (o Orientation) String() string {
	return "up=" + o.Up.String() + ",front=" + o.Front.String()
}

// ParseOrientation parses "up=down,front=left". Either role may be omitted
// and keeps its default face.
func ParseOrientation(s string) (Orientation, error) {
	o := DefaultOrientation
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		role, value, ok := strings.Cut(part, "=")
		if !ok {
			return Orientation{}, fmt.Errorf("%w: %q", ErrInvalidOrientation, part)
		}
		face, err := ParseFace(value)
		if err != nil {
			return Orientation{}, fmt.Errorf("%w: %w", ErrInvalidOrientation, err)
		}
		switch strings.ToLower(strings.TrimSpace(role)) {
		case "up":
			o.Up = face
		case "front":
			o.Front = face
		default:
			return Orientation{}, fmt.Errorf("%w: unknown role %q", ErrInvalidOrientation, role)
		}
	}
	if err := o.Validate(); err != nil {
		return Orientation{}, err
	}
	return o, nil
}
