package gocube

import (
	"fmt"
	"strings"
)

// Face identifies one of the six fixed sides of the cube.
type Face int

const (
	Up Face = iota
	Down
	Front
	Back
	Right
	Left
)

// AllFaces lists the faces in canonical order.
var AllFaces = [6]Face{Up, Down, Front, Back, Right, Left}

var faceNames = [6]string{"up", "down", "front", "back", "right", "left"}

var faceLetters = [6]byte{'U', 'D', 'F', 'B', 'R', 'L'}

var faceNormals = [6]Coord{
	Up:    {Y: 1},
	Down:  {Y: -1},
	Front: {Z: 1},
	Back:  {Z: -1},
	Right: {X: 1},
	Left:  {X: -1},
}

var solvedColors = [6]Color{
	Up:    White,
	Down:  Yellow,
	Front: Green,
	Back:  Blue,
	Right: Red,
	Left:  Orange,
}

func (f Face) valid() bool {
	return f >= Up && f <= Left
}

// String returns the canonical lowercase name of the face.
func (f Face) String() string {
	if !f.valid() {
		return "?"
	}
	return faceNames[f]
}

// Letter returns the single-letter notation of the face (U, D, F, B, R, L).
func (f Face) Letter() string {
	if !f.valid() {
		return "?"
	}
	return string(faceLetters[f])
}

// Normal returns the unit normal of a valid face.
func (f Face) Normal() Coord {
	return faceNormals[f]
}

// Opposite returns the face across the cube.
func (f Face) Opposite() Face {
	return f ^ 1
}

// Rotate turns the face's normal about axis and resolves it back to a face.
func (f Face) Rotate(axis Axis, angle Angle) Face {
	rotated, err := FaceOf(faceNormals[f].Rotate(axis, angle))
	if err != nil {
		// Rotations permute unit normals, so this cannot happen for a valid face.
		panic(err)
	}
	return rotated
}

// SolvedColor returns the color the face shows on a solved cube.
func (f Face) SolvedColor() Color {
	return solvedColors[f]
}

// NormalOf returns the unit normal of face.
func NormalOf(f Face) (Coord, error) {
	if !f.valid() {
		return Coord{}, fmt.Errorf("%w: %d", ErrUnknownFace, int(f))
	}
	return faceNormals[f], nil
}

// FaceOf resolves a unit normal to its face.
func FaceOf(normal Coord) (Face, error) {
	for _, f := range AllFaces {
		if faceNormals[f] == normal {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownNormal, normal)
}

// ParseFace parses a face name in any casing ("front", "FRONT") or its
// notation letter ("F").
func ParseFace(s string) (Face, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range AllFaces {
		if s == faceNames[f] || s == strings.ToLower(f.Letter()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFace, s)
}

// Color is a sticker color. Its value is the single uppercase character
// used to report it.
type Color byte

const (
	White  Color = 'W' // Up face when solved
	Yellow Color = 'Y' // Down face when solved
	Green  Color = 'G' // Front face when solved
	Blue   Color = 'B' // Back face when solved
	Red    Color = 'R' // Right face when solved
	Orange Color = 'O' // Left face when solved
)

func (c Color) String() string {
	if _, err := c.HomeFace(); err != nil {
		return "?"
	}
	return string(c)
}

// HomeFace returns the face that shows c on a solved cube.
func (c Color) HomeFace() (Face, error) {
	for _, f := range AllFaces {
		if solvedColors[f] == c {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, byte(c))
}

// ParseColor parses a single color character, case-insensitively.
func ParseColor(s string) (Color, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	c := Color(s[0])
	if _, err := c.HomeFace(); err != nil {
		return 0, err
	}
	return c, nil
}
