package geom

// Direction tags the role an axis plays.
type Direction int

const (
	// X is the horizontal axis.
	X Direction = iota
	// Y is the vertical axis.
	Y
)

func (d Direction) String() string {
	if d == Y {
		return "y"
	}
	return "x"
}
