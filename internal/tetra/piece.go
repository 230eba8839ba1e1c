package tetra

// Kind identifies one of the seven tetromino shapes. The numeric order
// matches the catalog below and the color palette derived from it.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

// Rotations is the number of rotation states per kind.
const Rotations = 4

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is a 4x4 occupancy grid for one rotation state of a piece.
// Zero means empty; nonzero is the piece's color value as stored in the well.
type Shape [4][4]uint8

// catalog holds the seven tetrominoes in each of their four rotations.
// Every rotation of a kind occupies the same cell multiset, only reoriented.
var catalog = [KindCount][Rotations]Shape{
	{ // I
		{{0, 0, 0, 0}, {4, 4, 4, 4}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 4, 0, 0}, {0, 4, 0, 0}, {0, 4, 0, 0}, {0, 4, 0, 0}},
		{{0, 0, 0, 0}, {4, 4, 4, 4}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 4, 0, 0}, {0, 4, 0, 0}, {0, 4, 0, 0}, {0, 4, 0, 0}},
	},
	{ // J
		{{7, 0, 0, 0}, {7, 7, 7, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 7, 7, 0}, {0, 7, 0, 0}, {0, 7, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {7, 7, 7, 0}, {0, 0, 7, 0}, {0, 0, 0, 0}},
		{{0, 7, 0, 0}, {0, 7, 0, 0}, {7, 7, 0, 0}, {0, 0, 0, 0}},
	},
	{ // L
		{{0, 0, 5, 0}, {5, 5, 5, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 5, 0, 0}, {0, 5, 0, 0}, {0, 5, 5, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {5, 5, 5, 0}, {5, 0, 0, 0}, {0, 0, 0, 0}},
		{{5, 5, 0, 0}, {0, 5, 0, 0}, {0, 5, 0, 0}, {0, 0, 0, 0}},
	},
	{ // O
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
	},
	{ // S
		{{0, 0, 0, 0}, {0, 2, 2, 0}, {2, 2, 0, 0}, {0, 0, 0, 0}},
		{{0, 2, 0, 0}, {0, 2, 2, 0}, {0, 0, 2, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 2, 2, 0}, {2, 2, 0, 0}, {0, 0, 0, 0}},
		{{0, 2, 0, 0}, {0, 2, 2, 0}, {0, 0, 2, 0}, {0, 0, 0, 0}},
	},
	{ // T
		{{0, 6, 0, 0}, {6, 6, 6, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 6, 0, 0}, {0, 6, 6, 0}, {0, 6, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {6, 6, 6, 0}, {0, 6, 0, 0}, {0, 0, 0, 0}},
		{{0, 6, 0, 0}, {6, 6, 0, 0}, {0, 6, 0, 0}, {0, 0, 0, 0}},
	},
	{ // Z
		{{0, 0, 0, 0}, {3, 3, 0, 0}, {0, 3, 3, 0}, {0, 0, 0, 0}},
		{{0, 0, 3, 0}, {0, 3, 3, 0}, {0, 3, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {3, 3, 0, 0}, {0, 3, 3, 0}, {0, 0, 0, 0}},
		{{0, 0, 3, 0}, {0, 3, 3, 0}, {0, 3, 0, 0}, {0, 0, 0, 0}},
	},
}

// ShapeOf returns the 4x4 grid for a kind in a rotation state.
// Rotation values are taken modulo Rotations.
func ShapeOf(kind Kind, rot int) Shape {
	return catalog[kind][((rot%Rotations)+Rotations)%Rotations]
}

// PieceCell is one occupied cell of a piece, relative to the top-left of its
// 4x4 bounding box.
type PieceCell struct {
	DX, DY int
	Color  uint8
}

// OccupiedCells returns the occupied cells of a kind in a rotation state.
func OccupiedCells(kind Kind, rot int) []PieceCell {
	shape := ShapeOf(kind, rot)
	cells := make([]PieceCell, 0, 4)
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			if shape[dy][dx] != 0 {
				cells = append(cells, PieceCell{DX: dx, DY: dy, Color: shape[dy][dx]})
			}
		}
	}
	return cells
}
