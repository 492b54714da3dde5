package collisions

import "github.com/solarlune/resolv"

const (
	// TagWall marks the boundary objects added by NewBoundedSpace.
	TagWall = "wall"
	// DefaultCellSize is the spatial hash cell size in pixels.
	DefaultCellSize = 16
	// DefaultWallThickness is the thickness of the boundary walls.
	DefaultWallThickness = 16
)

type NewSpaceOptions struct {
	// Width and Height are the space dimensions in pixels.
	Width  int
	Height int
	// CellSize is the spatial hash cell size. Zero means DefaultCellSize.
	CellSize int
	// WallThickness is the boundary wall thickness. Zero means DefaultWallThickness.
	WallThickness int
}

// NewBoundedSpace creates a collision space with walls along all four edges.
func NewBoundedSpace(opts NewSpaceOptions) *resolv.Space {
	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	wall := opts.WallThickness
	if wall <= 0 {
		wall = DefaultWallThickness
	}
	w := float64(opts.Width)
	h := float64(opts.Height)
	t := float64(wall)

	space := resolv.NewSpace(opts.Width, opts.Height, cell, cell)
	space.Add(
		resolv.NewObject(0, 0, w, t, TagWall),
		resolv.NewObject(0, h-t, w, t, TagWall),
		resolv.NewObject(0, t, t, h-2*t, TagWall),
		resolv.NewObject(w-t, t, t, h-2*t, TagWall),
	)
	return space
}

// AddRect adds a tagged rectangle to the space and returns its object.
func AddRect(space *resolv.Space, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	space.Add(obj)
	return obj
}
