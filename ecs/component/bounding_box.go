package component

import "github.com/jakecoffman/cp"

// BoundingBox makes an entity solid. It is centered on the transform
// position.
type BoundingBox struct {
	Size     cp.Vector
	HalfSize cp.Vector
}

func NewBoundingBox(size cp.Vector) BoundingBox {
	return BoundingBox{Size: size, HalfSize: size.Mult(0.5)}
}

var BoundingBoxComponent = NewComponent[BoundingBox]()
