package validate

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// BoundsFromShapefile derives the service envelope from a boundary
// shapefile instead of the built-in box.
func BoundsFromShapefile(path string) (*geom.Bounds, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "validate: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	box := reader.BBox()
	if box.MinX > box.MaxX || box.MinY > box.MaxY {
		return nil, eris.Errorf("validate: shapefile %s has an empty bounding box", path)
	}
	return geom.NewBounds(geom.XY).Set(box.MinX, box.MinY, box.MaxX, box.MaxY), nil
}
