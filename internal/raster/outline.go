package raster

import "math"

// SegmentOp identifies an outline segment type.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour.
	SegmentMoveTo SegmentOp = iota
	// SegmentLineTo adds a straight boundary.
	SegmentLineTo
	// SegmentQuadTo adds a quadratic Bézier boundary.
	SegmentQuadTo
	// SegmentCubeTo adds a cubic Bézier boundary.
	SegmentCubeTo
)

// argCount returns the number of coordinates the op consumes.
func (op SegmentOp) argCount() int {
	switch op {
	case SegmentQuadTo:
		return 4
	case SegmentCubeTo:
		return 6
	default:
		return 2
	}
}

// Segment is one outline segment. Args holds Op.argCount() coordinates as
// x, y pairs, the last pair being the segment's end point.
type Segment struct {
	Op   SegmentOp
	Args [6]float32
}

// Outline is a glyph outline in pixel coordinates with the origin on the
// baseline and Y growing downward. The zero value is an empty outline
// ready to use.
type Outline struct {
	segs []Segment
}

// MoveTo starts a new contour at (x, y).
func (o *Outline) MoveTo(x, y float32) {
	o.segs = append(o.segs, Segment{Op: SegmentMoveTo, Args: [6]float32{x, y}})
}

// LineTo adds a line from the current point to (x, y).
func (o *Outline) LineTo(x, y float32) {
	o.segs = append(o.segs, Segment{Op: SegmentLineTo, Args: [6]float32{x, y}})
}

// QuadTo adds a quadratic Bézier via control point (cx, cy) to (x, y).
func (o *Outline) QuadTo(cx, cy, x, y float32) {
	o.segs = append(o.segs, Segment{Op: SegmentQuadTo, Args: [6]float32{cx, cy, x, y}})
}

// CubeTo adds a cubic Bézier via control points (cx1, cy1) and (cx2, cy2)
// to (x, y).
func (o *Outline) CubeTo(cx1, cy1, cx2, cy2, x, y float32) {
	o.segs = append(o.segs, Segment{Op: SegmentCubeTo, Args: [6]float32{cx1, cy1, cx2, cy2, x, y}})
}

// Empty reports whether the outline has no boundary segments. An outline
// holding only MoveTo segments is empty.
func (o *Outline) Empty() bool {
	for _, s := range o.segs {
		if s.Op != SegmentMoveTo {
			return false
		}
	}
	return true
}

// Bounds returns the control-point bounding box. Bézier curves lie within
// the hull of their control points, so the box always contains the drawn
// shape.
func (o *Outline) Bounds() (minX, minY, maxX, maxY float32) {
	first := true
	for _, s := range o.segs {
		n := s.Op.argCount()
		for i := 0; i < n; i += 2 {
			x, y := s.Args[i], s.Args[i+1]
			if first {
				minX, maxX = x, x
				minY, maxY = y, y
				first = false
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY
}

// snapped returns a copy of the outline with every coordinate rounded to
// the nearest pixel boundary.
func (o *Outline) snapped() *Outline {
	out := &Outline{segs: make([]Segment, len(o.segs))}
	for i, s := range o.segs {
		for j := 0; j < s.Op.argCount(); j++ {
			s.Args[j] = float32(math.Round(float64(s.Args[j])))
		}
		out.segs[i] = s
	}
	return out
}
