// Package draw is the retained drawing tree a chart is composed into. Sinks
// (SVG, terminal) walk a Document and serialize it; nothing in this package
// does I/O.
package draw

import "gonum.org/v1/gonum/spatial/r2"

// Point is a pixel coordinate, +y down.
type Point = r2.Vec

// Node is one element of the tree. The set of node types is closed.
type Node interface {
	isNode()
}

// Group collects child nodes. Every layer renders into exactly one Group.
type Group struct {
	ID        string
	Class     string
	Transform string // SVG transform list, e.g. "rotate(30.00,10.00,20.00)"
	ClipPath  string // id of a clip path defined by the document
	Children  []Node
}

// Circle is a filled or stroked circle.
type Circle struct {
	ID     string
	Class  string
	Center Point
	R      float64
}

// Ellipse is an axis-aligned ellipse; rotate it through its parent group.
type Ellipse struct {
	ID     string
	Class  string
	Center Point
	RX, RY float64
}

// Line is a straight segment. StrokeWidth 0 leaves the width to the theme.
type Line struct {
	Class       string
	From, To    Point
	StrokeWidth float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	ID     string
	Class  string
	Min    Point
	W, H   float64
	Fill   string
	Stroke string
}

// Path is an open polyline.
type Path struct {
	Class  string
	Points []Point
	Fill   string
}

// Text is a single-line label. At is the anchor point on the baseline unless
// Baseline says otherwise.
type Text struct {
	Class    string
	At       Point
	Anchor   string // "start", "middle" or "end"
	Baseline string // dominant-baseline, optional
	Content  string
}

func (*Group) isNode()   {}
func (*Circle) isNode()  {}
func (*Ellipse) isNode() {}
func (*Line) isNode()    {}
func (*Rect) isNode()    {}
func (*Path) isNode()    {}
func (*Text) isNode()    {}

// NewGroup returns an empty group with the given class.
func NewGroup(class string) *Group {
	return &Group{Class: class}
}

// Add appends children and returns g.
func (g *Group) Add(nodes ...Node) *Group {
	g.Children = append(g.Children, nodes...)
	return g
}

// ClipRect is the rectangle a document clips its chart layers to.
type ClipRect struct {
	ID   string
	X, Y float64
	W, H float64
}

// Document is a finished chart: the clipped layer groups drawn back to front
// inside one clip group, then the unclipped overlay groups.
type Document struct {
	Width, Height float64
	Class         string
	Clip          ClipRect
	Clipped       []*Group
	Overlay       []*Group
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if g, ok := n.(*Group); ok {
		for _, c := range g.Children {
			Walk(c, fn)
		}
	}
}

// Groups returns every top-level group of d, clipped first.
func (d *Document) Groups() []*Group {
	out := make([]*Group, 0, len(d.Clipped)+len(d.Overlay))
	out = append(out, d.Clipped...)
	return append(out, d.Overlay...)
}

// Layer returns the top-level group with the given class, or nil.
func (d *Document) Layer(class string) *Group {
	for _, g := range d.Groups() {
		if g.Class == class {
			return g
		}
	}
	return nil
}

// CountClass counts nodes below n whose class equals class.
func CountClass(n Node, class string) int {
	var count int
	Walk(n, func(n Node) bool {
		if ClassOf(n) == class {
			count++
		}
		return true
	})
	return count
}

// ClassOf returns a node's class attribute.
func ClassOf(n Node) string {
	switch v := n.(type) {
	case *Group:
		return v.Class
	case *Circle:
		return v.Class
	case *Ellipse:
		return v.Class
	case *Line:
		return v.Class
	case *Rect:
		return v.Class
	case *Path:
		return v.Class
	case *Text:
		return v.Class
	}
	return ""
}
