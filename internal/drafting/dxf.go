// Package drafting provides the 2D drawing document model consumed by the
// templates and the compliance validators.
package drafting

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDXF serializes the document as an ASCII DXF (AC1015) stream: header
// variables, linetype and layer tables, and the entity section. Dimension
// entities are emitted with their defining geometry only; consuming CAD
// applications regenerate the rendered dimension block on load.
func WriteDXF(doc *Document, w io.Writer) error {
	dw := &dxfWriter{w: bufio.NewWriter(w)}

	dw.header(doc)
	dw.tables(doc)
	dw.entities(doc)
	dw.tag(0, "EOF")

	if dw.err != nil {
		return fmt.Errorf("failed to write DXF: %w", dw.err)
	}
	return dw.w.Flush()
}

// dxfWriter emits DXF tag/value pairs, capturing the first write error.
type dxfWriter struct {
	w   *bufio.Writer
	err error
}

func (dw *dxfWriter) tag(code int, value any) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, "%d\n%v\n", code, value)
}

func (dw *dxfWriter) point(xCode, yCode int, p Point) {
	dw.tag(xCode, p.X)
	dw.tag(yCode, p.Y)
}

func (dw *dxfWriter) header(doc *Document) {
	dw.tag(0, "SECTION")
	dw.tag(2, "HEADER")
	dw.tag(9, "$ACADVER")
	dw.tag(1, "AC1015")
	dw.tag(9, "$INSUNITS")
	dw.tag(70, 4) // millimetres
	if limits, ok := doc.Limits(); ok {
		dw.tag(9, "$LIMMIN")
		dw.point(10, 20, limits.Min)
		dw.tag(9, "$LIMMAX")
		dw.point(10, 20, limits.Max)
	}
	dw.tag(9, "$FINGERPRINTGUID")
	dw.tag(2, fmt.Sprintf("{%s}", doc.Fingerprint))
	dw.tag(0, "ENDSEC")
}

func (dw *dxfWriter) tables(doc *Document) {
	dw.tag(0, "SECTION")
	dw.tag(2, "TABLES")

	dw.tag(0, "TABLE")
	dw.tag(2, "LTYPE")
	for _, lt := range []struct {
		name, desc string
	}{
		{"CONTINUOUS", "Solid line"},
		{"DASHED", "Dashed line"},
	} {
		dw.tag(0, "LTYPE")
		dw.tag(2, lt.name)
		dw.tag(70, 0)
		dw.tag(3, lt.desc)
	}
	dw.tag(0, "ENDTAB")

	dw.tag(0, "TABLE")
	dw.tag(2, "LAYER")
	for _, l := range doc.Layers() {
		dw.tag(0, "LAYER")
		dw.tag(2, l.Name)
		dw.tag(70, 0)
		dw.tag(62, l.Color)
		dw.tag(6, l.Linetype)
	}
	dw.tag(0, "ENDTAB")

	dw.tag(0, "ENDSEC")
}

func (dw *dxfWriter) entities(doc *Document) {
	dw.tag(0, "SECTION")
	dw.tag(2, "ENTITIES")
	for _, e := range doc.Entities() {
		dw.entity(e)
	}
	dw.tag(0, "ENDSEC")
}

func (dw *dxfWriter) entity(e Entity) {
	dw.tag(0, e.DXFType())
	dw.tag(8, e.LayerName())

	switch ent := e.(type) {
	case *Polyline:
		dw.tag(90, len(ent.Points))
		if ent.Closed {
			dw.tag(70, 1)
		} else {
			dw.tag(70, 0)
		}
		for _, p := range ent.Points {
			dw.point(10, 20, p)
		}
	case *Line:
		dw.point(10, 20, ent.Start)
		dw.point(11, 21, ent.End)
	case *Circle:
		dw.point(10, 20, ent.Center)
		dw.tag(40, ent.Radius)
	case *Text:
		dw.point(10, 20, ent.Insert)
		dw.tag(40, ent.Height)
		dw.tag(1, ent.Value)
	case *MText:
		dw.point(10, 20, ent.Insert)
		dw.tag(40, ent.Height)
		dw.tag(1, ent.Value)
	case *LinearDimension:
		if ent.Style != "" {
			dw.tag(3, ent.Style)
		}
		dw.tag(70, 1) // rotated linear dimension
		dw.point(10, 20, ent.Base)
		dw.point(13, 23, ent.P1)
		dw.point(14, 24, ent.P2)
		dw.tag(50, ent.Angle)
	default:
		if dw.err == nil {
			dw.err = fmt.Errorf("unsupported entity type %q", e.DXFType())
		}
	}
}
