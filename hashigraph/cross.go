package hashigraph

// span is an edge's bounding row/column range, used only by Cross.
type span struct {
	rowMin, rowMax int
	colMin, colMax int
}

func spanOf(e Edge) span {
	rowMin, rowMax := e.A.Row, e.B.Row
	if rowMin > rowMax {
		rowMin, rowMax = rowMax, rowMin
	}
	colMin, colMax := e.A.Col, e.B.Col
	if colMin > colMax {
		colMin, colMax = colMax, colMin
	}
	return span{rowMin: rowMin, rowMax: rowMax, colMin: colMin, colMax: colMax}
}

func sharesEndpoint(e1, e2 Edge) bool {
	return e1.A == e2.A || e1.A == e2.B || e1.B == e2.A || e1.B == e2.B
}

// Cross reports whether e1 and e2 cross: they share no endpoint, one is
// horizontal and the other vertical, and the vertical edge's column lies
// strictly between the horizontal edge's column range while the horizontal
// edge's row lies strictly between the vertical edge's row range. The
// strict inequality is essential: edges meeting at a shared island endpoint
// are not crossings.
func Cross(e1, e2 Edge) bool {
	if sharesEndpoint(e1, e2) {
		return false
	}
	o1, o2 := e1.Orientation(), e2.Orientation()
	if o1 == o2 {
		return false
	}

	h, v := e1, e2
	if o1 == Vertical {
		h, v = e2, e1
	}

	hSpan, vSpan := spanOf(h), spanOf(v)
	row := hSpan.rowMin // the horizontal edge's row (rowMin == rowMax for it)
	col := vSpan.colMin // the vertical edge's column (colMin == colMax for it)

	return vSpan.rowMin < row && row < vSpan.rowMax &&
		hSpan.colMin < col && col < hSpan.colMax
}
