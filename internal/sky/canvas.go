package sky

// Canvas is the 2D drawing context a host provides to the scene.
// Coordinates are in viewport pixels with the origin at the top left.
type Canvas interface {
	// Clear resets the whole surface.
	Clear()

	// FillGradient paints the whole surface with a vertical gradient,
	// offset 0 at the top edge and 1 at the bottom edge.
	FillGradient(g Gradient)

	// FillRect blends a solid rectangle over the surface.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle blends a solid disc over the surface.
	FillCircle(cx, cy, r float64, c Color)

	// FillCircleShadow blends a disc with a soft shadow of the given blur
	// radius spreading out from its edge.
	FillCircleShadow(cx, cy, r float64, c, shadow Color, blur float64)

	// StrokeLine draws a round-capped line whose colour follows g from
	// (x0, y0) at offset 0 to (x1, y1) at offset 1.
	StrokeLine(x0, y0, x1, y1, width float64, g Gradient)
}
