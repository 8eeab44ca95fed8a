package sky

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []op
}

type op struct {
	kind   string
	x, y   float64
	r      float64
	fill   Color
	stroke Gradient
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }

func (r *recorder) FillGradient(g Gradient) {
	r.ops = append(r.ops, op{kind: "gradient", stroke: g})
}

func (r *recorder) FillRect(x, y, w, h float64, c Color) {
	r.ops = append(r.ops, op{kind: "rect", x: x, y: y, fill: c})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c Color) {
	r.ops = append(r.ops, op{kind: "circle", x: cx, y: cy, r: rad, fill: c})
}

func (r *recorder) FillCircleShadow(cx, cy, rad float64, c, shadow Color, blur float64) {
	r.ops = append(r.ops, op{kind: "shadow", x: cx, y: cy, r: rad, fill: c})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, g Gradient) {
	r.ops = append(r.ops, op{kind: "line", x: x1, y: y1, r: width, stroke: g})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.ops))
	for i, o := range r.ops {
		out[i] = o.kind
	}
	return out
}
