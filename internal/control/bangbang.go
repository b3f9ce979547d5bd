package control

// BangBang is a discrete oscillator: at or past -Bound the velocity becomes
// +Speed, at or past +Bound it becomes -Speed. It is not a spring; between the
// bounds velocity is left to the body.
type BangBang struct {
	Bound float64
	Speed float64
}

func NewBangBang(bound, speed float64) *BangBang {
	return &BangBang{Bound: bound, Speed: speed}
}

// Apply takes the position before and after this frame's integration and the
// current velocity, and returns the corrected position and velocity. A body
// that crossed a bound from inside the band is put back on the bound, so a
// body inside [-Bound, Bound] never leaves it. A body that starts outside is
// steered inward and never pushed further out.
func (b *BangBang) Apply(prev, x, v float64) (float64, float64) {
	switch {
	case x <= -b.Bound:
		if prev > -b.Bound {
			x = -b.Bound
		}
		return x, b.Speed
	case x >= b.Bound:
		if prev < b.Bound {
			x = b.Bound
		}
		return x, -b.Speed
	}
	return x, v
}

// InBand reports whether x lies within the oscillation bounds.
func (b *BangBang) InBand(x float64) bool {
	return x >= -b.Bound && x <= b.Bound
}
