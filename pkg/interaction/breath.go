package interaction

// Breathing defaults: the model swells to HoverScale while hovered and
// settles back to RestScale, closing Blend of the gap every tick.
const (
	RestScale    = 1.00
	HoverScale   = 1.02
	DefaultBlend = 0.1
)

// Breath is the cosmetic hover scale animation
type Breath struct {
	Current float64
	Target  float64 // scale approached while hovered
	Blend   float64 // fraction of the remaining distance covered per tick
}

// NewBreath starts at rest
func NewBreath() *Breath {
	return &Breath{Current: RestScale, Target: HoverScale, Blend: DefaultBlend}
}

// Tick advances one render frame and returns the new scale
func (b *Breath) Tick(hovered bool) float64 {
	target := RestScale
	if hovered {
		target = b.Target
	}
	b.Current += (target - b.Current) * b.Blend
	return b.Current
}
