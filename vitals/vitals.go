// Package vitals models the two decaying tank resources and the dying mode
// they gate.
package vitals

// Rates holds the tunable constants of the model.
type Rates struct {
	OxygenDecay float32 // per second
	FoodDecay   float32 // per second
	Boost       float32 // added by one button press
	RecoverGate float32 // both levels must exceed this to leave dying mode
}

// DefaultRates returns the reference tuning.
func DefaultRates() Rates {
	return Rates{
		OxygenDecay: 0.02,
		FoodDecay:   0.04,
		Boost:       0.8,
		RecoverGate: 0.4,
	}
}

// Event reports a dying-mode transition.
type Event uint8

const (
	EventNone         Event = iota
	EventStartedDying       // a vital ran out
	EventRecovered          // both vitals climbed above the gate
)

func (e Event) String() string {
	switch e {
	case EventStartedDying:
		return "started_dying"
	case EventRecovered:
		return "recovered"
	default:
		return "none"
	}
}

// Vitals holds oxygen and food levels in [0,1] and the hysteresis-gated
// dying flag.
type Vitals struct {
	Oxygen float32
	Food   float32
	Dying  bool

	rates Rates
}

// New creates vitals at the given levels, clamped to [0,1].
func New(oxygen, food float32, rates Rates) *Vitals {
	return &Vitals{
		Oxygen: clamp01(oxygen),
		Food:   clamp01(food),
		rates:  rates,
	}
}

// Full creates vitals with both levels at 1.
func Full(rates Rates) *Vitals {
	return New(1, 1, rates)
}

// Advance decays both levels by dt seconds.
func (v *Vitals) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	v.Oxygen -= dt * v.rates.OxygenDecay
	v.Food -= dt * v.rates.FoodDecay
	if v.Oxygen < 0 {
		v.Oxygen = 0
	}
	if v.Food < 0 {
		v.Food = 0
	}
}

// FeedBoost adds one boost of food.
func (v *Vitals) FeedBoost() {
	v.Food = clamp01(v.Food + v.rates.Boost)
}

// OxygenBoost adds one boost of oxygen.
func (v *Vitals) OxygenBoost() {
	v.Oxygen = clamp01(v.Oxygen + v.rates.Boost)
}

// Transition updates the dying flag and reports what changed.
// Entering needs either level at zero; leaving needs both above the gate,
// so levels between zero and the gate never flip the mode.
func (v *Vitals) Transition() Event {
	if !v.Dying && (v.Food <= 0 || v.Oxygen <= 0) {
		v.Dying = true
		return EventStartedDying
	}
	if v.Dying && v.Food > v.rates.RecoverGate && v.Oxygen > v.rates.RecoverGate {
		v.Dying = false
		return EventRecovered
	}
	return EventNone
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
