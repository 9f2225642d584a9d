package domain

import "math"

// Steering and throttle limits. The vehicle accepts steer in [-1, 1] and
// throttle in [0, 1], but keyboard driving caps both at 0.7 so a held key
// cannot saturate the actuators.
const (
	// MaxSteer bounds the steer cache and the exposed steer value.
	MaxSteer = 0.7

	// KeyThrottle is the fixed throttle applied while the accelerate
	// key is held.
	KeyThrottle = 0.7

	// MinDeflection is the smallest perceptible steering deflection,
	// applied on the first tick a steering key is pressed.
	MinDeflection = 0.05

	// steerRatePerMS is the steering ramp per millisecond of held key.
	steerRatePerMS = 3e-4

	// decayFactor scales the return-to-centre rate relative to the ramp.
	decayFactor = 1.4
)

// ControlVector is the full set of actuation values sent to the vehicle
// each tick. Fields are declared in alphabetical order so the JSON
// session format has stable, sorted keys.
type ControlVector struct {
	// Brake is 1.0 while the decelerate key is held, else 0.
	Brake float64 `json:"brake"`

	// Gear is the selected gear; negative means reverse.
	Gear int `json:"gear"`

	// HandBrake mirrors the hand-brake key state.
	HandBrake bool `json:"hand_brake"`

	// ManualGearShift is carried through for the vehicle but never set
	// by the keyboard path.
	ManualGearShift bool `json:"manual_gear_shift"`

	// Reverse is true while a negative gear is selected.
	Reverse bool `json:"reverse"`

	// Steer is the smoothed steering value in [-MaxSteer, MaxSteer],
	// rounded to one decimal place.
	Steer float64 `json:"steer"`

	// Throttle is KeyThrottle while accelerating, else 0.
	Throttle float64 `json:"throttle"`
}

// KeySet is a snapshot of which control keys are held at one tick.
type KeySet struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
	HandBrake  bool
	GearToggle bool
}

// ControlState derives a ControlVector from raw key state. It owns the
// steering accumulator that smooths discrete key presses into a
// continuously varying steer value.
type ControlState struct {
	steerCache float64
	vector     ControlVector
}

// NewControlState returns a control state with everything at rest.
func NewControlState() *ControlState {
	return &ControlState{}
}

// Update computes the next control vector from the keys held during a
// tick and the elapsed wall-clock milliseconds since the previous tick.
// It is a pure function of (previous state, keys, elapsed).
//
// The gear toggle is level-triggered: it fires on every tick the key is
// read as held, so a key held across ticks flips gear repeatedly. This
// matches the behaviour drivers expect from existing session logs; do
// not debounce it here.
func (c *ControlState) Update(keys KeySet, elapsedMS float64) ControlVector {
	if keys.GearToggle {
		if c.vector.Reverse {
			c.vector.Gear = 1
		} else {
			c.vector.Gear = -1
		}
		c.vector.Reverse = c.vector.Gear < 0
	}

	if keys.Accelerate {
		c.vector.Throttle = KeyThrottle
	} else {
		c.vector.Throttle = 0.0
	}

	increment := steerRatePerMS * elapsedMS
	switch {
	case keys.SteerLeft:
		switch {
		case c.steerCache > 0:
			// Direction reversal snaps through centre.
			c.steerCache = 0
		case c.steerCache == 0:
			c.steerCache = -MinDeflection
		default:
			c.steerCache -= increment
		}
	case keys.SteerRight:
		switch {
		case c.steerCache < 0:
			c.steerCache = 0
		case c.steerCache == 0:
			c.steerCache = MinDeflection
		default:
			c.steerCache += increment
		}
	default:
		// No steering key: decay toward centre without crossing it.
		if c.steerCache > 0 {
			c.steerCache = math.Max(0, c.steerCache-increment*decayFactor)
		} else {
			c.steerCache = math.Min(0, c.steerCache+increment*decayFactor)
		}
	}
	c.steerCache = math.Min(MaxSteer, math.Max(-MaxSteer, c.steerCache))

	c.vector.Steer = math.Round(c.steerCache*10) / 10
	if keys.Brake {
		c.vector.Brake = 1.0
	} else {
		c.vector.Brake = 0.0
	}
	c.vector.HandBrake = keys.HandBrake

	return c.vector
}

// Vector returns the most recently computed control vector.
func (c *ControlState) Vector() ControlVector {
	return c.vector
}

// SteerCache returns the raw steering accumulator, before rounding.
func (c *ControlState) SteerCache() float64 {
	return c.steerCache
}
