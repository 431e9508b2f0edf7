// Package pluto evaluates the Pluto99 analytic series for the heliocentric
// ecliptic rectangular coordinates of Pluto, referenced to the J2000
// ecliptic frame. Positions are accurate to about 0.00005 AU against a
// numerical ephemeris inside the validity window (JDE 626150.5 to
// 2811150.5, roughly 3000 BCE to 3000 CE).
package pluto

import (
	"errors"

	"github.com/litescript/ls-pluto99/internal/astro"
)

// ErrNoTimeRef is returned when a nil time reference is supplied to New or
// SetEpoch.
var ErrNoTimeRef = errors.New("pluto: nil time reference")

// TimeRef is the capability an epoch must expose: an absolute Julian
// Ephemeris Day and the same instant as Julian centuries from J2000.
type TimeRef interface {
	JulianEphemerisDay() float64
	JulianCenturies() float64
}

// cached is a lazily computed scalar tied to the current epoch.
type cached struct {
	valid bool
	value float64
}

// engineCache holds every derived scalar for the current epoch. Replacing
// the whole struct with its zero value invalidates all of them at once.
type engineCache struct {
	norm  cached
	cents cached
	axis  [3]cached
}

// Engine computes Pluto's position for one mutable epoch, memoizing each
// derived value until the epoch changes. An Engine is owned by a single
// goroutine; it performs no internal locking. The coefficient tables are
// immutable and shared by all engines.
type Engine struct {
	epoch TimeRef
	eval  func(tbl *seriesTable, x, t float64) float64
	cache engineCache
}

// New returns an engine positioned at the given epoch.
func New(epoch TimeRef) (*Engine, error) {
	if epoch == nil {
		return nil, ErrNoTimeRef
	}
	return &Engine{epoch: epoch, eval: evalSeries}, nil
}

// Epoch returns the current time reference.
func (e *Engine) Epoch() TimeRef {
	return e.epoch
}

// SetEpoch adopts a new time reference, invalidating every memoized value
// before the reference becomes current. No read after SetEpoch returns can
// observe a value computed under the previous epoch.
func (e *Engine) SetEpoch(epoch TimeRef) error {
	if epoch == nil {
		return ErrNoTimeRef
	}
	e.cache = engineCache{}
	e.epoch = epoch
	return nil
}

// normalized returns the memoized normalized time parameter for the epoch.
func (e *Engine) normalized() float64 {
	if !e.cache.norm.valid {
		e.cache.norm = cached{true, Normalize(e.epoch.JulianEphemerisDay())}
	}
	return e.cache.norm.value
}

// centuries returns the memoized Julian centuries from J2000 for the epoch.
func (e *Engine) centuries() float64 {
	if !e.cache.cents.valid {
		e.cache.cents = cached{true, e.epoch.JulianCenturies()}
	}
	return e.cache.cents.value
}

func (e *Engine) axisValue(i int, tbl *seriesTable) float64 {
	if !e.cache.axis[i].valid {
		x := e.normalized()
		v := e.eval(tbl, x, e.centuries()) + tbl.offset + tbl.slope*x
		e.cache.axis[i] = cached{true, v}
	}
	return e.cache.axis[i].value
}

// X returns the heliocentric ecliptic x coordinate in AU.
func (e *Engine) X() float64 { return e.axisValue(0, &xTable) }

// Y returns the heliocentric ecliptic y coordinate in AU.
func (e *Engine) Y() float64 { return e.axisValue(1, &yTable) }

// Z returns the heliocentric ecliptic z coordinate in AU.
func (e *Engine) Z() float64 { return e.axisValue(2, &zTable) }

// RC returns the full position as an immutable snapshot. The vector does
// not track later epoch changes.
func (e *Engine) RC() astro.Vec3 {
	return astro.Vec3{X: e.X(), Y: e.Y(), Z: e.Z()}
}
