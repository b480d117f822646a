// Package bearing converts between the quadrant bearing calls written on
// survey plats, compass azimuths, and the fixed-width concatenated location
// codes used in Utah well records.
package bearing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownQuadrant is returned when a quadrant code or label is not
	// one of the four recognized values.
	ErrUnknownQuadrant = errors.New("unknown quadrant")
	// ErrUnknownSide is returned when a plat side label is not recognized.
	ErrUnknownSide = errors.New("unknown plat side")
)

// Quadrant identifies which compass quadrant a bearing call points into.
// The numeric values are the codes used in the source records.
type Quadrant int

const (
	QuadSE Quadrant = 1
	QuadNE Quadrant = 2
	QuadSW Quadrant = 3
	QuadNW Quadrant = 4
)

func (q Quadrant) String() string {
	switch q {
	case QuadSE:
		return "SE"
	case QuadNE:
		return "NE"
	case QuadSW:
		return "SW"
	case QuadNW:
		return "NW"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// Valid reports whether q is one of the four recognized quadrants.
func (q Quadrant) Valid() bool { return q >= QuadSE && q <= QuadNW }

// ParseQuadrant maps a quadrant label to its code. Unrecognized labels are
// an error, never a silent passthrough.
func ParseQuadrant(label string) (Quadrant, error) {
	switch label {
	case "SE":
		return QuadSE, nil
	case "NE":
		return QuadNE, nil
	case "SW":
		return QuadSW, nil
	case "NW":
		return QuadNW, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQuadrant, label)
	}
}

// Side identifies which side of a section plat a bearing call belongs to.
type Side int

const (
	SideWest Side = iota
	SideNorth
	SideEast
	SideSouth
)

func (s Side) String() string {
	switch s {
	case SideWest:
		return "West"
	case SideNorth:
		return "North"
	case SideEast:
		return "East"
	case SideSouth:
		return "South"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is one of the four plat sides.
func (s Side) Valid() bool { return s >= SideWest && s <= SideSouth }

// Bearing is a quadrant bearing call in degrees, minutes, and seconds.
type Bearing struct {
	Degrees  int
	Minutes  int
	Seconds  float64
	Quadrant Quadrant
}

func (b Bearing) String() string {
	q := b.Quadrant.String()
	return fmt.Sprintf("%c%d°%d'%.2f\"%c", q[0], b.Degrees, b.Minutes, b.Seconds, q[1])
}

// Decimal returns the call's angle off the quadrant meridian in decimal
// degrees, rounded to seven places the way record labels carry it.
func (b Bearing) Decimal() float64 {
	dd := float64(b.Degrees) + float64(b.Minutes)/60 + b.Seconds/3600
	return math.Round(dd*1e7) / 1e7
}

// FromDecimal splits a decimal-degree angle into degrees, minutes, and
// seconds, with seconds rounded to two places.
func FromDecimal(dd float64, q Quadrant) Bearing {
	mnt, sec := math.Floor(dd*3600/60), math.Mod(dd*3600, 60)
	deg, mnt := math.Floor(mnt/60), math.Mod(mnt, 60)
	return Bearing{
		Degrees:  int(deg),
		Minutes:  int(mnt),
		Seconds:  math.Round(sec*100) / 100,
		Quadrant: q,
	}
}

// Azimuth converts the bearing call to a compass azimuth in [0, 360) using
// the standard quadrant fold: NE counts up from north, SE and SW fold
// through south, NW counts back from north.
func (b Bearing) Azimuth() (float64, error) {
	dd := b.Decimal()
	switch b.Quadrant {
	case QuadNE:
		return dd, nil
	case QuadSE:
		return 180 - dd, nil
	case QuadSW:
		return 180 + dd, nil
	case QuadNW:
		return 360 - dd, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownQuadrant, int(b.Quadrant))
	}
}

// FromCompass converts a compass azimuth back to a quadrant bearing call.
// The quadrant boundaries follow the record convention: an azimuth of
// exactly 180 reads as S0°E, exactly 270 as S90°W.
func FromCompass(azimuth float64) Bearing {
	var q Quadrant
	var val float64
	switch {
	case azimuth > 270 && azimuth <= 360:
		q, val = QuadNW, 360-azimuth
	case azimuth > 180 && azimuth <= 270:
		q, val = QuadSW, azimuth-180
	case azimuth > 90 && azimuth <= 180:
		q, val = QuadSE, 180-azimuth
	default:
		q, val = QuadNE, azimuth
	}
	return FromDecimal(val, q)
}

// cardinal reports whether the truncated angle sits on a cardinal value.
// Truncation, not rounding, matches how the record pipeline tested this.
func cardinal(dd float64) bool {
	switch int(dd) {
	case 0, 90, 180, 360:
		return true
	}
	return false
}

// SideAzimuth converts a bearing call on a given plat side to the walk
// azimuth used when replaying that side's calls. Each side reads its calls
// in its own frame, so the fold differs per side, and SE/NW calls fold
// opposite to NE/SW ones. Calls sitting on a cardinal are pinned to the
// side's nominal direction.
func SideAzimuth(side Side, b Bearing) (float64, error) {
	if !b.Quadrant.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownQuadrant, int(b.Quadrant))
	}
	dd := b.Decimal()
	seOrNW := b.Quadrant == QuadSE || b.Quadrant == QuadNW

	switch side {
	case SideWest:
		if !seOrNW && !cardinal(dd) {
			return 360 - dd, nil
		}
		return dd, nil
	case SideEast:
		if seOrNW {
			return 180 + dd, nil
		}
		if cardinal(dd) {
			return 180, nil
		}
		return 180 - dd, nil
	case SideNorth:
		if seOrNW {
			return (90 - dd) + 90, nil
		}
		if cardinal(dd) {
			return 90, nil
		}
		return 180 - dd, nil
	case SideSouth:
		if seOrNW {
			return (90 - dd) + 270, nil
		}
		if cardinal(dd) {
			return 270, nil
		}
		return 360 - dd, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownSide, int(side))
	}
}

// FromSideAzimuth folds a side walk azimuth back into a bearing call. Only
// SW and NW quadrants come out of this fold. The south side cannot always
// distinguish wrap-around azimuths, so values within 50 degrees of 0 or 360
// are routed by proximity before the general split applies.
func FromSideAzimuth(side Side, azimuth float64) (Bearing, error) {
	var dd float64
	var q Quadrant

	switch side {
	case SideWest:
		dd = math.Abs(azimuth - 270)
		q = QuadSW
		if azimuth >= 270 {
			q = QuadNW
		}
	case SideEast:
		dd = math.Abs(90 - azimuth)
		q = QuadSW
		if azimuth >= 90 {
			q = QuadNW
		}
	case SideNorth:
		if azimuth < 180 {
			dd = math.Abs(90 - azimuth)
			q = QuadNW
		} else {
			dd = 90 - math.Abs(180-azimuth)
			q = QuadSW
		}
	case SideSouth:
		near360 := math.Abs(360-azimuth) <= 50
		near0 := math.Abs(azimuth) <= 50
		switch {
		case near360 && !near0:
			dd = math.Abs(azimuth - 270)
			q = QuadNW
		case near0 && !near360:
			dd = math.Abs(90 - azimuth)
			q = QuadSW
		case azimuth < 90:
			dd = math.Abs(90 - azimuth)
			q = QuadSW
		default:
			dd = math.Abs(azimuth - 270)
			q = QuadNW
		}
	default:
		return Bearing{}, fmt.Errorf("%w: %d", ErrUnknownSide, int(side))
	}

	return FromDecimal(dd, q), nil
}

// ExactSideAzimuth is the exact right inverse of FromSideAzimuth: feeding
// its result back through FromSideAzimuth recovers the original call. It
// only accepts the SW and NW quadrants FromSideAzimuth can produce.
func ExactSideAzimuth(side Side, b Bearing) (float64, error) {
	dd := b.Decimal()
	nw := b.Quadrant == QuadNW
	if !nw && b.Quadrant != QuadSW {
		return 0, fmt.Errorf("%w: %s has no side-azimuth preimage", ErrUnknownQuadrant, b.Quadrant)
	}

	switch side {
	case SideWest:
		if nw {
			return 270 + dd, nil
		}
		return 270 - dd, nil
	case SideEast:
		if nw {
			return 90 + dd, nil
		}
		return 90 - dd, nil
	case SideNorth:
		if nw {
			return 90 + dd, nil
		}
		return 270 - dd, nil
	case SideSouth:
		if nw {
			return 270 + dd, nil
		}
		return 90 - dd, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownSide, int(side))
	}
}
