package bearing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedConcCode is returned when a concatenated location code or one
// of its fields cannot be parsed or validated.
var ErrMalformedConcCode = errors.New("malformed conc code")

// ConcCode is a Public Land Survey System location: a section within a
// township and range measured from a principal baseline.
type ConcCode struct {
	Section     int
	Township    int
	TownshipDir byte // 'N' or 'S'
	Range       int
	RangeDir    byte // 'E' or 'W'
	Baseline    byte // 'S' (Salt Lake) or 'U' (Uintah)
}

// String renders the lettered form of the code, e.g. "0512S08WU".
func (c ConcCode) String() string {
	return fmt.Sprintf("%02d%02d%c%02d%c%c",
		c.Section, c.Township, c.TownshipDir, c.Range, c.RangeDir, c.Baseline)
}

// Label renders the human-readable township/range/section label,
// e.g. "T12S R8W S5 (Uintah)".
func (c ConcCode) Label() string {
	meridian := "Salt Lake"
	if c.Baseline == 'U' {
		meridian = "Uintah"
	}
	return fmt.Sprintf("T%d%c R%d%c S%d (%s)",
		c.Township, c.TownshipDir, c.Range, c.RangeDir, c.Section, meridian)
}

func (c ConcCode) validate() error {
	if c.Section < 1 || c.Section > 36 {
		return fmt.Errorf("%w: section %d out of range [1,36]", ErrMalformedConcCode, c.Section)
	}
	if c.Township < 1 || c.Township > 99 {
		return fmt.Errorf("%w: township %d out of range [1,99]", ErrMalformedConcCode, c.Township)
	}
	if c.Range < 1 || c.Range > 99 {
		return fmt.Errorf("%w: range %d out of range [1,99]", ErrMalformedConcCode, c.Range)
	}
	if c.TownshipDir != 'N' && c.TownshipDir != 'S' {
		return fmt.Errorf("%w: township direction %q", ErrMalformedConcCode, c.TownshipDir)
	}
	if c.RangeDir != 'E' && c.RangeDir != 'W' {
		return fmt.Errorf("%w: range direction %q", ErrMalformedConcCode, c.RangeDir)
	}
	if c.Baseline != 'S' && c.Baseline != 'U' {
		return fmt.Errorf("%w: baseline %q", ErrMalformedConcCode, c.Baseline)
	}
	return nil
}

// Format renders the nine-digit numeric code: two-digit section, two-digit
// township, township direction digit, two-digit range, range direction
// digit, baseline digit. N, E, and the Salt Lake baseline encode as 1;
// S, W, and the Uintah baseline as 2.
func (c ConcCode) Format() (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}
	td := byte('1')
	if c.TownshipDir == 'S' {
		td = '2'
	}
	rd := byte('1')
	if c.RangeDir == 'W' {
		rd = '2'
	}
	bl := byte('1')
	if c.Baseline == 'U' {
		bl = '2'
	}
	return fmt.Sprintf("%02d%02d%c%02d%c%c", c.Section, c.Township, td, c.Range, rd, bl), nil
}

// Parse decodes a nine-digit numeric conc code back into its fields.
func Parse(code string) (ConcCode, error) {
	if len(code) != 9 {
		return ConcCode{}, fmt.Errorf("%w: want 9 digits, got %d", ErrMalformedConcCode, len(code))
	}
	section, err := strconv.Atoi(code[0:2])
	if err != nil {
		return ConcCode{}, fmt.Errorf("%w: section %q", ErrMalformedConcCode, code[0:2])
	}
	township, err := strconv.Atoi(code[2:4])
	if err != nil {
		return ConcCode{}, fmt.Errorf("%w: township %q", ErrMalformedConcCode, code[2:4])
	}
	rng, err := strconv.Atoi(code[5:7])
	if err != nil {
		return ConcCode{}, fmt.Errorf("%w: range %q", ErrMalformedConcCode, code[5:7])
	}

	c := ConcCode{Section: section, Township: township, Range: rng}

	switch code[4] {
	case '1':
		c.TownshipDir = 'N'
	case '2':
		c.TownshipDir = 'S'
	default:
		return ConcCode{}, fmt.Errorf("%w: township direction digit %q", ErrMalformedConcCode, code[4])
	}
	switch code[7] {
	case '1':
		c.RangeDir = 'E'
	case '2':
		c.RangeDir = 'W'
	default:
		return ConcCode{}, fmt.Errorf("%w: range direction digit %q", ErrMalformedConcCode, code[7])
	}
	switch code[8] {
	case '1':
		c.Baseline = 'S'
	case '2':
		c.Baseline = 'U'
	default:
		return ConcCode{}, fmt.Errorf("%w: baseline digit %q", ErrMalformedConcCode, code[8])
	}

	if err := c.validate(); err != nil {
		return ConcCode{}, err
	}
	return c, nil
}

// ParseLabel decodes the human-readable label form produced by Label,
// e.g. "T12S R8W S5 (Uintah)".
func ParseLabel(label string) (ConcCode, error) {
	var c ConcCode
	var tdir, rdir rune
	var meridian string
	_, err := fmt.Sscanf(label, "T%d%c R%d%c S%d (%s",
		&c.Township, &tdir, &c.Range, &rdir, &c.Section, &meridian)
	if err != nil {
		return ConcCode{}, fmt.Errorf("%w: label %q", ErrMalformedConcCode, label)
	}
	c.TownshipDir = byte(tdir)
	c.RangeDir = byte(rdir)

	switch {
	case strings.HasPrefix(meridian, "Salt"):
		c.Baseline = 'S'
	case strings.HasPrefix(meridian, "Uintah"):
		c.Baseline = 'U'
	default:
		return ConcCode{}, fmt.Errorf("%w: meridian %q", ErrMalformedConcCode, meridian)
	}

	if err := c.validate(); err != nil {
		return ConcCode{}, err
	}
	return c, nil
}

// StepTownship moves a township designator one row north (+1) or south (-1).
// Crossing the baseline flips the direction letter instead of reaching
// township zero, which does not exist.
func StepTownship(step, base int, dir byte) (int, byte) {
	if step == 0 {
		return base, dir
	}
	switch dir {
	case 'N':
		base += step
	case 'S':
		base -= step
	}
	if base == 0 {
		if dir == 'N' {
			return 1, 'S'
		}
		return 1, 'N'
	}
	return base, dir
}

// StepRange moves a range designator one column east (+1) or west (-1),
// flipping the direction letter at the principal meridian the same way
// StepTownship does at the baseline.
func StepRange(step, base int, dir byte) (int, byte) {
	if step == 0 {
		return base, dir
	}
	switch dir {
	case 'W':
		base -= step
	case 'E':
		base += step
	}
	if base == 0 {
		if dir == 'E' {
			return 1, 'W'
		}
		return 1, 'E'
	}
	return base, dir
}
