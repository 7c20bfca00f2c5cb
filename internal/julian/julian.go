package julian

import "math"

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 UT).
const J2000 = 2451545.0

// Instant is a calendar date and time of day.
// Fields are taken as given; no range checks are applied.
type Instant struct {
	Year   int     `yaml:"year" json:"year"`
	Month  int     `yaml:"month" json:"month"`
	Day    int     `yaml:"day" json:"day"`
	Hour   int     `yaml:"hour" json:"hour"`
	Minute int     `yaml:"minute" json:"minute"`
	Second float64 `yaml:"second" json:"second"`
}

// JulianDate returns the fractional Julian Date of the instant.
func (in Instant) JulianDate() float64 {
	return Convert(in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second)
}

// Convert returns the fractional Julian Date for the given calendar date
// and time of day. It is total: every input produces a number.
func Convert(year, month, day, hour, minute int, second float64) float64 {
	// January and February count as months 13 and 14 of the prior year.
	if month <= 2 {
		year--
		month += 12
	}

	a := floorDiv(year, 100)
	b := 2 - a + floorDiv(a, 4)

	days := int(math.Trunc(365.25*float64(year+4716))) +
		int(math.Trunc(30.6001*float64(month+1))) +
		day + b
	whole := float64(days) - 1524.5

	frac := (float64(hour) + float64(minute)/60.0 + second/3600.0) / 24.0

	return whole + frac
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(x, y int) int {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}
