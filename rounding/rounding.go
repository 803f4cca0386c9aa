/*
 * © 2026 commonmath authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rounding

import "math"

type mode int

const (
	nearest mode = iota
	ceiling
	flooring
)

// apply rounds an already scaled value to an integer. math.Round breaks
// ties away from zero, which is the tie rule for every nearest variant
// in this package. Ceiling and floor keep their direction for negative
// inputs, so ceiling(-1.5) is -1.
func (m mode) apply(x float64) float64 {
	switch m {
	case ceiling:
		return math.Ceil(x)
	case flooring:
		return math.Floor(x)
	default:
		return math.Round(x)
	}
}

// shift rounds x at the position places digits to the right of the
// decimal point. A negative count rounds to the left of the point; the
// scale factor is then kept as a divisor so it stays an exactly
// representable power of ten. Zero, NaN and infinities pass through
// unchanged.
func shift(x float64, places int, m mode) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if places >= 0 {
		p := math.Pow10(places)
		scaled := x * p
		if math.IsInf(scaled, 0) {
			// The requested precision is finer than the input can
			// resolve, so the input is already rounded.
			return x
		}
		return m.apply(scaled) / p
	}
	p := math.Pow10(-places)
	scaled := x / p
	if scaled == 0 {
		// x lies between zero and the first multiple of 10^-places.
		switch {
		case m == ceiling && x > 0:
			return p
		case m == flooring && x < 0:
			return -p
		}
		return 0
	}
	return m.apply(scaled) * p
}

// Round returns number rounded to the given count of decimal places,
// with ties rounding away from zero.
//
//	Round(123.456, 2) == 123.46
//	Round(123.456, 0) == 123.0
func Round[T Float](number T, places int) (T, error) {
	return toPlaces(number, places, nearest)
}

// Ceil returns number rounded up, toward positive infinity, to the
// given count of decimal places.
//
//	Ceil(123.454, 2) == 123.46
//	Ceil(-123.456, 1) == -123.4
func Ceil[T Float](number T, places int) (T, error) {
	return toPlaces(number, places, ceiling)
}

// Floor returns number rounded down, toward negative infinity, to the
// given count of decimal places.
//
//	Floor(123.456, 2) == 123.45
//	Floor(-123.426, 1) == -123.5
func Floor[T Float](number T, places int) (T, error) {
	return toPlaces(number, places, flooring)
}

func toPlaces[T Float](number T, places int, m mode) (T, error) {
	if places < 0 {
		return 0, invalidParamf("decimal places must not be negative, got %d", places)
	}
	return T(shift(float64(number), places, m)), nil
}
