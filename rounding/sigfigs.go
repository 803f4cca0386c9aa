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

// RoundSigFigs returns number rounded to figs significant figures,
// preserving its order of magnitude. Ties round away from zero. Zero
// stays zero for every figure count, and NaN and infinities pass
// through unchanged.
//
//	RoundSigFigs(123456.0, 4) == 123500.0
//	RoundSigFigs(0.0012345, 2) == 0.0012
//	RoundSigFigs(12345, 3) == 12300
func RoundSigFigs[T Real](number T, figs int) (T, error) {
	return toSigFigs(number, figs, nearest)
}

// CeilSigFigs returns number rounded up, toward positive infinity, to
// figs significant figures. For negative inputs that moves toward zero:
// CeilSigFigs(-1.23, 2) is -1.2.
func CeilSigFigs[T Real](number T, figs int) (T, error) {
	return toSigFigs(number, figs, ceiling)
}

// FloorSigFigs returns number rounded down, toward negative infinity,
// to figs significant figures.
func FloorSigFigs[T Real](number T, figs int) (T, error) {
	return toSigFigs(number, figs, flooring)
}

func toSigFigs[T Real](number T, figs int, m mode) (T, error) {
	if figs < 1 {
		return 0, invalidParamf("significant figures must be at least 1, got %d", figs)
	}
	switch v := any(number).(type) {
	case float32:
		return T(floatSigFigs(float64(v), figs, m)), nil
	case float64:
		return T(floatSigFigs(v, figs, m)), nil
	case int:
		r, err := signedSigFigs(int64(v), figs, m, math.MinInt, math.MaxInt)
		return T(r), err
	case int8:
		r, err := signedSigFigs(int64(v), figs, m, math.MinInt8, math.MaxInt8)
		return T(r), err
	case int16:
		r, err := signedSigFigs(int64(v), figs, m, math.MinInt16, math.MaxInt16)
		return T(r), err
	case int32:
		r, err := signedSigFigs(int64(v), figs, m, math.MinInt32, math.MaxInt32)
		return T(r), err
	case int64:
		r, err := signedSigFigs(v, figs, m, math.MinInt64, math.MaxInt64)
		return T(r), err
	case uint:
		r, err := unsignedSigFigs(uint64(v), figs, m, math.MaxUint)
		return T(r), err
	case uint8:
		r, err := unsignedSigFigs(uint64(v), figs, m, math.MaxUint8)
		return T(r), err
	case uint16:
		r, err := unsignedSigFigs(uint64(v), figs, m, math.MaxUint16)
		return T(r), err
	case uint32:
		r, err := unsignedSigFigs(uint64(v), figs, m, math.MaxUint32)
		return T(r), err
	case uint64:
		r, err := unsignedSigFigs(v, figs, m, math.MaxUint64)
		return T(r), err
	}
	return number, nil
}

// floatSigFigs rounds with a single shift derived from the order of
// magnitude. The magnitude is never recomputed after the shift, so
// inputs that cross a power of ten while rounding (9.96 at two figures
// becomes 10) come out right by construction.
func floatSigFigs(x float64, figs int, m mode) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	magnitude := int(math.Floor(math.Log10(math.Abs(x))))
	return shift(x, figs-1-magnitude, m)
}

func signedSigFigs(v int64, figs int, m mode, min, max int64) (int64, error) {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	digits := digitCount(u)
	if figs >= digits {
		return v, nil
	}
	return signedZeros(v, digits-figs, m, min, max)
}

func unsignedSigFigs(v uint64, figs int, m mode, max uint64) (uint64, error) {
	digits := digitCount(v)
	if figs >= digits {
		return v, nil
	}
	return unsignedZeros(v, digits-figs, m, max)
}

func digitCount(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
