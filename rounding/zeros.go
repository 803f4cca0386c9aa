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

import (
	"math"

	"github.com/pkg/errors"
)

// RoundZeros returns number rounded to the nearest multiple of
// 10^zeros, with ties rounding away from zero. Integer inputs are
// computed exactly and return ErrOutOfRange when the result does not
// fit the input type.
//
//	RoundZeros(123.456, 1) == 120.0
//	RoundZeros(1234, 2) == 1200
func RoundZeros[T Real](number T, zeros int) (T, error) {
	return toZeros(number, zeros, nearest)
}

// CeilZeros returns number rounded up, toward positive infinity, to a
// multiple of 10^zeros.
//
//	CeilZeros(123.456, 1) == 130.0
//	CeilZeros(1234, 2) == 1300
func CeilZeros[T Real](number T, zeros int) (T, error) {
	return toZeros(number, zeros, ceiling)
}

// FloorZeros returns number rounded down, toward negative infinity, to
// a multiple of 10^zeros.
//
//	FloorZeros(123.456, 1) == 120.0
//	FloorZeros(-12345, 3) == -13000
func FloorZeros[T Real](number T, zeros int) (T, error) {
	return toZeros(number, zeros, flooring)
}

// toZeros dispatches on the concrete type: floats reuse the shared
// shift primitive with a negated place count, integer kinds round with
// 64-bit quotient arithmetic and are checked against their range.
func toZeros[T Real](number T, zeros int, m mode) (T, error) {
	if zeros < 0 {
		return 0, invalidParamf("zero count must not be negative, got %d", zeros)
	}
	switch v := any(number).(type) {
	case float32:
		return T(shift(float64(v), -zeros, m)), nil
	case float64:
		return T(shift(v, -zeros, m)), nil
	case int:
		r, err := signedZeros(int64(v), zeros, m, math.MinInt, math.MaxInt)
		return T(r), err
	case int8:
		r, err := signedZeros(int64(v), zeros, m, math.MinInt8, math.MaxInt8)
		return T(r), err
	case int16:
		r, err := signedZeros(int64(v), zeros, m, math.MinInt16, math.MaxInt16)
		return T(r), err
	case int32:
		r, err := signedZeros(int64(v), zeros, m, math.MinInt32, math.MaxInt32)
		return T(r), err
	case int64:
		r, err := signedZeros(v, zeros, m, math.MinInt64, math.MaxInt64)
		return T(r), err
	case uint:
		r, err := unsignedZeros(uint64(v), zeros, m, math.MaxUint)
		return T(r), err
	case uint8:
		r, err := unsignedZeros(uint64(v), zeros, m, math.MaxUint8)
		return T(r), err
	case uint16:
		r, err := unsignedZeros(uint64(v), zeros, m, math.MaxUint16)
		return T(r), err
	case uint32:
		r, err := unsignedZeros(uint64(v), zeros, m, math.MaxUint32)
		return T(r), err
	case uint64:
		r, err := unsignedZeros(v, zeros, m, math.MaxUint64)
		return T(r), err
	}
	return number, nil
}

// 10^18 and 10^19 are the largest powers of ten representable in int64
// and uint64 respectively.
const (
	maxPow10Signed   = 18
	maxPow10Unsigned = 19
)

func pow10Signed(n int) (int64, bool) {
	if n > maxPow10Signed {
		return 0, false
	}
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p, true
}

func pow10Unsigned(n int) (uint64, bool) {
	if n > maxPow10Unsigned {
		return 0, false
	}
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p, true
}

func signedZeros(v int64, zeros int, m mode, min, max int64) (int64, error) {
	if v == 0 || zeros == 0 {
		return v, nil
	}
	p, ok := pow10Signed(zeros)
	if !ok {
		return signedOverflowedPower(v, zeros, m)
	}
	q, r := v/p, v%p
	half := p / 2
	switch m {
	case nearest:
		if r >= half {
			q++
		} else if -r >= half {
			q--
		}
	case ceiling:
		if r > 0 {
			q++
		}
	case flooring:
		if r < 0 {
			q--
		}
	}
	// min/p and max/p truncate toward zero, so the comparison can never
	// admit a product outside [min, max].
	if q > max/p || q < min/p {
		return 0, errors.Wrapf(ErrOutOfRange, "%d rounded to %d zeros", v, zeros)
	}
	return q * p, nil
}

// signedOverflowedPower handles zero counts whose power of ten exceeds
// int64. Zero is then the only representable multiple, so any rounding
// that moves away from zero is out of range.
func signedOverflowedPower(v int64, zeros int, m mode) (int64, error) {
	outOfRange := false
	switch m {
	case nearest:
		// Only 10^19 has a reachable halfway point; from 10^20 on it
		// exceeds the whole int64 range.
		const half = 5_000_000_000_000_000_000
		outOfRange = zeros == maxPow10Signed+1 && (v >= half || v <= -half)
	case ceiling:
		outOfRange = v > 0
	case flooring:
		outOfRange = v < 0
	}
	if outOfRange {
		return 0, errors.Wrapf(ErrOutOfRange, "%d rounded to %d zeros", v, zeros)
	}
	return 0, nil
}

func unsignedZeros(v uint64, zeros int, m mode, max uint64) (uint64, error) {
	if v == 0 || zeros == 0 {
		return v, nil
	}
	p, ok := pow10Unsigned(zeros)
	if !ok {
		// 10^20 and beyond exceed uint64 and so does the halfway point,
		// so only ceiling can leave zero.
		if m == ceiling {
			return 0, errors.Wrapf(ErrOutOfRange, "%d rounded to %d zeros", v, zeros)
		}
		return 0, nil
	}
	q, r := v/p, v%p
	switch m {
	case nearest:
		if r >= p/2 {
			q++
		}
	case ceiling:
		if r > 0 {
			q++
		}
	}
	if q > max/p {
		return 0, errors.Wrapf(ErrOutOfRange, "%d rounded to %d zeros", v, zeros)
	}
	return q * p, nil
}
