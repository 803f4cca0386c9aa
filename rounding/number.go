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

// Float is the set of floating-point types the package operates on.
type Float interface {
	float32 | float64
}

// Integer is the set of integer types supported by the zeros and
// significant figure operations. The sets are exact rather than
// approximate (~int) because integer inputs are dispatched to exact
// arithmetic by concrete type.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// Real is any numeric type the package accepts.
type Real interface {
	Float | Integer
}

// Float64 exposes the rounding operations in method form. Every method
// forwards to the free function of the same name; both call styles are
// interchangeable.
type Float64 float64

func (f Float64) Round(places int) (float64, error) { return Round(float64(f), places) }

func (f Float64) Ceil(places int) (float64, error) { return Ceil(float64(f), places) }

func (f Float64) Floor(places int) (float64, error) { return Floor(float64(f), places) }

func (f Float64) RoundZeros(zeros int) (float64, error) { return RoundZeros(float64(f), zeros) }

func (f Float64) CeilZeros(zeros int) (float64, error) { return CeilZeros(float64(f), zeros) }

func (f Float64) FloorZeros(zeros int) (float64, error) { return FloorZeros(float64(f), zeros) }

func (f Float64) RoundSigFigs(figs int) (float64, error) { return RoundSigFigs(float64(f), figs) }

func (f Float64) CeilSigFigs(figs int) (float64, error) { return CeilSigFigs(float64(f), figs) }

func (f Float64) FloorSigFigs(figs int) (float64, error) { return FloorSigFigs(float64(f), figs) }
