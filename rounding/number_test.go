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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The method form must agree with the free functions on every input,
// because it forwards to them.
func TestFloat64MethodsMatchFunctions(t *testing.T) {
	for _, x := range sweep {
		f := Float64(x)

		pairs := []struct {
			name   string
			method func(int) (float64, error)
			fn     func(float64, int) (float64, error)
			n      int
		}{
			{name: "Round", method: f.Round, fn: Round[float64], n: 2},
			{name: "Ceil", method: f.Ceil, fn: Ceil[float64], n: 2},
			{name: "Floor", method: f.Floor, fn: Floor[float64], n: 2},
			{name: "RoundZeros", method: f.RoundZeros, fn: RoundZeros[float64], n: 1},
			{name: "CeilZeros", method: f.CeilZeros, fn: CeilZeros[float64], n: 1},
			{name: "FloorZeros", method: f.FloorZeros, fn: FloorZeros[float64], n: 1},
			{name: "RoundSigFigs", method: f.RoundSigFigs, fn: RoundSigFigs[float64], n: 2},
			{name: "CeilSigFigs", method: f.CeilSigFigs, fn: CeilSigFigs[float64], n: 2},
			{name: "FloorSigFigs", method: f.FloorSigFigs, fn: FloorSigFigs[float64], n: 2},
		}

		for _, p := range pairs {
			fromMethod, err := p.method(p.n)
			require.NoError(t, err)
			fromFn, err := p.fn(x, p.n)
			require.NoError(t, err)
			assert.Equal(t, fromFn, fromMethod, "%s(%v, %d)", p.name, x, p.n)
		}
	}
}

func TestFloat64MethodsPropagateErrors(t *testing.T) {
	f := Float64(1.23)

	_, err := f.Round(-1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = f.RoundSigFigs(0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
