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

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter is returned when a place, zero or significant
	// figure count violates its operation's constraint. It is checked
	// before any computation happens.
	ErrInvalidParameter = errors.New("invalid rounding parameter")

	// ErrOutOfRange is returned when an integer-typed result cannot be
	// represented in the input's type, e.g. rounding an int8 of 123 up
	// to two trailing zeros (200).
	ErrOutOfRange = errors.New("rounded value out of range for input type")
)

func invalidParamf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
