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

// Package rounding provides rounding to a number of decimal places,
// trailing zeros or significant figures, each with nearest, ceiling and
// floor variants.
//
// Nearest rounding breaks ties away from zero. Ceiling always rounds
// toward positive infinity and floor toward negative infinity, for
// negative inputs too. Integer inputs to the zeros and significant
// figure operations are rounded with exact integer arithmetic.
//
// All functions are pure and safe for concurrent use.
package rounding
