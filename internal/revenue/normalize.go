// Copyright 2026 The LodgeView Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package revenue

import "github.com/shopspring/decimal"

// Normalize converts a monetary total into the transport numeric type.
//
// The amount is rounded half-to-even to exactly 2 fractional digits
// before the float conversion, so the output never carries more
// precision than the wire format; amounts already at final precision
// (integral totals included) pass through unchanged. No currency-unit
// conversion happens here.
func Normalize(total decimal.Decimal) float64 {
	return total.RoundBank(2).InexactFloat64()
}
