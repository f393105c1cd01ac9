// Copyright 2026 SmoothLife Authors
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

// Package transition implements SmoothLife's smooth threshold state
// function and the discrete/continuous update rules built on it.
//
// n is always the annulus filling and m is always the inner-disk
// filling; s(n,m) is only correct read this way.
package transition

import (
	"math"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/rule"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/vecops"
)

// Sigma1 is the logistic soft threshold centered at a with sharpness
// alpha: 1 / (1 + exp(-4(x-a)/alpha)).
func Sigma1(x, a, alpha float64) float64 {
	return 1.0 / (1.0 + math.Exp(-4*(x-a)/alpha))
}

// Sigma2 combines two Sigma1 thresholds into a soft band-pass between a
// and b, sharpened by alphaN.
func Sigma2(x, a, b, alphaN float64) float64 {
	return Sigma1(x, a, alphaN) * (1 - Sigma1(x, b, alphaN))
}

// SigmaM blends x and y according to whether m is below or above 0.5,
// sharpened by alphaM. This picks the "birth" vs "death" threshold band
// depending on whether the cell itself (its inner-disk filling m) is
// mostly dead or alive.
func SigmaM(x, y, m, alphaM float64) float64 {
	return x*(1-Sigma1(m, 0.5, alphaM)) + y*Sigma1(m, 0.5, alphaM)
}

// S is the continuous transition function, in [0,1]: the birth/death
// band selected by SigmaM from the annulus filling n, gated by the
// inner-disk filling m.
func S(n, m float64, r rule.Ruleset) float64 {
	birth := Sigma2(n, r.B1(), r.B2(), r.AlphaN())
	death := Sigma2(n, r.D1(), r.D2(), r.AlphaN())
	return SigmaM(birth, death, m, r.AlphaM())
}

// SPrime is S rescaled to a signed drive in [-1,1], used as the
// continuous-mode Euler derivative.
func SPrime(n, m float64, r rule.Ruleset) float64 {
	return 2*S(n, m, r) - 1
}

// Euler computes the forward-Euler update of a cell currently at value
// current, clamped to [0,1].
func Euler(current float32, n, m float64, r rule.Ruleset) float32 {
	next := float64(current) + r.Dt()*SPrime(n, m, r)
	return vecops.Clamp(float32(next), 0, 1)
}

// Discrete computes the discrete-mode replacement value for a cell: 1 if
// n falls in the birth band [b1,b2] and the cell is currently dead-ish
// (m<=0.5), or in the survival band [d1,d2] when the cell is alive-ish
// (m>0.5); 0 otherwise.
func Discrete(n, m float64, r rule.Ruleset) float32 {
	if m <= 0.5 {
		if n >= r.B1() && n <= r.B2() {
			return 1
		}
		return 0
	}
	if n >= r.D1() && n <= r.D2() {
		return 1
	}
	return 0
}

// Step computes the next value of a cell currently at value current,
// given the annulus filling n and inner-disk filling m, dispatching to
// Discrete or Euler according to the ruleset's mode.
func Step(current float32, n, m float64, r rule.Ruleset) float32 {
	if r.Discrete() {
		return Discrete(n, m, r)
	}
	return Euler(current, n, m, r)
}
