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

package rule

import (
	"fmt"
	"strconv"
)

// Usage is the text printed on `help` or on an out-of-range argument
// count.
const Usage = `smoothlife
smoothlife help
smoothlife <preset> [W H ra rr b1 b2 d1 d2 alpha_m alpha_n dt discrete]   (use = to keep the preset's value)
smoothlife new W H ra rr b1 b2 d1 d2 alpha_m alpha_n dt discrete

presets: L, rafler_paper`

// ErrHelp is returned when the caller asked for help; it is not a
// failure and callers should print Usage and exit 0.
var ErrHelp = fmt.Errorf("smoothlife: help requested")

// ParseCLI builds a Ruleset from positional tokens:
// `<preset>|new|help [W H ra rr b1 b2 d1 d2 am an dt discrete]`.
// A literal "=" at a position means "keep the preset's value
// there"; `new` requires all thirteen values to be given explicitly.
//
// args does not include the program name (i.e. it is os.Args[1:]).
func ParseCLI(args []string) (Ruleset, error) {
	if len(args) == 0 {
		return SmoothLifeL(DefaultWidth, DefaultHeight), nil
	}

	if args[0] == "help" || len(args) > 13 {
		return Ruleset{}, ErrHelp
	}

	newRuleset := args[0] == "new"
	if newRuleset && len(args) < 13 {
		return Ruleset{}, fmt.Errorf("rule: \"new\" requires all 13 values")
	}

	width, height := DefaultWidth, DefaultHeight
	if newRuleset && (args[1] == "=" || args[2] == "=") {
		return Ruleset{}, fmt.Errorf("rule: must set a value for W and H on a new ruleset")
	}
	if len(args) >= 2 && args[1] != "=" {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return Ruleset{}, fmt.Errorf("rule: invalid width %q: %w", args[1], err)
		}
		width = v
	}
	if len(args) >= 3 && args[2] != "=" {
		v, err := strconv.Atoi(args[2])
		if err != nil {
			return Ruleset{}, fmt.Errorf("rule: invalid height %q: %w", args[2], err)
		}
		height = v
	}

	base := SmoothLifeL(width, height)
	if !newRuleset {
		base = FromName(args[0], width, height)
	}

	setters := []struct {
		name string
		set  func(Ruleset, float64) Ruleset
	}{
		{"ra", func(r Ruleset, v float64) Ruleset { r.ra = v; return r }},
		{"rr", func(r Ruleset, v float64) Ruleset { r.rr = v; return r }},
		{"b1", func(r Ruleset, v float64) Ruleset { r.b1 = v; return r }},
		{"b2", func(r Ruleset, v float64) Ruleset { r.b2 = v; return r }},
		{"d1", func(r Ruleset, v float64) Ruleset { r.d1 = v; return r }},
		{"d2", func(r Ruleset, v float64) Ruleset { r.d2 = v; return r }},
		{"alpha_m", func(r Ruleset, v float64) Ruleset { r.alphaM = v; return r }},
		{"alpha_n", func(r Ruleset, v float64) Ruleset { r.alphaN = v; return r }},
		{"dt", func(r Ruleset, v float64) Ruleset { r.dt = v; return r }},
	}

	for i, s := range setters {
		argIdx := 3 + i // ra starts at args[3]
		if argIdx >= len(args) {
			break
		}
		tok := args[argIdx]
		if tok == "=" {
			if newRuleset {
				return Ruleset{}, fmt.Errorf("rule: must set a value for %s on a new ruleset", s.name)
			}
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Ruleset{}, fmt.Errorf("rule: invalid %s %q: %w", s.name, tok, err)
		}
		base = s.set(base, v)
	}

	if len(args) >= 13 {
		tok := args[12]
		if tok == "=" {
			if newRuleset {
				return Ruleset{}, fmt.Errorf("rule: must set a value for discrete on a new ruleset")
			}
		} else {
			switch tok {
			case "0":
				base.discrete = false
			case "1":
				base.discrete = true
			default:
				return Ruleset{}, fmt.Errorf("rule: invalid discrete flag %q (want 0 or 1)", tok)
			}
		}
	}

	if err := validate(base); err != nil {
		return Ruleset{}, err
	}
	return base, nil
}

func validate(r Ruleset) error {
	_, err := New(Params{
		Width: r.width, Height: r.height,
		Ra: r.ra, Rr: r.rr,
		B1: r.b1, B2: r.b2,
		D1: r.d1, D2: r.d2,
		AlphaM: r.alphaM, AlphaN: r.alphaN,
		Dt:       r.dt,
		Discrete: r.discrete,
	})
	return err
}
