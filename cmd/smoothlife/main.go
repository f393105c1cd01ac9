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

// Command smoothlife runs a SmoothLife simulation on the console: it
// parses a ruleset from its command-line arguments, seeds an initial
// field, then alternates driving the step and draining finished
// generations into a running population report until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rumangerst/ae-smoothlife-sub000/internal/consumer"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/driver"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/rule"
	"github.com/rumangerst/ae-smoothlife-sub000/internal/seed"
)

const (
	queueDepth  = 8
	reportEvery = 20 * time.Millisecond
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cliArgs, err := parseInit(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	rules, err := rule.ParseCLI(cliArgs.ruleArgs)
	if err != nil {
		if errors.Is(err, rule.ErrHelp) {
			fmt.Println(rule.Usage)
			return 0
		}
		fmt.Fprintln(os.Stderr, "smoothlife:", err)
		return 1
	}

	d := driver.New(rules, queueDepth, 0)
	defer d.Close()

	rnd := rand.New(rand.NewPCG(cliArgs.prngSeed, cliArgs.prngSeed))
	switch cliArgs.seedMode {
	case "uniform":
		seed.Fill(d.Seed(), 1)
	case "splat":
		seed.Splat(d.Seed(), rules, rnd)
	case "propagate":
		seed.Propagate(d.Seed(), rnd)
	default:
		seed.Random(d.Seed(), rnd)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cons := consumer.New(d.Queue(), rules.Width(), rules.Height(), consumer.Stats(os.Stdout))

	ticker := time.NewTicker(reportEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cons.DrainAvailable()
			fmt.Printf("smoothlife: stopped after %d generations (%d skipped)\n", d.Generation(), d.Skipped())
			return 0
		case <-ticker.C:
			cons.DrainAvailable()
		default:
			d.Step()
		}
	}
}

type initArgs struct {
	ruleArgs []string
	seedMode string
	prngSeed uint64
}

func parseInit(args []string) (initArgs, error) {
	fs := flag.NewFlagSet("smoothlife", flag.ContinueOnError)
	seedMode := fs.String("seed", "random", "initial field: random, uniform, splat, propagate")
	prngSeed := fs.Uint64("prng-seed", 0xC0FFEE, "seed for the initializer's PRNG")
	if err := fs.Parse(args); err != nil {
		return initArgs{}, err
	}
	return initArgs{
		ruleArgs: fs.Args(),
		seedMode: *seedMode,
		prngSeed: *prngSeed,
	}, nil
}
