// Copyright 2014 Google Inc.
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

package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/jonbelay/cs51/btdict"
	"github.com/jonbelay/cs51/keygen"
	"github.com/petar/GoLLRB/llrb"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "insert, remove and drain generated pairs, checking every step against an LLRB tree",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "rounds",
				Usage: "number of independent rounds, each with its own seed",
				Value: 1,
			},
		},
		Action: func(cctx *cli.Context) error {
			seed := cctx.Int64("seed")
			count := cctx.Int("count")
			var rows []phaseStats
			for round := 0; round < cctx.Int("rounds"); round++ {
				stats, err := verifyRound(seed+int64(round), count)
				if err != nil {
					return errors.Wrapf(err, "round %d (seed %d)", round, seed+int64(round))
				}
				rows = append(rows, stats...)
			}
			return renderStats(rows)
		},
	}
}

// oracleEntry stores a pair in the reference LLRB tree, ordered by key only.
type oracleEntry struct {
	key   int
	value string
}

func (e oracleEntry) Less(than llrb.Item) bool {
	return e.key < than.(oracleEntry).key
}

type phaseStats struct {
	seed   int64
	phase  string
	ops    int
	length int
	height int
}

// compare checks that d and oracle hold the same pairs for every key in
// universe and that d is well-formed.
func compare(d btdict.Dict[int, string], oracle *llrb.LLRB, universe []keygen.Pair[int, string]) error {
	if d.Len() != oracle.Len() {
		return errors.Newf("dict holds %d pairs, oracle holds %d", d.Len(), oracle.Len())
	}
	for _, p := range universe {
		v, ok := d.Lookup(p.Key)
		want := oracle.Get(oracleEntry{key: p.Key})
		if ok != (want != nil) {
			return errors.Newf("key %d: dict member=%t, oracle member=%t", p.Key, ok, want != nil)
		}
		if ok && v != want.(oracleEntry).value {
			return errors.Newf("key %d: dict has %q, oracle has %q", p.Key, v, want.(oracleEntry).value)
		}
	}
	return errors.Wrap(d.Check(), "dict is malformed")
}

func verifyRound(seed int64, count int) ([]phaseStats, error) {
	g := keygen.NewIntStrings(seed)
	universe := keygen.Ascending[int, string](g, count)
	d := btdict.New[int, string](g.Compare)
	oracle := llrb.New()
	var stats []phaseStats
	record := func(phase string, ops int) {
		stats = append(stats, phaseStats{seed: seed, phase: phase, ops: ops, length: d.Len(), height: d.Height()})
		log.WithFields(log.Fields{
			"seed":   seed,
			"phase":  phase,
			"len":    d.Len(),
			"height": d.Height(),
		}).Info("phase complete")
	}

	for _, p := range g.Shuffle(universe) {
		d = d.Insert(p.Key, p.Value)
		oracle.ReplaceOrInsert(oracleEntry{key: p.Key, value: p.Value})
	}
	if err := compare(d, oracle, universe); err != nil {
		return nil, errors.Wrap(err, "after inserts")
	}
	record("insert", len(universe))

	removed := 0
	for i, p := range g.Shuffle(universe) {
		if i%2 == 0 {
			continue
		}
		d = d.Remove(p.Key)
		oracle.Delete(oracleEntry{key: p.Key})
		removed++
		if !d.Balanced() {
			return nil, errors.Newf("unbalanced after removing %d", p.Key)
		}
	}
	if err := compare(d, oracle, universe); err != nil {
		return nil, errors.Wrap(err, "after removes")
	}
	record("remove", removed)

	chosen := 0
	for {
		k, v, rest, ok := d.Choose()
		if !ok {
			break
		}
		want := oracle.Delete(oracleEntry{key: k})
		if want == nil {
			return nil, errors.Newf("choose returned %d which the oracle does not hold", k)
		}
		if want.(oracleEntry).value != v {
			return nil, errors.Newf("choose returned %d=%q, oracle has %q", k, v, want.(oracleEntry).value)
		}
		if rest.Member(k) {
			return nil, errors.Newf("key %d still present after choose", k)
		}
		d = rest
		chosen++
	}
	if oracle.Len() != 0 {
		return nil, errors.Newf("choose missed %d pairs", oracle.Len())
	}
	record("drain", chosen)
	return stats, nil
}

func renderStats(rows []phaseStats) error {
	data := pterm.TableData{{"seed", "phase", "ops", "len", "height"}}
	for _, r := range rows {
		data = append(data, []string{
			strconv.FormatInt(r.seed, 10),
			r.phase,
			strconv.Itoa(r.ops),
			strconv.Itoa(r.length),
			strconv.Itoa(r.height),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
