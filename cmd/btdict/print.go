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
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jonbelay/cs51/btdict"
	"github.com/jonbelay/cs51/keygen"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func printCommand() *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "build a dict and print its node structure",
		ArgsUsage: "[key[=value] ...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "remove",
				Usage: "keys to remove after building",
			},
		},
		Action: func(cctx *cli.Context) error {
			g := keygen.NewIntStrings(cctx.Int64("seed"))
			d := btdict.New[int, string](g.Compare)
			if cctx.Args().Len() == 0 {
				for _, p := range g.Shuffle(keygen.Ascending[int, string](g, cctx.Int("count"))) {
					d = d.Insert(p.Key, p.Value)
				}
			}
			for _, arg := range cctx.Args().Slice() {
				k, v, err := parsePair(arg, g)
				if err != nil {
					return err
				}
				d = d.Insert(k, v)
			}
			for _, arg := range cctx.StringSlice("remove") {
				k, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Wrapf(err, "parsing --remove %q", arg)
				}
				d = d.Remove(k)
			}
			log.WithFields(log.Fields{"len": d.Len(), "height": d.Height()}).Debug("built dict")
			return d.Print(cctx.App.Writer)
		},
	}
}

// parsePair parses "key" or "key=value"; a missing value is generated.
func parsePair(arg string, g *keygen.IntStrings) (int, string, error) {
	ks, v, found := strings.Cut(arg, "=")
	k, err := strconv.Atoi(ks)
	if err != nil {
		return 0, "", errors.Wrapf(err, "parsing key %q", arg)
	}
	if !found {
		v = g.GenerateValue()
	}
	return k, v, nil
}
