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
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jonbelay/cs51/btdict"
	"github.com/jonbelay/cs51/keygen"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func drainCommand() *cli.Command {
	return &cli.Command{
		Name:  "drain",
		Usage: "empty a generated dict with repeated choose, printing each pair",
		Action: func(cctx *cli.Context) error {
			g := keygen.NewIntStrings(cctx.Int64("seed"))
			d := btdict.New[int, string](g.Compare)
			for _, p := range g.Shuffle(keygen.Ascending[int, string](g, cctx.Int("count"))) {
				d = d.Insert(p.Key, p.Value)
			}
			total := d.Len()
			for n := 0; ; n++ {
				k, v, rest, ok := d.Choose()
				if !ok {
					if n != total {
						return errors.Newf("drained %d pairs from a dict of %d", n, total)
					}
					break
				}
				if rest.Len() != d.Len()-1 {
					return errors.AssertionFailedf("choose of %d left %d pairs, want %d", k, rest.Len(), d.Len()-1)
				}
				fmt.Fprintf(cctx.App.Writer, "%d\t%s\n", k, v)
				log.WithFields(log.Fields{"key": k, "left": rest.Len()}).Debug("chose pair")
				d = rest
			}
			log.WithField("count", total).Info("drained")
			return nil
		},
	}
}
