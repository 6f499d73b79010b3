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

// Command btdict builds randomized 2-3 tree dictionaries and checks them
// against a reference LLRB tree.
package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jonbelay/cs51/btdict"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	// only try dotenv if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "btdict",
		Usage: "exercise the 2-3 tree dictionary",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for generated keys and values",
				Value:   1,
				EnvVars: []string{"BTDICT_SEED"},
			},
			&cli.IntFlag{
				Name:    "count",
				Usage:   "number of pairs to generate",
				Value:   1000,
				EnvVars: []string{"BTDICT_COUNT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"BTDICT_LOG_LEVEL"},
			},
		},
		Before: configureLogging,
		Commands: []*cli.Command{
			verifyCommand(),
			printCommand(),
			drainCommand(),
		},
	}
}

func configureLogging(cctx *cli.Context) error {
	level, err := log.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return errors.Wrap(err, "parsing --log-level")
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(level)
	btdict.Log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	btdict.Log.SetLevel(level)
	return nil
}
