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
	"bytes"
	"strings"
	"testing"

	"github.com/jonbelay/cs51/keygen"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableOutput()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"btdict", "--log-level", "warn"}, args...))
	return buf.String(), err
}

func TestPrintCommand(t *testing.T) {
	out, err := run(t, "print", "1=a", "2=b", "3=c")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "dict (len 3, height 2)"), out)
	for _, label := range []string{"[2:b]", "[1:a]", "[3:c]"} {
		require.Contains(t, out, label)
	}

	out, err = run(t, "print", "--remove", "1", "1=a", "2=b", "3=c")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "dict (len 2, height 1)"), out)
	require.Contains(t, out, "[2:b 3:c]")

	_, err = run(t, "print", "x=1")
	require.ErrorContains(t, err, "parsing key")
}

func TestVerifyCommand(t *testing.T) {
	_, err := run(t, "--count", "300", "verify", "--rounds", "3")
	require.NoError(t, err)
}

func TestVerifyRound(t *testing.T) {
	stats, err := verifyRound(9, 100)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	require.Equal(t, "insert", stats[0].phase)
	require.Equal(t, 100, stats[0].length)
	require.Equal(t, 50, stats[1].ops)
	require.Equal(t, 50, stats[1].length)
	require.Equal(t, 50, stats[2].ops)
	require.Zero(t, stats[2].length)
}

func TestDrainCommand(t *testing.T) {
	out, err := run(t, "--count", "40", "--seed", "3", "drain")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 40)

	g := keygen.NewIntStrings(3)
	var want []string
	for _, p := range keygen.Ascending[int, string](g, 40) {
		want = append(want, p.Value)
	}
	var got []string
	for _, line := range lines {
		_, v, ok := strings.Cut(line, "\t")
		require.True(t, ok, line)
		got = append(got, v)
	}
	require.ElementsMatch(t, want, got)
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "drain")
	require.ErrorContains(t, err, "parsing --log-level")
}
