// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.


// Command bstwalk builds a binary search tree from a list of keys and prints
// the results of navigating it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ajwerner/bst"
	"github.com/ajwerner/bst/graph"
	"github.com/ajwerner/bst/internal/treebuild"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bstwalk",
		Short:        "Build a binary search tree and walk it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	cmd.Flags().String("keys", "", "comma separated keys, inserted in order")
	cmd.Flags().String("query", "", "comma separated keys to search for")
	cmd.Flags().String("format", formatNewick, "tree output format (newick|dot)")
	cmd.Flags().String("log-level", "info", "log level")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(cfg.LogLevel).With().Timestamp().Logger()
		return run(cfg, cmd.OutOrStdout(), log)
	}
	return cmd
}

func run(cfg *config, out io.Writer, log zerolog.Logger) error {
	root := treebuild.Build(cfg.Keys...)
	log.Debug().Ints("keys", cfg.Keys).Int("height", root.Height()).Msg("built tree")
	if err := root.CheckOrder(); err != nil {
		return err
	}
	if err := root.CheckParents(); err != nil {
		return err
	}

	switch cfg.Format {
	case formatDot:
		fmt.Fprint(out, graph.Dot(root))
	default:
		fmt.Fprintln(out, root.String())
	}

	for _, q := range cfg.Query {
		n, found := root.Search(q)
		if !found {
			log.Info().Int("key", q).Msg("not found")
			fmt.Fprintf(out, "%d: not found\n", q)
			continue
		}
		fmt.Fprintf(out, "%d: successor=%s predecessor=%s root=%s\n",
			q, describe(n, n.Successor()), describe(n, n.Predecessor()), keyOf(n.Root()))
	}
	fmt.Fprintf(out, "min=%s max=%s\n", keyOf(root.Min()), keyOf(root.Max()))
	return nil
}

// describe renders the neighbour m of n, reporting "none" when the walk
// returned n itself.
func describe(n, m *bst.Node[int]) string {
	if m == n {
		return "none"
	}
	return keyOf(m)
}

func keyOf(n *bst.Node[int]) string {
	k, ok := n.Key()
	if !ok {
		return "_"
	}
	return fmt.Sprint(k)
}
