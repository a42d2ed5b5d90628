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


package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for bstwalk settings.
const envPrefix = "BSTWALK"

const (
	formatNewick = "newick"
	formatDot    = "dot"
)

type config struct {
	Keys     []int
	Query    []int
	Format   string
	LogLevel zerolog.Level
}

func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	v.SetDefault("format", formatNewick)
	v.SetDefault("log-level", zerolog.InfoLevel.String())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	var cfg config
	var err error
	if cfg.Keys, err = parseKeys(v.GetString("keys")); err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	if cfg.Query, err = parseKeys(v.GetString("query")); err != nil {
		return nil, errors.Wrap(err, "query")
	}
	cfg.Format = v.GetString("format")
	if cfg.LogLevel, err = zerolog.ParseLevel(v.GetString("log-level")); err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if len(c.Keys) == 0 {
		return errors.New("no keys given")
	}
	seen := make(map[int]struct{}, len(c.Keys))
	for _, k := range c.Keys {
		if _, ok := seen[k]; ok {
			return errors.Newf("duplicate key %d", k)
		}
		seen[k] = struct{}{}
	}
	switch c.Format {
	case formatNewick, formatDot:
	default:
		return errors.Newf("unknown format %q", c.Format)
	}
	return nil
}

func parseKeys(s string) ([]int, error) {
	var keys []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", f)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
