// Copyright 2025 The Analytics Toolkit Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/common/version"
	"golang.org/x/oauth2/google"

	"github.com/analytics-community/analytics_toolkit/credentials"
	"github.com/analytics-community/analytics_toolkit/utils"
)

type credentialResolver interface {
	Resolve(ctx context.Context) (*google.Credentials, error)
}

func parseLogLevel(s string) (level.Option, error) {
	switch s {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("unrecognized log level %q", s)
}

func newLogger(logLevel string) (log.Logger, error) {
	levelOption, err := parseLogLevel(logLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, levelOption)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

// run resolves credentials and, when a property identifier was given, writes
// its canonical resource name to w.
func run(ctx context.Context, logger log.Logger, resolver credentialResolver, w io.Writer, propertyID string) error {
	creds, err := resolver.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("resolving credentials: %w", err)
	}
	level.Info(logger).Log("msg", "Resolved Google credentials", "project_id", creds.ProjectID)

	if propertyID != "" {
		name, err := utils.ConstructPropertyName(propertyID)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, name)
	}

	return nil
}

func main() {
	kingpin.Version(version.Print("analytics_toolkit"))
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "Starting analytics_toolkit", "version", version.Info())

	resolver := credentials.NewResolver(logger)
	if err := run(context.Background(), logger, resolver, os.Stdout, *propertyID); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}
