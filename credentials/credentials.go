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

// Package credentials resolves Google credentials for read-only analytics
// access, preferring a credentials file named by $CUSTOM_ADC_PATH over
// application default credential discovery.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const (
	// EnvCustomADCPath names the environment variable holding the path of an
	// authorized-user credentials file that overrides default discovery.
	EnvCustomADCPath = "CUSTOM_ADC_PATH"

	// ReadOnlyAnalyticsScope is the single OAuth scope requested whenever the
	// credentials file does not declare its own scope list.
	ReadOnlyAnalyticsScope = "https://www.googleapis.com/auth/analytics.readonly"
)

// ErrInvalidConfiguration reports a custom credentials path that is set but
// does not point at a usable authorized-user credentials file.
var ErrInvalidConfiguration = errors.New("invalid credentials configuration")

// authorizedUserFile is the subset of the authorized_user JSON shape the
// resolver inspects before handing the raw bytes to the oauth2 library.
type authorizedUserFile struct {
	Type         string   `json:"type"`
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	RefreshToken string   `json:"refresh_token"`
	Scopes       []string `json:"scopes"`
}

func (f *authorizedUserFile) validate() error {
	if f.Type != "authorized_user" {
		return fmt.Errorf("credential type %q is not authorized_user", f.Type)
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"client_id", f.ClientID},
		{"client_secret", f.ClientSecret},
		{"refresh_token", f.RefreshToken},
	} {
		if field.value == "" {
			return fmt.Errorf("missing required field %q", field.name)
		}
	}
	return nil
}

// Resolver resolves Google credentials. The environment, filesystem and
// credential constructors are injectable so tests can run without a real
// process environment or ADC state.
type Resolver struct {
	logger log.Logger

	lookupEnv           func(key string) (string, bool)
	readFile            func(name string) ([]byte, error)
	credentialsFromJSON func(ctx context.Context, jsonData []byte, scopes ...string) (*google.Credentials, error)
	findDefault         func(ctx context.Context, scopes ...string) (*google.Credentials, error)
}

// NewResolver returns a Resolver backed by the process environment, the local
// filesystem and Google's default credential discovery.
func NewResolver(logger log.Logger) *Resolver {
	return &Resolver{
		logger:              logger,
		lookupEnv:           os.LookupEnv,
		readFile:            os.ReadFile,
		credentialsFromJSON: google.CredentialsFromJSON,
		findDefault:         google.FindDefaultCredentials,
	}
}

// Resolve returns credentials usable for read-only analytics access. A
// credentials file named by $CUSTOM_ADC_PATH takes precedence; a path that is
// set but unusable is an error, never a silent fallback. Without the override
// the result and error of default discovery are returned verbatim.
func (r *Resolver) Resolve(ctx context.Context) (*google.Credentials, error) {
	if path, ok := r.lookupEnv(EnvCustomADCPath); ok && path != "" {
		return r.resolveFromFile(ctx, path)
	}
	level.Debug(r.logger).Log("msg", "Using application default credentials", "scope", ReadOnlyAnalyticsScope)
	return r.findDefault(ctx, ReadOnlyAnalyticsScope)
}

func (r *Resolver) resolveFromFile(ctx context.Context, path string) (*google.Credentials, error) {
	data, err := r.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading $%s file %q: %v", ErrInvalidConfiguration, EnvCustomADCPath, path, err)
	}

	var file authorizedUserFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrInvalidConfiguration, path, err)
	}
	if err := file.validate(); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidConfiguration, path, err)
	}

	scopes := file.Scopes
	if len(scopes) == 0 {
		scopes = []string{ReadOnlyAnalyticsScope}
	}

	creds, err := r.credentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidConfiguration, path, err)
	}

	level.Debug(r.logger).Log("msg", "Using custom credentials file", "path", path, "scopes", strings.Join(scopes, ","))
	return creds, nil
}

// ClientOptions resolves credentials and adapts them for a Google API service
// constructor.
func (r *Resolver) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	creds, err := r.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}
