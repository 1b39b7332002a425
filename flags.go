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

import "github.com/alecthomas/kingpin/v2"

var (
	// General toolkit flags
	propertyID = kingpin.Flag(
		"google.property-id", "Google Analytics property ID or properties/<id> resource name to canonicalize ($ANALYTICS_TOOLKIT_GOOGLE_PROPERTY_ID).",
	).Envar("ANALYTICS_TOOLKIT_GOOGLE_PROPERTY_ID").String()

	logLevel = kingpin.Flag(
		"log.level", "Only log messages with the given severity or above. One of: [debug, info, warn, error] ($ANALYTICS_TOOLKIT_LOG_LEVEL).",
	).Envar("ANALYTICS_TOOLKIT_LOG_LEVEL").Default("info").String()
)
