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

package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/camelcase"
)

var (
	safeNameRE         = regexp.MustCompile(`[^a-zA-Z0-9_]*$`)
	propertyIDRE       = regexp.MustCompile(`^[0-9]+$`)
	propertyResourceRE = regexp.MustCompile(`^properties/[0-9]+$`)
)

// ConstructPropertyName canonicalizes a Google Analytics property identifier
// into its `properties/<id>` resource name. The identifier may be a numeric
// ID, optionally surrounded by whitespace, or an already qualified resource
// name, which is returned unchanged.
func ConstructPropertyName(property string) (string, error) {
	trimmed := strings.TrimSpace(property)
	switch {
	case propertyIDRE.MatchString(trimmed):
		return "properties/" + trimmed, nil
	case propertyResourceRE.MatchString(trimmed):
		return trimmed, nil
	}
	return "", fmt.Errorf("invalid property ID %q: expected a numeric ID or a resource name of the form properties/<id>", property)
}

// PropertyResource returns the resource name for a numeric property ID.
// Callers holding an unvalidated identifier should use ConstructPropertyName.
func PropertyResource(propertyID int64) string {
	return "properties/" + strconv.FormatInt(propertyID, 10)
}

// NormalizeAPIName converts a camelCase Analytics API field name, such as
// "sessionSourceMedium", into a safe snake_case key.
func NormalizeAPIName(apiName string) string {
	var normalizedAPIName []string

	words := camelcase.Split(apiName)
	for _, word := range words {
		safeWord := strings.Trim(safeNameRE.ReplaceAllLiteralString(word, "_"), "_")
		lowerWord := strings.TrimSpace(strings.ToLower(safeWord))
		if lowerWord != "" {
			normalizedAPIName = append(normalizedAPIName, lowerWord)
		}
	}

	return strings.Join(normalizedAPIName, "_")
}
