/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import "strings"

// Attr is a single verified attribute value keyed by the requested field name.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AttrCommonView normalizes an attribute name the way credential schemas store it.
func AttrCommonView(attr string) string {
	return strings.ToLower(strings.Replace(attr, " ", "", -1))
}
