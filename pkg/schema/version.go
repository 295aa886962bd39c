/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import "fmt"

// Version identifies a proof type or a claim schema. It is comparable and used as a map key.
type Version struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewVersion(name, version string) Version {
	return Version{Name: name, Version: version}
}

func (r Version) String() string {
	return fmt.Sprintf("%s:%s", r.Name, r.Version)
}
