/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentproof

import (
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/schema"
)

// ProofAttribute declares one field of a proof type and the claim schemas that can satisfy it.
type ProofAttribute struct {
	Field          string
	AttributeName  string
	SchemaVersions []schema.Version
}

// Result is the typed outcome of a verified proof. Values are written field by field.
type Result interface {
	SetAttribute(field, value string) error
}

// HandlerFunc applies proof type business rules to a verified result and decides whether to accept it.
// It must not write anything.
type HandlerFunc func(student *datastore.Student, record *datastore.ProofRecord, result Result) (bool, error)

// CommitFunc applies the effects of an accepted proof. It runs only once the proof is stored on its record.
type CommitFunc func(student *datastore.Student, record *datastore.ProofRecord, result Result) error

// Definition describes a proof type. Commit is optional.
type Definition struct {
	Version    schema.Version
	Attributes []ProofAttribute
	New        func() Result
	Handle     HandlerFunc
	Commit     CommitFunc
}

func (r *Definition) Validate() error {
	if r.Version.Name == "" || r.Version.Version == "" {
		return errors.New("proof type requires a name and version")
	}

	if r.New == nil || r.Handle == nil {
		return errors.Errorf("proof type %s requires a result factory and a handler", r.Version)
	}

	if len(r.Attributes) == 0 {
		return errors.Errorf("proof type %s declares no attributes", r.Version)
	}

	fields := map[string]bool{}
	for _, attr := range r.Attributes {
		if attr.Field == "" || attr.AttributeName == "" {
			return errors.Errorf("proof type %s has an unnamed attribute", r.Version)
		}

		if fields[attr.Field] {
			return errors.Errorf("proof type %s declares %s twice", r.Version, attr.Field)
		}
		fields[attr.Field] = true

		if len(attr.SchemaVersions) == 0 {
			return errors.Errorf("attribute %s of %s accepts no schema", attr.Field, r.Version)
		}
	}

	return nil
}
