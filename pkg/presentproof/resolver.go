package presentproof

import (
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/schema"
)

// schemaResolver memoizes claim schema lookups for the life of a single request construction.
type schemaResolver struct {
	store        datastore.Store
	universityID string
	schemas      map[schema.Version]*datastore.ClaimSchema
}

func newSchemaResolver(store datastore.Store, universityID string) *schemaResolver {
	return &schemaResolver{
		store:        store,
		universityID: universityID,
		schemas:      map[schema.Version]*datastore.ClaimSchema{},
	}
}

// claimSchema returns nil when the university has not registered the schema.
func (r *schemaResolver) claimSchema(v schema.Version) (*datastore.ClaimSchema, error) {
	if cs, ok := r.schemas[v]; ok {
		return cs, nil
	}

	cs, err := r.store.FindClaimSchema(r.universityID, v.Name, v.Version)
	if errors.Is(err, datastore.ErrNotFound) {
		cs, err = nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load claim schema %s", v)
	}

	r.schemas[v] = cs
	return cs, nil
}

// filters yields one Filter per trusted issuer of every registered schema in versions.
func (r *schemaResolver) filters(versions []schema.Version) ([]schema.Filter, error) {
	var out []schema.Filter
	for _, v := range versions {
		cs, err := r.claimSchema(v)
		if err != nil {
			return nil, err
		}
		if cs == nil {
			continue
		}

		for _, issuer := range cs.ClaimIssuers {
			out = append(out, schema.Filter{
				IssuerDID:     issuer.DID,
				SchemaName:    cs.SchemaName,
				SchemaVersion: cs.SchemaVersion,
			})
		}
	}

	return out, nil
}

func (r *schemaResolver) attributeInfo(attr ProofAttribute) (*schema.AttributeInfo, error) {
	restrictions, err := r.filters(attr.SchemaVersions)
	if err != nil {
		return nil, err
	}

	if len(restrictions) == 0 {
		return nil, errors.Wrapf(ErrNoIssuer, "field %s", attr.Field)
	}

	return &schema.AttributeInfo{
		Name:         attr.AttributeName,
		Restrictions: restrictions,
	}, nil
}
