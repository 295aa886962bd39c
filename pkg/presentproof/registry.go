package presentproof

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/schema"
)

// ProofType is a registered Definition with its attribute list fixed at registration.
type ProofType struct {
	def        *Definition
	attributes []ProofAttribute
}

func (r *ProofType) Version() schema.Version {
	return r.def.Version
}

// Attributes is sorted by field name.
func (r *ProofType) Attributes() []ProofAttribute {
	return r.attributes
}

func (r *ProofType) AttributeNames() []string {
	out := make([]string, len(r.attributes))
	for i, attr := range r.attributes {
		out[i] = attr.AttributeName
	}
	return out
}

func (r *ProofType) NewResult() Result {
	return r.def.New()
}

func (r *ProofType) Handle() HandlerFunc {
	return r.def.Handle
}

func (r *ProofType) Commit(student *datastore.Student, record *datastore.ProofRecord, result Result) error {
	if r.def.Commit == nil {
		return nil
	}
	return r.def.Commit(student, record, result)
}

type Option func(opts *Registry)

// Registry holds proof types keyed by Version.
type Registry struct {
	types map[schema.Version]*ProofType
	err   error
}

func NewRegistry(opts ...Option) (*Registry, error) {
	reg := &Registry{types: map[schema.Version]*ProofType{}}

	for _, opt := range opts {
		opt(reg)
	}

	if reg.err != nil {
		return nil, reg.err
	}

	return reg, nil
}

// WithDefinition registers a proof type.
func WithDefinition(def *Definition) Option {
	return func(opts *Registry) {
		if opts.err != nil {
			return
		}
		opts.err = opts.Register(def)
	}
}

func (r *Registry) Register(def *Definition) error {
	if err := def.Validate(); err != nil {
		return errors.Wrap(err, "invalid proof type")
	}

	if _, ok := r.types[def.Version]; ok {
		return errors.Errorf("proof type %s already registered", def.Version)
	}

	attrs := make([]ProofAttribute, len(def.Attributes))
	for i, attr := range def.Attributes {
		versions := make([]schema.Version, len(attr.SchemaVersions))
		copy(versions, attr.SchemaVersions)
		attr.SchemaVersions = versions
		attrs[i] = attr
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Field < attrs[j].Field })

	r.types[def.Version] = &ProofType{def: def, attributes: attrs}
	return nil
}

func (r *Registry) Lookup(v schema.Version) (*ProofType, error) {
	pt, ok := r.types[v]
	if !ok {
		return nil, errors.Errorf("proof type %s not registered", v)
	}

	return pt, nil
}

// Types is sorted by version string.
func (r *Registry) Types() []*ProofType {
	out := make([]*ProofType, 0, len(r.types))
	for _, pt := range r.types {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version().String() < out[j].Version().String() })
	return out
}
