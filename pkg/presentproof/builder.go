package presentproof

import (
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/schema"
)

// BuildProofRequest rebuilds the request for a record from current schema state. The result only
// depends on the record and the university's claim schemas, so it is rebuilt rather than cached.
func BuildProofRequest(store datastore.Store, pt *ProofType, university *datastore.University,
	student *datastore.Student, record *datastore.ProofRecord) (*schema.ProofRequest, error) {

	if !student.HasConnection() {
		return nil, errors.Wrapf(ErrNoConnection, "student %s", student.ID)
	}

	resolver := newSchemaResolver(store, university.ID)
	requested := make(map[string]*schema.AttributeInfo, len(pt.Attributes()))
	for _, attr := range pt.Attributes() {
		info, err := resolver.attributeInfo(attr)
		if err != nil {
			return nil, err
		}
		requested[attr.Field] = info
	}

	req := &schema.ProofRequest{
		Name:                record.ProofName,
		Version:             record.ProofVersion,
		Nonce:               record.Nonce,
		TheirDID:            student.Connection.TheirDID,
		RequestedAttributes: requested,
	}

	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "built invalid proof request")
	}

	return req, nil
}
