package prooftype

import (
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/presentproof"
	"github.com/scoir/studybits/pkg/schema"
)

var (
	DiplomaVersion = schema.NewVersion("Diploma", "1.0")

	diplomaSchema    = schema.NewVersion("Diploma", "1.0")
	transcriptSchema = schema.NewVersion("Transcript", "1.0")
)

type Diploma struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Degree    string `json:"degree"`
}

func (r *Diploma) SetAttribute(field, value string) error {
	switch field {
	case "firstName":
		r.FirstName = value
	case "lastName":
		r.LastName = value
	case "degree":
		r.Degree = value
	default:
		return errors.Errorf("diploma has no field %s", field)
	}
	return nil
}

// NewDiploma accepts any diploma with a degree and records the student's exchange position.
func NewDiploma(store datastore.Store) *presentproof.Definition {
	return &presentproof.Definition{
		Version: DiplomaVersion,
		Attributes: []presentproof.ProofAttribute{
			{Field: "firstName", AttributeName: "First Name", SchemaVersions: []schema.Version{diplomaSchema, transcriptSchema}},
			{Field: "lastName", AttributeName: "Last Name", SchemaVersions: []schema.Version{diplomaSchema, transcriptSchema}},
			{Field: "degree", AttributeName: "Degree", SchemaVersions: []schema.Version{diplomaSchema}},
		},
		New: func() presentproof.Result { return &Diploma{} },
		Handle: func(student *datastore.Student, record *datastore.ProofRecord, result presentproof.Result) (bool, error) {
			d, ok := result.(*Diploma)
			if !ok {
				return false, errors.Errorf("unexpected diploma result %T", result)
			}

			return d.Degree != "", nil
		},
		Commit: func(student *datastore.Student, record *datastore.ProofRecord, result presentproof.Result) error {
			d := result.(*Diploma)
			return recordPosition(store, student, record, d.FirstName, d.LastName, d.Degree, PositionAccepted)
		},
	}
}
