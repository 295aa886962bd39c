package prooftype

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/presentproof"
	"github.com/scoir/studybits/pkg/schema"
)

var TranscriptVersion = schema.NewVersion("Transcript", "1.0")

// MinimumAverage an applicant's transcript must show.
const MinimumAverage = 6.0

type Transcript struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Degree       string `json:"degree"`
	Status       string `json:"status"`
	AverageGrade string `json:"averageGrade"`
}

func (r *Transcript) SetAttribute(field, value string) error {
	switch field {
	case "firstName":
		r.FirstName = value
	case "lastName":
		r.LastName = value
	case "degree":
		r.Degree = value
	case "status":
		r.Status = value
	case "averageGrade":
		r.AverageGrade = value
	default:
		return errors.Errorf("transcript has no field %s", field)
	}
	return nil
}

// NewTranscript accepts enrolled students with a sufficient average as exchange applicants.
func NewTranscript(store datastore.Store) *presentproof.Definition {
	only := []schema.Version{transcriptSchema}
	return &presentproof.Definition{
		Version: TranscriptVersion,
		Attributes: []presentproof.ProofAttribute{
			{Field: "firstName", AttributeName: "First Name", SchemaVersions: only},
			{Field: "lastName", AttributeName: "Last Name", SchemaVersions: only},
			{Field: "degree", AttributeName: "Degree", SchemaVersions: only},
			{Field: "status", AttributeName: "Status", SchemaVersions: only},
			{Field: "averageGrade", AttributeName: "Average Grade", SchemaVersions: only},
		},
		New: func() presentproof.Result { return &Transcript{} },
		Handle: func(student *datastore.Student, record *datastore.ProofRecord, result presentproof.Result) (bool, error) {
			tr, ok := result.(*Transcript)
			if !ok {
				return false, errors.Errorf("unexpected transcript result %T", result)
			}

			if !strings.EqualFold(tr.Status, "enrolled") {
				return false, nil
			}

			avg, err := strconv.ParseFloat(tr.AverageGrade, 64)
			return err == nil && avg >= MinimumAverage, nil
		},
		Commit: func(student *datastore.Student, record *datastore.ProofRecord, result presentproof.Result) error {
			tr := result.(*Transcript)
			return recordPosition(store, student, record, tr.FirstName, tr.LastName, tr.Degree, PositionApplied)
		},
	}
}
