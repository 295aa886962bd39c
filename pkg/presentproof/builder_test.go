package presentproof

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/datastore/mocks"
	"github.com/scoir/studybits/pkg/schema"
)

func TestBuildProofRequest(t *testing.T) {
	university := &datastore.University{ID: "u1", Name: "Faber College"}
	record := &datastore.ProofRecord{
		ID:           "1",
		StudentID:    "s1",
		ProofName:    "Diploma",
		ProofVersion: "1.0",
		Nonce:        "12345678901234567890123456789",
	}

	t.Run("one filter per trusted issuer", func(t *testing.T) {
		store := &mocks.Store{}
		pt := registeredDiploma(t)
		store.On("FindClaimSchema", "u1", "Diploma", "1.0").Return(diplomaSchema("did:faber", "did:acme"), nil).Once()
		store.On("FindClaimSchema", "u1", "Transcript", "1.0").Return(transcriptSchema("did:faber"), nil).Once()

		req, err := BuildProofRequest(store, pt, university, connectedStudent(), record)
		require.NoError(t, err)

		require.Equal(t, "Diploma", req.Name)
		require.Equal(t, "1.0", req.Version)
		require.Equal(t, record.Nonce, req.Nonce)
		require.Equal(t, "did:student", req.TheirDID)
		require.Len(t, req.RequestedAttributes, 2)

		degree := req.RequestedAttributes["degree"]
		require.Equal(t, "Degree", degree.Name)
		require.Equal(t, []schema.Filter{
			{IssuerDID: "did:faber", SchemaName: "Diploma", SchemaVersion: "1.0"},
			{IssuerDID: "did:acme", SchemaName: "Diploma", SchemaVersion: "1.0"},
			{IssuerDID: "did:faber", SchemaName: "Transcript", SchemaVersion: "1.0"},
		}, degree.Restrictions)

		firstName := req.RequestedAttributes["firstName"]
		require.Len(t, firstName.Restrictions, 2)

		store.AssertExpectations(t)
	})

	t.Run("deterministic", func(t *testing.T) {
		store := &mocks.Store{}
		pt := registeredDiploma(t)
		store.On("FindClaimSchema", "u1", "Diploma", "1.0").Return(diplomaSchema("did:faber"), nil)
		store.On("FindClaimSchema", "u1", "Transcript", "1.0").Return(nil, datastore.ErrNotFound)

		first, err := BuildProofRequest(store, pt, university, connectedStudent(), record)
		require.NoError(t, err)
		second, err := BuildProofRequest(store, pt, university, connectedStudent(), record)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("no connection", func(t *testing.T) {
		store := &mocks.Store{}
		student := connectedStudent()
		student.Connection = nil

		_, err := BuildProofRequest(store, registeredDiploma(t), university, student, record)
		require.True(t, errors.Is(err, ErrNoConnection))
		store.AssertNotCalled(t, "FindClaimSchema")
	})

	t.Run("no issuer found for field", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("FindClaimSchema", "u1", "Diploma", "1.0").Return(diplomaSchema(), nil)
		store.On("FindClaimSchema", "u1", "Transcript", "1.0").Return(nil, datastore.ErrNotFound)

		_, err := BuildProofRequest(store, registeredDiploma(t), university, connectedStudent(), record)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrNoIssuer))
		require.Contains(t, err.Error(), "no issuer found for field")
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("FindClaimSchema", "u1", "Diploma", "1.0").Return(nil, errors.New("boom"))

		_, err := BuildProofRequest(store, registeredDiploma(t), university, connectedStudent(), record)
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrNoIssuer))
	})
}

func TestSchemaResolver(t *testing.T) {
	t.Run("memoized per resolver", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("FindClaimSchema", "u1", "Diploma", "1.0").Return(diplomaSchema("did:faber"), nil).Once()

		resolver := newSchemaResolver(store, "u1")
		v := schema.NewVersion("Diploma", "1.0")
		for i := 0; i < 3; i++ {
			filters, err := resolver.filters([]schema.Version{v})
			require.NoError(t, err)
			require.Len(t, filters, 1)
		}

		store.AssertNumberOfCalls(t, "FindClaimSchema", 1)
	})

	t.Run("missing schema is remembered", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("FindClaimSchema", "u1", "Diploma", "1.0").Return(nil, datastore.ErrNotFound).Once()

		resolver := newSchemaResolver(store, "u1")
		v := schema.NewVersion("Diploma", "1.0")
		_, err := resolver.filters([]schema.Version{v, v})
		require.NoError(t, err)

		store.AssertNumberOfCalls(t, "FindClaimSchema", 1)
	})
}

func diplomaSchema(issuers ...string) *datastore.ClaimSchema {
	return claimSchema("Diploma", "1.0", issuers...)
}

func transcriptSchema(issuers ...string) *datastore.ClaimSchema {
	return claimSchema("Transcript", "1.0", issuers...)
}

func claimSchema(name, version string, issuers ...string) *datastore.ClaimSchema {
	cs := &datastore.ClaimSchema{
		ID:            name + "-" + version,
		UniversityID:  "u1",
		SchemaName:    name,
		SchemaVersion: version,
		Attributes:    []string{"firstname", "degree"},
	}
	for _, did := range issuers {
		cs.ClaimIssuers = append(cs.ClaimIssuers, &datastore.ClaimIssuer{Name: did, DID: did})
	}
	return cs
}
