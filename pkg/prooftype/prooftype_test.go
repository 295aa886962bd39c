package prooftype

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/datastore/mocks"
	"github.com/scoir/studybits/pkg/presentproof"
)

var (
	student = &datastore.Student{ID: "s1", UniversityID: "u1"}
	record  = &datastore.ProofRecord{ID: "r1", StudentID: "s1"}
)

func TestRegister(t *testing.T) {
	reg, err := presentproof.NewRegistry()
	require.NoError(t, err)

	err = Register(reg, &mocks.Store{})
	require.NoError(t, err)

	diploma, err := reg.Lookup(DiplomaVersion)
	require.NoError(t, err)
	require.Equal(t, []string{"Degree", "First Name", "Last Name"}, diploma.AttributeNames())

	transcript, err := reg.Lookup(TranscriptVersion)
	require.NoError(t, err)
	require.Len(t, transcript.Attributes(), 5)

	err = Register(reg, &mocks.Store{})
	require.Error(t, err)
}

func TestDiploma(t *testing.T) {
	t.Run("set attributes", func(t *testing.T) {
		d := &Diploma{}
		require.NoError(t, d.SetAttribute("firstName", "John"))
		require.NoError(t, d.SetAttribute("lastName", "Doe"))
		require.NoError(t, d.SetAttribute("degree", "Bachelor of Arts"))
		require.Equal(t, &Diploma{FirstName: "John", LastName: "Doe", Degree: "Bachelor of Arts"}, d)

		require.Error(t, d.SetAttribute("ssn", "123"))
	})

	t.Run("accepted without writing", func(t *testing.T) {
		store := &mocks.Store{}
		def := NewDiploma(store)
		ok, err := def.Handle(student, record, &Diploma{FirstName: "John", Degree: "Bachelor of Arts"})
		require.NoError(t, err)
		require.True(t, ok)
		store.AssertNotCalled(t, "InsertExchangePosition", mock.Anything)
	})

	t.Run("commit records position", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("InsertExchangePosition", mock.MatchedBy(func(p *datastore.ExchangePosition) bool {
			return p.ProofRecordID == "r1" && p.UniversityID == "u1" && p.StudentID == "s1" &&
				p.Degree == "Bachelor of Arts" && p.Status == PositionAccepted
		})).Return("p1", nil)

		def := NewDiploma(store)
		err := def.Commit(student, record, &Diploma{FirstName: "John", Degree: "Bachelor of Arts"})
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("rejected without degree", func(t *testing.T) {
		def := NewDiploma(&mocks.Store{})
		ok, err := def.Handle(student, record, &Diploma{FirstName: "John"})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("InsertExchangePosition", mock.Anything).Return("", errors.New("boom"))

		def := NewDiploma(store)
		err := def.Commit(student, record, &Diploma{Degree: "Bachelor of Arts"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to record exchange position")
	})

	t.Run("wrong result type", func(t *testing.T) {
		def := NewDiploma(&mocks.Store{})
		_, err := def.Handle(student, record, &Transcript{})
		require.Error(t, err)
	})
}

func TestTranscript(t *testing.T) {
	t.Run("enrolled with sufficient average", func(t *testing.T) {
		store := &mocks.Store{}
		store.On("InsertExchangePosition", mock.MatchedBy(func(p *datastore.ExchangePosition) bool {
			return p.Status == PositionApplied && p.Degree == "Computer Science"
		})).Return("p1", nil)

		def := NewTranscript(store)
		tr := def.New()
		require.NoError(t, tr.SetAttribute("status", "Enrolled"))
		require.NoError(t, tr.SetAttribute("averageGrade", "7.5"))
		require.NoError(t, tr.SetAttribute("degree", "Computer Science"))

		ok, err := def.Handle(student, record, tr)
		require.NoError(t, err)
		require.True(t, ok)
		store.AssertNotCalled(t, "InsertExchangePosition", mock.Anything)

		require.NoError(t, def.Commit(student, record, tr))
		store.AssertExpectations(t)
	})

	t.Run("rejections", func(t *testing.T) {
		for _, tr := range []*Transcript{
			{Status: "graduated", AverageGrade: "9"},
			{Status: "enrolled", AverageGrade: "5.9"},
			{Status: "enrolled", AverageGrade: "n/a"},
		} {
			def := NewTranscript(&mocks.Store{})
			ok, err := def.Handle(student, record, tr)
			require.NoError(t, err)
			require.False(t, ok)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		require.Error(t, (&Transcript{}).SetAttribute("gpa", "4"))
	})
}
