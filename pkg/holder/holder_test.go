package holder

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/client/university"
	"github.com/scoir/studybits/pkg/datastore"
	dsmocks "github.com/scoir/studybits/pkg/datastore/mocks"
	"github.com/scoir/studybits/pkg/framework"
	"github.com/scoir/studybits/pkg/holder/mocks"
	"github.com/scoir/studybits/pkg/schema"
)

var diploma = schema.NewVersion("Diploma", "1.0")

type holderCtx struct {
	store     *dsmocks.Store
	wallet    *mocks.Wallet
	onboarder *mocks.Onboarder
	client    *mocks.UniversityClient
	others    map[string]*mocks.UniversityClient
}

func newHolderCtx() *holderCtx {
	return &holderCtx{
		store:     &dsmocks.Store{},
		wallet:    &mocks.Wallet{},
		onboarder: &mocks.Onboarder{},
		client:    &mocks.UniversityClient{},
		others:    map[string]*mocks.UniversityClient{},
	}
}

func (r *holderCtx) GetDatastore() datastore.Store { return r.store }
func (r *holderCtx) GetHolderWallet() Wallet       { return r.wallet }
func (r *holderCtx) GetOnboarder() Onboarder       { return r.onboarder }
func (r *holderCtx) GetHolderClient(u *datastore.University) UniversityClient {
	if c, ok := r.others[u.Name]; ok {
		return c
	}
	return r.client
}

func (r *holderCtx) knows(student *datastore.Student, u *datastore.University) {
	r.store.On("GetStudentByUserName", "", student.UserName).Return(student, nil)
	r.store.On("GetUniversityByName", u.Name).Return(u, nil)
}

var (
	jdoe  = &datastore.Student{ID: "s1", UserName: "jdoe", FirstName: "Jane", LastName: "Doe", SSN: "123"}
	faber = &datastore.University{ID: "u1", Name: "Faber College", Endpoint: "http://faber"}
	conn  = &datastore.ConnectionRecord{
		ID: "c1", StudentID: "s1", UniversityID: "u1", State: datastore.ConnectionCompleted,
		MyDID: "did:student", MyVerkey: "verkey:student", TheirDID: "did:university", TheirVerkey: "verkey:university",
	}
)

func TestHolder_LoadUniversities(t *testing.T) {
	ctx := newHolderCtx()
	ctx.store.On("GetUniversityByName", "Faber College").Return(faber, nil)
	ctx.store.On("GetUniversityByName", "Acme University").Return(nil, datastore.ErrNotFound)
	ctx.store.On("InsertUniversity", &datastore.University{Name: "Acme University", Endpoint: "http://acme"}).Return("u2", nil)

	err := New(ctx).LoadUniversities([]*framework.RemoteUniversity{
		{Name: "Faber College", Endpoint: "http://faber"},
		{Name: "Acme University", Endpoint: "http://acme"},
	})
	require.NoError(t, err)
	ctx.store.AssertNumberOfCalls(t, "InsertUniversity", 1)
}

func TestHolder_CreateStudent(t *testing.T) {
	t.Run("new", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(nil, datastore.ErrNotFound)
		ctx.store.On("InsertStudent", mock.AnythingOfType("*datastore.Student")).Return("s1", nil)

		s, err := New(ctx).CreateStudent(&datastore.Student{UserName: "jdoe", UniversityID: "u1"})
		require.NoError(t, err)
		require.Empty(t, s.UniversityID)
	})

	t.Run("existing", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(jdoe, nil)

		s, err := New(ctx).CreateStudent(&datastore.Student{UserName: "jdoe"})
		require.NoError(t, err)
		require.Equal(t, jdoe, s)
		ctx.store.AssertNotCalled(t, "InsertStudent", mock.Anything)
	})

	t.Run("no user name", func(t *testing.T) {
		_, err := New(newHolderCtx()).CreateStudent(&datastore.Student{})
		require.Error(t, err)
	})
}

func TestHolder_Register(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.knows(jdoe, faber)
		ctx.client.On("RegisterStudent", mock.Anything, &university.StudentRegistration{
			UserName: "jdoe", FirstName: "Jane", LastName: "Doe", SSN: "123",
		}).Return(nil)

		require.NoError(t, New(ctx).Register(context.Background(), "jdoe", "Faber College"))
	})

	t.Run("unknown university", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(jdoe, nil)
		ctx.store.On("GetUniversityByName", "Nowhere").Return(nil, datastore.ErrNotFound)

		err := New(ctx).Register(context.Background(), "jdoe", "Nowhere")
		require.True(t, errors.Is(err, ErrUnknownUniversity))
	})

	t.Run("unknown student", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "nobody").Return(nil, datastore.ErrNotFound)

		err := New(ctx).Register(context.Background(), "nobody", "Faber College")
		require.True(t, errors.Is(err, ErrUnknownStudent))
	})
}

func TestHolder_Enroll(t *testing.T) {
	t.Run("profile from university record", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(nil, datastore.ErrNotFound)
		ctx.store.On("GetUniversityByName", "Faber College").Return(faber, nil)
		ctx.client.On("GetStudent", mock.Anything, "jdoe").Return(&university.StudentInfo{
			UserName: "jdoe", FirstName: "Jane", LastName: "Doe",
		}, nil)
		ctx.store.On("InsertStudent", mock.MatchedBy(func(s *datastore.Student) bool {
			return s.UserName == "jdoe" && s.FirstName == "Jane" && s.LastName == "Doe" && s.UniversityID == ""
		})).Return("s1", nil)
		ctx.onboarder.On("Onboard", mock.Anything, mock.AnythingOfType("*datastore.Student"), faber).Return(conn, nil)

		s, err := New(ctx).Enroll(context.Background(), "jdoe", "Faber College")
		require.NoError(t, err)
		require.Equal(t, "Jane", s.FirstName)
		ctx.store.AssertExpectations(t)
		ctx.onboarder.AssertExpectations(t)
	})

	t.Run("already a student", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(jdoe, nil)

		_, err := New(ctx).Enroll(context.Background(), "jdoe", "Faber College")
		require.True(t, errors.Is(err, ErrStudentExists))
		ctx.client.AssertNotCalled(t, "GetStudent", mock.Anything, mock.Anything)
	})

	t.Run("university does not know the student", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(nil, datastore.ErrNotFound)
		ctx.store.On("GetUniversityByName", "Faber College").Return(faber, nil)
		ctx.client.On("GetStudent", mock.Anything, "jdoe").Return(nil, errors.Wrap(university.ErrTransport, "404"))

		_, err := New(ctx).Enroll(context.Background(), "jdoe", "Faber College")
		require.True(t, errors.Is(err, university.ErrTransport))
		ctx.store.AssertNotCalled(t, "InsertStudent", mock.Anything)
		ctx.onboarder.AssertNotCalled(t, "Onboard", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHolder_Onboard(t *testing.T) {
	ctx := newHolderCtx()
	ctx.knows(jdoe, faber)
	ctx.onboarder.On("Onboard", mock.Anything, jdoe, faber).Return(conn, nil)

	record, err := New(ctx).Onboard(context.Background(), "jdoe", "Faber College")
	require.NoError(t, err)
	require.Equal(t, conn, record)
}

func proofRequestJSON(t *testing.T, nonce, theirDID string) []byte {
	d, err := json.Marshal(&schema.ProofRequest{
		Name:     "Diploma",
		Version:  "1.0",
		Nonce:    nonce,
		TheirDID: theirDID,
		RequestedAttributes: map[string]*schema.AttributeInfo{
			"degree": {Name: "degree"},
		},
	})
	require.NoError(t, err)
	return d
}

func TestHolder_SyncProofRequests(t *testing.T) {
	open := []*university.OpenRequest{{ID: "r1", Name: "Diploma", Version: "1.0"}, {ID: "r2", Name: "Diploma", Version: "1.0"}}

	t.Run("saves new requests", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.knows(jdoe, faber)
		ctx.store.On("GetConnectionRecord", "s1", "u1").Return(conn, nil)
		ctx.client.On("ListProofRequests", mock.Anything, diploma, "jdoe").Return(open, nil)
		ctx.client.On("GetProofRequest", mock.Anything, diploma, "jdoe", "r1").
			Return(&schema.AuthcryptedMessage{Message: []byte("one"), DID: "did:university"}, nil)
		ctx.client.On("GetProofRequest", mock.Anything, diploma, "jdoe", "r2").
			Return(&schema.AuthcryptedMessage{Message: []byte("two"), DID: "did:university"}, nil)
		ctx.wallet.On("AuthDecrypt", "s1", "verkey:student", "verkey:university", []byte("one")).
			Return(proofRequestJSON(t, "1111111111222222222233333333", "did:student"), nil)
		ctx.wallet.On("AuthDecrypt", "s1", "verkey:student", "verkey:university", []byte("two")).
			Return(proofRequestJSON(t, "4444444444555555555566666666", "did:student"), nil)
		ctx.store.On("SaveProofRequestIfNew", mock.MatchedBy(func(p *datastore.ReceivedProofRequest) bool {
			return p.ID == "r1" && p.Nonce == "1111111111222222222233333333" && p.UniversityID == "u1"
		})).Return(true, nil)
		ctx.store.On("SaveProofRequestIfNew", mock.MatchedBy(func(p *datastore.ReceivedProofRequest) bool {
			return p.ID == "r2"
		})).Return(false, nil)

		saved, err := New(ctx).SyncProofRequests(context.Background(), "jdoe", "Faber College", diploma)
		require.NoError(t, err)
		require.Equal(t, 1, saved)
	})

	t.Run("not connected", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.knows(jdoe, faber)
		ctx.store.On("GetConnectionRecord", "s1", "u1").Return(&datastore.ConnectionRecord{State: datastore.ConnectionPending}, nil)

		_, err := New(ctx).SyncProofRequests(context.Background(), "jdoe", "Faber College", diploma)
		require.True(t, errors.Is(err, ErrNotConnected))
		ctx.client.AssertNotCalled(t, "ListProofRequests", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("foreign sender", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.knows(jdoe, faber)
		ctx.store.On("GetConnectionRecord", "s1", "u1").Return(conn, nil)
		ctx.client.On("ListProofRequests", mock.Anything, diploma, "jdoe").Return(open[:1], nil)
		ctx.client.On("GetProofRequest", mock.Anything, diploma, "jdoe", "r1").
			Return(&schema.AuthcryptedMessage{Message: []byte("one"), DID: "did:mallory"}, nil)

		_, err := New(ctx).SyncProofRequests(context.Background(), "jdoe", "Faber College", diploma)
		require.True(t, errors.Is(err, ErrUnexpectedSender))
		ctx.wallet.AssertNotCalled(t, "AuthDecrypt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("addressed to someone else", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.knows(jdoe, faber)
		ctx.store.On("GetConnectionRecord", "s1", "u1").Return(conn, nil)
		ctx.client.On("ListProofRequests", mock.Anything, diploma, "jdoe").Return(open[:1], nil)
		ctx.client.On("GetProofRequest", mock.Anything, diploma, "jdoe", "r1").
			Return(&schema.AuthcryptedMessage{Message: []byte("one"), DID: "did:university"}, nil)
		ctx.wallet.On("AuthDecrypt", "s1", "verkey:student", "verkey:university", []byte("one")).
			Return(proofRequestJSON(t, "1111111111222222222233333333", "did:other"), nil)

		_, err := New(ctx).SyncProofRequests(context.Background(), "jdoe", "Faber College", diploma)
		require.Error(t, err)
		require.Contains(t, err.Error(), "addressed to did:other")
		ctx.store.AssertNotCalled(t, "SaveProofRequestIfNew", mock.Anything)
	})
}

func TestHolder_SubmitProof(t *testing.T) {
	stored := []*datastore.ReceivedProofRequest{{ID: "r1", StudentID: "s1", UniversityID: "u1", Name: "Diploma", Version: "1.0"}}
	proof := &schema.IndyProof{Proof: json.RawMessage(`{"proofs":[]}`)}

	t.Run("accepted", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(jdoe, nil)
		ctx.store.On("ListProofRequests", "s1").Return(stored, nil)
		ctx.store.On("GetUniversity", "u1").Return(faber, nil)
		ctx.store.On("GetConnectionRecord", "s1", "u1").Return(conn, nil)
		ctx.wallet.On("AuthEncrypt", "s1", "verkey:student", "verkey:university", mock.Anything).Return([]byte("sealed"), nil)
		ctx.client.On("SubmitProof", mock.Anything, diploma, "jdoe", "r1",
			&schema.AuthcryptedMessage{Message: []byte("sealed"), DID: "did:student"}).Return(true, nil)

		accepted, err := New(ctx).SubmitProof(context.Background(), "jdoe", "r1", proof)
		require.NoError(t, err)
		require.True(t, accepted)
	})

	t.Run("unknown request", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "jdoe").Return(jdoe, nil)
		ctx.store.On("ListProofRequests", "s1").Return(stored, nil)

		_, err := New(ctx).SubmitProof(context.Background(), "jdoe", "r9", proof)
		require.True(t, errors.Is(err, ErrUnknownRequest))
	})
}

var acme = &datastore.University{ID: "u2", Name: "Acme University", Endpoint: "http://acme"}

func (r *holderCtx) connectedToFaberOnly() {
	r.store.On("GetStudentByUserName", "", "jdoe").Return(jdoe, nil)
	r.store.On("ListUniversities").Return([]*datastore.University{faber, acme}, nil)
	r.store.On("GetConnectionRecord", "s1", "u1").Return(conn, nil)
	r.store.On("GetConnectionRecord", "s1", "u2").Return(nil, datastore.ErrNotFound)
}

func TestHolder_SyncExchangePositions(t *testing.T) {
	remote := []*university.ExchangePosition{
		{ProofRecordID: "r1", FirstName: "Jane", Degree: "Bachelor of Arts", Status: "accepted"},
		{ProofRecordID: "r2", FirstName: "Jane", Degree: "Computer Science", Status: "applied"},
	}

	t.Run("saves new positions of connected universities", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.connectedToFaberOnly()
		ctx.others[acme.Name] = &mocks.UniversityClient{}
		ctx.client.On("ListExchangePositions", mock.Anything, "jdoe").Return(remote, nil)
		ctx.store.On("InsertExchangePosition", mock.MatchedBy(func(p *datastore.ExchangePosition) bool {
			return p.UniversityID == "u1" && p.StudentID == "s1"
		})).Return(func(p *datastore.ExchangePosition) string {
			if p.ProofRecordID == "r1" {
				return p.ID
			}
			return "seen-before"
		}, nil)

		saved, err := New(ctx).SyncExchangePositions(context.Background(), "jdoe")
		require.NoError(t, err)
		require.Equal(t, 1, saved)
		ctx.store.AssertNumberOfCalls(t, "InsertExchangePosition", 2)
		ctx.others[acme.Name].AssertNotCalled(t, "ListExchangePositions", mock.Anything, mock.Anything)
	})

	t.Run("university unreachable", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.connectedToFaberOnly()
		ctx.client.On("ListExchangePositions", mock.Anything, "jdoe").Return(nil, university.ErrTransport)

		_, err := New(ctx).SyncExchangePositions(context.Background(), "jdoe")
		require.True(t, errors.Is(err, university.ErrTransport))
		ctx.store.AssertNotCalled(t, "InsertExchangePosition", mock.Anything)
	})

	t.Run("unknown student", func(t *testing.T) {
		ctx := newHolderCtx()
		ctx.store.On("GetStudentByUserName", "", "nobody").Return(nil, datastore.ErrNotFound)

		_, err := New(ctx).SyncExchangePositions(context.Background(), "nobody")
		require.True(t, errors.Is(err, ErrUnknownStudent))
	})
}

func TestHolder_ExchangePositions(t *testing.T) {
	ctx := newHolderCtx()
	ctx.connectedToFaberOnly()
	ctx.store.On("ListExchangePositions", "u1").Return([]*datastore.ExchangePosition{
		{ID: "p1", UniversityID: "u1", StudentID: "s1", ProofRecordID: "r1"},
		{ID: "p2", UniversityID: "u1", StudentID: "s9", ProofRecordID: "r7"},
	}, nil)

	positions, err := New(ctx).ExchangePositions("jdoe")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	require.Equal(t, "p1", positions[0].ID)
	ctx.store.AssertNotCalled(t, "ListExchangePositions", "u2")
}
