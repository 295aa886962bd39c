package university

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scoir/studybits/pkg/schema"
)

func TestClient_BeginOnboarding(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "/onboarding/jdoe/begin", req.URL.Path)
			_, _ = w.Write([]byte(`{"did":"did:u","verkey":"vk","request_nonce":"n1","label":"Faber College"}`))
		}))
		defer srv.Close()

		target := New(srv.URL + "/")
		req, err := target.BeginOnboarding(context.Background(), "jdoe")
		require.NoError(t, err)
		require.Equal(t, &schema.ConnectionRequest{DID: "did:u", Verkey: "vk", RequestNonce: "n1", Label: "Faber College"}, req)
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown student jdoe"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL).BeginOnboarding(context.Background(), "jdoe")
		require.True(t, errors.Is(err, ErrTransport))
		require.Contains(t, err.Error(), "unknown student jdoe")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		u := srv.URL
		srv.Close()

		_, err := New(u).BeginOnboarding(context.Background(), "jdoe")
		require.True(t, errors.Is(err, ErrTransport))
	})

	t.Run("cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(srv.URL).BeginOnboarding(ctx, "jdoe")
		require.True(t, errors.Is(err, ErrTransport))
	})
}

func TestClient_FinalizeOnboarding(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			require.Equal(t, http.MethodPost, req.Method)
			require.Equal(t, "/onboarding/jdoe/finalize", req.URL.Path)
			require.Equal(t, "application/json", req.Header.Get("Content-Type"))

			msg := &schema.AnoncryptedMessage{}
			d, _ := ioutil.ReadAll(req.Body)
			require.NoError(t, json.Unmarshal(d, msg))
			require.Equal(t, []byte("sealed"), msg.Message)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := New(srv.URL).FinalizeOnboarding(context.Background(), "jdoe", &schema.AnoncryptedMessage{Message: []byte("sealed")})
		require.NoError(t, err)
	})

	t.Run("rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		err := New(srv.URL).FinalizeOnboarding(context.Background(), "jdoe", &schema.AnoncryptedMessage{})
		require.True(t, errors.Is(err, ErrTransport))
	})
}

func TestClient_Proofs(t *testing.T) {
	v := schema.NewVersion("Diploma", "1.0")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/proofs/Diploma/1.0/jdoe":
			if req.Method == http.MethodGet {
				_, _ = w.Write([]byte(`[{"id":"r1","name":"Diploma","version":"1.0","attributes":["Degree"]}]`))
				return
			}
		case "/proofs/Diploma/1.0/jdoe/r1/request":
			_, _ = w.Write([]byte(`{"message":"Y2lwaGVy","did":"did:u"}`))
			return
		case "/proofs/Diploma/1.0/jdoe/r1":
			_, _ = w.Write([]byte(`{"accepted":true}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	target := New(srv.URL)
	open, err := target.ListProofRequests(context.Background(), v, "jdoe")
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, "r1", open[0].ID)

	msg, err := target.GetProofRequest(context.Background(), v, "jdoe", "r1")
	require.NoError(t, err)
	require.Equal(t, []byte("cipher"), msg.Message)
	require.Equal(t, "did:u", msg.DID)

	accepted, err := target.SubmitProof(context.Background(), v, "jdoe", "r1", msg)
	require.NoError(t, err)
	require.True(t, accepted)

	_, err = target.ListProofRequests(context.Background(), schema.NewVersion("Transcript", "1.0"), "jdoe")
	require.True(t, errors.Is(err, ErrTransport))
}

func TestClient_RegisterStudent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/students", req.URL.Path)
		reg := &StudentRegistration{}
		d, _ := ioutil.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(d, reg))
		require.Equal(t, "jdoe", reg.UserName)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s1"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).RegisterStudent(context.Background(), &StudentRegistration{UserName: "jdoe", FirstName: "John"})
	require.NoError(t, err)
}

func TestClient_Students(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, http.MethodGet, req.Method)
		switch req.URL.Path {
		case "/students/jdoe":
			_, _ = w.Write([]byte(`{"userName":"jdoe","firstName":"Jane","lastName":"Doe","connected":true}`))
		case "/students/jdoe/positions":
			_, _ = w.Write([]byte(`[{"proofRecordId":"r1","firstName":"Jane","lastName":"Doe","degree":"Bachelor of Arts","status":"accepted"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"student nobody: not found"}`))
		}
	}))
	defer srv.Close()
	target := New(srv.URL)

	t.Run("student info", func(t *testing.T) {
		info, err := target.GetStudent(context.Background(), "jdoe")
		require.NoError(t, err)
		require.Equal(t, &StudentInfo{UserName: "jdoe", FirstName: "Jane", LastName: "Doe", Connected: true}, info)
	})

	t.Run("exchange positions", func(t *testing.T) {
		positions, err := target.ListExchangePositions(context.Background(), "jdoe")
		require.NoError(t, err)
		require.Equal(t, []*ExchangePosition{{
			ProofRecordID: "r1", FirstName: "Jane", LastName: "Doe", Degree: "Bachelor of Arts", Status: "accepted",
		}}, positions)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := target.GetStudent(context.Background(), "nobody")
		require.True(t, errors.Is(err, ErrTransport))
		require.Contains(t, err.Error(), "not found")
	})
}
