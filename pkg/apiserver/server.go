/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package apiserver

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	goji "goji.io"
	"goji.io/pat"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/framework"
	"github.com/scoir/studybits/pkg/presentproof"
	"github.com/scoir/studybits/pkg/schema"
)

const APIKeyHeaderName = "X-API-Key"

//go:generate mockery -name=Onboarding
type Onboarding interface {
	Begin(userName string) (*schema.ConnectionRequest, error)
	Finalize(userName string, msg *schema.AnoncryptedMessage) error
}

//go:generate mockery -name=ProofService
type ProofService interface {
	AddProofRequest(studentID string) (*datastore.ProofRecord, error)
	FindProofRequests(studentID string) ([]*presentproof.OpenRequest, error)
	GetProofRequestMessage(studentID, recordID string) (*schema.AuthcryptedMessage, error)
	HandleProof(proverID, recordID string, msg *schema.AuthcryptedMessage) (bool, error)
	GetProof(studentID, recordID string) (presentproof.Result, error)
}

type provider interface {
	GetDatastore() datastore.Store
	GetUniversity() *datastore.University
	GetOnboarding() Onboarding
	GetProofService(v schema.Version) (ProofService, error)
}

// APIServer is the HTTP face of a university agent.
type APIServer struct {
	store      datastore.Store
	university *datastore.University
	onboarding Onboarding
	services   func(v schema.Version) (ProofService, error)
	apiToken   string
	log        *log.Entry
}

func New(ctx provider, apiToken string) *APIServer {
	return &APIServer{
		store:      ctx.GetDatastore(),
		university: ctx.GetUniversity(),
		onboarding: ctx.GetOnboarding(),
		services:   ctx.GetProofService,
		apiToken:   apiToken,
		log:        log.WithField("component", "apiserver"),
	}
}

// Handler routes the public onboarding and proof exchange API. Routes under /admin require the API token.
func (r *APIServer) Handler() http.Handler {
	mux := goji.NewMux()

	mux.Handle(pat.Get("/onboarding/:student/begin"), http.HandlerFunc(r.beginOnboarding))
	mux.Handle(pat.Get("/onboarding/:student/begin.png"), http.HandlerFunc(r.beginOnboardingQR))
	mux.Handle(pat.Post("/onboarding/:student/finalize"), http.HandlerFunc(r.finalizeOnboarding))

	mux.Handle(pat.Post("/students"), http.HandlerFunc(r.registerStudent))
	mux.Handle(pat.Get("/students/:student"), http.HandlerFunc(r.getStudent))
	mux.Handle(pat.Get("/students/:student/positions"), http.HandlerFunc(r.listStudentPositions))

	mux.Handle(pat.Post("/proofs/:name/:version/:student"), http.HandlerFunc(r.addProofRequest))
	mux.Handle(pat.Get("/proofs/:name/:version/:student"), http.HandlerFunc(r.findProofRequests))
	mux.Handle(pat.Get("/proofs/:name/:version/:student/:record/request"), http.HandlerFunc(r.getProofRequest))
	mux.Handle(pat.Post("/proofs/:name/:version/:student/:record"), http.HandlerFunc(r.handleProof))
	mux.Handle(pat.Get("/proofs/:name/:version/:student/:record"), http.HandlerFunc(r.getProof))

	admin := goji.SubMux()
	admin.Use(r.tokenAuth)
	admin.Handle(pat.Post("/schemas"), http.HandlerFunc(r.addClaimSchema))
	admin.Handle(pat.Get("/positions"), http.HandlerFunc(r.listPositions))
	admin.Handle(pat.Post("/webhooks"), http.HandlerFunc(r.addWebhook))
	mux.Handle(pat.New("/admin/*"), admin)

	mux.Use(CorsHandler())
	return mux
}

// ListenAndServe blocks serving the API on the configured endpoint.
func (r *APIServer) ListenAndServe(e *framework.Endpoint) error {
	r.log.Infof("university %s listening on %s", r.university.Name, e.Address())
	return http.ListenAndServe(e.Address(), r.Handler())
}

func (r *APIServer) tokenAuth(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		authHeader := req.Header.Get(APIKeyHeaderName)
		if r.apiToken == "" || authHeader == "" {
			http.Error(w, "Not authorized", http.StatusUnauthorized)
			return
		}

		givenToken := sha256.Sum256([]byte(authHeader))
		requiredToken := sha256.Sum256([]byte(r.apiToken))

		if subtle.ConstantTimeCompare(givenToken[:], requiredToken[:]) != 1 {
			http.Error(w, "Not authorized", http.StatusUnauthorized)
			return
		}

		h.ServeHTTP(w, req)
	})
}

func CorsHandler() func(h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", APIKeyHeaderName},
		ExposedHeaders: []string{"Content-Length", "Content-Type"},
	})
	return c.Handler
}
