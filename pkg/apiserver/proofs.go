package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"goji.io/pat"

	"github.com/scoir/studybits/pkg/client/university"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/schema"
	"github.com/scoir/studybits/pkg/util"
)

// proofContext resolves the proof type and student named in the path.
func (r *APIServer) proofContext(req *http.Request) (ProofService, *datastore.Student, error) {
	v := schema.NewVersion(pat.Param(req, "name"), pat.Param(req, "version"))
	svc, err := r.services(v)
	if err != nil {
		return nil, nil, errors.Wrapf(errUnknownProofType, "%s: %v", v, err)
	}

	s, err := r.student(pat.Param(req, "student"))
	if err != nil {
		return nil, nil, err
	}

	return svc, s, nil
}

func (r *APIServer) addProofRequest(w http.ResponseWriter, req *http.Request) {
	svc, s, err := r.proofContext(req)
	if err != nil {
		r.writeError(w, err)
		return
	}

	record, err := svc.AddProofRequest(s.ID)
	if err != nil {
		r.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, &university.OpenRequest{
		ID:      record.ID,
		Name:    record.ProofName,
		Version: record.ProofVersion,
	})
}

func (r *APIServer) findProofRequests(w http.ResponseWriter, req *http.Request) {
	svc, s, err := r.proofContext(req)
	if err != nil {
		r.writeError(w, err)
		return
	}

	open, err := svc.FindProofRequests(s.ID)
	if err != nil {
		r.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, open)
}

func (r *APIServer) getProofRequest(w http.ResponseWriter, req *http.Request) {
	svc, s, err := r.proofContext(req)
	if err != nil {
		r.writeError(w, err)
		return
	}

	msg, err := svc.GetProofRequestMessage(s.ID, pat.Param(req, "record"))
	if err != nil {
		r.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, msg)
}

func (r *APIServer) handleProof(w http.ResponseWriter, req *http.Request) {
	svc, s, err := r.proofContext(req)
	if err != nil {
		r.writeError(w, err)
		return
	}

	msg := &schema.AuthcryptedMessage{}
	err = json.NewDecoder(req.Body).Decode(msg)
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, "malformed proof message")
		return
	}

	accepted, err := svc.HandleProof(s.ID, pat.Param(req, "record"), msg)
	if err != nil {
		r.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, &university.ProofResult{Accepted: accepted})
}

func (r *APIServer) getProof(w http.ResponseWriter, req *http.Request) {
	svc, s, err := r.proofContext(req)
	if err != nil {
		r.writeError(w, err)
		return
	}

	result, err := svc.GetProof(s.ID, pat.Param(req, "record"))
	if err != nil {
		r.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, result)
}
