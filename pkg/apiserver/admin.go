package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/util"
)

type claimIssuer struct {
	Name string `json:"name"`
	DID  string `json:"did"`
}

type claimSchemaRequest struct {
	SchemaName    string         `json:"schemaName"`
	SchemaVersion string         `json:"schemaVersion"`
	Attributes    []string       `json:"attributes"`
	Issuers       []*claimIssuer `json:"issuers"`
}

// addClaimSchema records a credential schema the university trusts along with its issuers.
func (r *APIServer) addClaimSchema(w http.ResponseWriter, req *http.Request) {
	in := &claimSchemaRequest{}
	err := json.NewDecoder(req.Body).Decode(in)
	if err != nil || in.SchemaName == "" || in.SchemaVersion == "" {
		util.WriteErrorStatus(w, http.StatusBadRequest, "schemaName and schemaVersion are required")
		return
	}

	cs := &datastore.ClaimSchema{
		UniversityID:  r.university.ID,
		SchemaName:    in.SchemaName,
		SchemaVersion: in.SchemaVersion,
		Attributes:    in.Attributes,
	}
	for _, i := range in.Issuers {
		if i.DID == "" {
			util.WriteErrorStatus(w, http.StatusBadRequest, "issuer did is required")
			return
		}
		cs.ClaimIssuers = append(cs.ClaimIssuers, &datastore.ClaimIssuer{Name: i.Name, DID: i.DID})
	}

	id, err := r.store.InsertClaimSchema(cs)
	if err != nil {
		r.writeError(w, errors.Wrap(err, "unable to save claim schema"))
		return
	}

	util.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (r *APIServer) listPositions(w http.ResponseWriter, _ *http.Request) {
	positions, err := r.store.ListExchangePositions(r.university.ID)
	if err != nil {
		r.writeError(w, errors.Wrap(err, "unable to list exchange positions"))
		return
	}

	util.WriteJSON(w, http.StatusOK, positionViews(positions))
}

type webhookRequest struct {
	Topic string `json:"topic"`
	URL   string `json:"url"`
}

func (r *APIServer) addWebhook(w http.ResponseWriter, req *http.Request) {
	in := &webhookRequest{}
	err := json.NewDecoder(req.Body).Decode(in)
	if err != nil || in.Topic == "" || in.URL == "" {
		util.WriteErrorStatus(w, http.StatusBadRequest, "topic and url are required")
		return
	}

	err = r.store.InsertWebhook(&datastore.Webhook{Type: in.Topic, URL: in.URL})
	if err != nil {
		r.writeError(w, errors.Wrap(err, "unable to save webhook"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
