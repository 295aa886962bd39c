package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/skip2/go-qrcode"
	"goji.io/pat"

	"github.com/scoir/studybits/pkg/schema"
	"github.com/scoir/studybits/pkg/util"
)

func (r *APIServer) beginOnboarding(w http.ResponseWriter, req *http.Request) {
	connReq, err := r.onboarding.Begin(pat.Param(req, "student"))
	if err != nil {
		r.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, connReq)
}

// beginOnboardingQR renders the connection request for a mobile wallet to scan.
func (r *APIServer) beginOnboardingQR(w http.ResponseWriter, req *http.Request) {
	connReq, err := r.onboarding.Begin(pat.Param(req, "student"))
	if err != nil {
		r.writeError(w, err)
		return
	}

	d, err := json.Marshal(connReq)
	if err != nil {
		util.WriteErrorf(w, "unable to marshal connection request: %v", err)
		return
	}

	png, err := qrcode.Encode(string(d), qrcode.Medium, 256)
	if err != nil {
		util.WriteErrorf(w, "unable to render connection request: %v", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (r *APIServer) finalizeOnboarding(w http.ResponseWriter, req *http.Request) {
	msg := &schema.AnoncryptedMessage{}
	err := json.NewDecoder(req.Body).Decode(msg)
	if err != nil {
		util.WriteErrorStatus(w, http.StatusBadRequest, "malformed connection response")
		return
	}

	err = r.onboarding.Finalize(pat.Param(req, "student"), msg)
	if err != nil {
		r.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
