package apiserver

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/client/university"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/didexchange"
	"github.com/scoir/studybits/pkg/presentproof"
	"github.com/scoir/studybits/pkg/util"
)

var errUnknownProofType = errors.New("unknown proof type")

func statusOf(err error) int {
	switch {
	case errors.Is(err, presentproof.ErrUnknownUser),
		errors.Is(err, didexchange.ErrUnknownStudent),
		errors.Is(err, datastore.ErrNotFound),
		errors.Is(err, errUnknownProofType):
		return http.StatusNotFound
	case errors.Is(err, presentproof.ErrAlreadyProvided),
		errors.Is(err, didexchange.ErrAlreadyConnected):
		return http.StatusConflict
	case presentproof.IsPrecondition(err),
		errors.Is(err, didexchange.ErrNoPendingConnection),
		errors.Is(err, didexchange.ErrNonceMismatch),
		errors.Is(err, didexchange.ErrInvalidResponse):
		return http.StatusBadRequest
	case errors.Is(err, presentproof.ErrVerification):
		return http.StatusUnprocessableEntity
	case errors.Is(err, university.ErrTransport):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func (r *APIServer) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		r.log.WithError(err).Error("request failed")
	} else {
		r.log.WithError(err).Debug("request refused")
	}

	util.WriteErrorStatus(w, status, err.Error())
}
