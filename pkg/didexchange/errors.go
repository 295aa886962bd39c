package didexchange

import (
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/client/university"
)

var (
	ErrUnknownStudent      = errors.New("unknown student")
	ErrAlreadyConnected    = errors.New("student is already connected")
	ErrNoPendingConnection = errors.New("no pending connection")
	ErrNonceMismatch       = errors.New("connection response does not answer the pending request")
	ErrInvalidResponse     = errors.New("invalid connection response")
)

// ErrTransport is returned when the university cannot be reached or does not answer 2xx.
var ErrTransport = university.ErrTransport
