package presentproof

import "github.com/pkg/errors"

// Precondition failures. None of them mutate state.
var (
	ErrNoConnection    = errors.New("user has no established connection")
	ErrProofMismatch   = errors.New("proof name/version mismatch")
	ErrAlreadyProvided = errors.New("already provided proof")
	ErrUnknownUser     = errors.New("unknown user")
	ErrNoProof         = errors.New("no proof stored for record")
)

// ErrNoIssuer is a configuration failure: a requested attribute has no trusted issuer.
var ErrNoIssuer = errors.New("no issuer found for field")

// ErrVerification covers decrypt failures and proofs that do not satisfy the request.
var ErrVerification = errors.New("proof verification failed")

// IsPrecondition reports whether err was caused by a failed precondition.
func IsPrecondition(err error) bool {
	switch errors.Cause(err) {
	case ErrNoConnection, ErrProofMismatch, ErrAlreadyProvided, ErrUnknownUser, ErrNoProof:
		return true
	}
	return false
}
