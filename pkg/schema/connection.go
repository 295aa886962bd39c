/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

// ConnectionRequest is issued by a university when onboarding begins. It carries the
// pairwise identity the university generated for the student.
type ConnectionRequest struct {
	DID          string `json:"did"`
	Verkey       string `json:"verkey"`
	RequestNonce string `json:"request_nonce"`
	Label        string `json:"label,omitempty"`
}

// ConnectionResponse is the student's answer to a ConnectionRequest. It is always sent anoncrypted.
type ConnectionResponse struct {
	DID          string `json:"did"`
	Verkey       string `json:"verkey"`
	RequestNonce string `json:"request_nonce"`
}

type AnoncryptedMessage struct {
	Message []byte `json:"message"`
}

// AuthcryptedMessage carries the sender's pairwise DID next to the ciphertext so the
// receiver can locate the connection whose keys decrypt it.
type AuthcryptedMessage struct {
	Message []byte `json:"message"`
	DID     string `json:"did"`
}
