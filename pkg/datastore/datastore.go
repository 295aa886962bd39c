/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package datastore

import (
	"github.com/pkg/errors"
)

const (
	UniversityC       = "University"
	StudentC          = "Student"
	ClaimSchemaC      = "ClaimSchema"
	ProofRecordC      = "ProofRecord"
	WalletC           = "Wallet"
	ExchangePositionC = "ExchangePosition"
	WebhookC          = "Webhook"
	ConnectionC       = "ConnectionRecord"
	ProofRequestC     = "ReceivedProofRequest"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrProofAlreadyProvided = errors.New("proof already provided")
)

// Provider storage provider interface
type Provider interface {
	// OpenStore opens a store with given name space and returns the handle
	OpenStore(name string) (Store, error)

	// CloseStore closes store of given name space
	CloseStore(name string) error

	// Close closes all stores created under this store provider
	Close() error
}

//go:generate mockery -name=Store
type Store interface {
	InsertUniversity(u *University) (string, error)
	GetUniversity(id string) (*University, error)
	GetUniversityByName(name string) (*University, error)
	ListUniversities() ([]*University, error)

	InsertStudent(s *Student) (string, error)
	GetStudent(id string) (*Student, error)
	GetStudentByUserName(universityID, userName string) (*Student, error)
	ListStudents(universityID string) ([]*Student, error)
	UpdateStudent(s *Student) error
	DeleteStudent(id string) error

	InsertClaimSchema(s *ClaimSchema) (string, error)
	FindClaimSchema(universityID, name, version string) (*ClaimSchema, error)

	InsertProofRecord(r *ProofRecord) (string, error)
	GetProofRecord(id string) (*ProofRecord, error)
	ListOpenProofRecords(studentID, proofName string) ([]*ProofRecord, error)
	// CompleteProofRecord stores proofJSON only if the record has none yet.
	// It returns ErrProofAlreadyProvided when the record was already completed.
	CompleteProofRecord(id, proofJSON string) error

	InsertWallet(w *WalletRecord) error
	GetWallet(ownerID string) (*WalletRecord, error)
	UpdateWallet(w *WalletRecord) error

	// InsertExchangePosition is idempotent per university and proof record. It returns the ID of the stored position.
	InsertExchangePosition(p *ExchangePosition) (string, error)
	ListExchangePositions(universityID string) ([]*ExchangePosition, error)

	InsertWebhook(w *Webhook) error
	ListWebhooks(topic string) ([]*Webhook, error)

	InsertConnectionRecord(c *ConnectionRecord) (string, error)
	GetConnectionRecord(studentID, universityID string) (*ConnectionRecord, error)
	UpdateConnectionRecord(c *ConnectionRecord) error

	// SaveProofRequestIfNew returns false when a request with the same university and nonce exists.
	SaveProofRequestIfNew(r *ReceivedProofRequest) (bool, error)
	ListProofRequests(studentID string) ([]*ReceivedProofRequest, error)
}
