/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package datastore

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type University struct {
	ID       string
	Name     string
	Endpoint string
}

// Student is the holder as known to one university, and to the student agent itself.
type Student struct {
	ID           string
	UserName     string
	FirstName    string
	LastName     string
	SSN          string
	UniversityID string
	Connection   *Connection
	Pending      *PendingConnection
}

func (r *Student) HasConnection() bool {
	return r.Connection != nil && r.Connection.TheirDID != ""
}

// Connection is a pairwise DID relationship established by the handshake.
type Connection struct {
	MyDID       string
	MyVerkey    string
	TheirDID    string
	TheirVerkey string
}

// PendingConnection is the university's half of a handshake that has begun but not finalized.
type PendingConnection struct {
	MyDID        string
	MyVerkey     string
	RequestNonce string
}

type ClaimIssuer struct {
	Name string
	DID  string
}

type ClaimSchema struct {
	ID            string
	UniversityID  string
	SchemaName    string
	SchemaVersion string
	Attributes    []string
	ClaimIssuers  []*ClaimIssuer
}

type ProofRecord struct {
	ID           string
	StudentID    string
	ProofName    string
	ProofVersion string
	Nonce        string
	ProofJSON    *string
}

func (r *ProofRecord) Provided() bool {
	return r.ProofJSON != nil
}

type WalletRecord struct {
	ID      string
	OwnerID string
	Sealed  []byte
}

type ExchangePosition struct {
	ID            string
	UniversityID  string
	StudentID     string
	ProofRecordID string
	FirstName     string
	LastName      string
	Degree        string
	Status        string
}

type Webhook struct {
	Type string
	URL  string
}

// ConnectionRecord is the student agent's record of a connection with a university.
type ConnectionRecord struct {
	ID           string
	StudentID    string
	UniversityID string
	RequestNonce string
	MyDID        string
	MyVerkey     string
	TheirDID     string
	TheirVerkey  string
	State        string
}

const (
	ConnectionPending   = "pending"
	ConnectionCompleted = "completed"
)

// ReceivedProofRequest is a proof request the student agent fetched from a university.
type ReceivedProofRequest struct {
	ID           string
	StudentID    string
	UniversityID string
	Name         string
	Version      string
	Nonce        string
	Request      []byte
}

func jsonValue(d interface{}) (driver.Value, error) {
	return json.Marshal(d)
}

func jsonScan(value interface{}, d interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(b, d)
}

// Value implements driver.Valuer
func (r University) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *University) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r Student) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *Student) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r ClaimSchema) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *ClaimSchema) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r ProofRecord) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *ProofRecord) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r WalletRecord) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *WalletRecord) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r ExchangePosition) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *ExchangePosition) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r Webhook) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *Webhook) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r ConnectionRecord) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *ConnectionRecord) Scan(value interface{}) error { return jsonScan(value, r) }

// Value implements driver.Valuer
func (r ReceivedProofRequest) Value() (driver.Value, error) { return jsonValue(r) }

// Scan implements the sql.Scanner
func (r *ReceivedProofRequest) Scan(value interface{}) error { return jsonScan(value, r) }
