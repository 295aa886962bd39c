/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentproof

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/scoir/studybits/pkg/amqp"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/notifier"
	"github.com/scoir/studybits/pkg/schema"
)

//go:generate mockery -name=Wallet
type Wallet interface {
	AuthEncrypt(ownerID, myVerkey, theirVerkey string, msg []byte) ([]byte, error)
	AuthDecrypt(ownerID, myVerkey, theirVerkey string, msg []byte) ([]byte, error)
}

//go:generate mockery -name=Verifier
type Verifier interface {
	Verify(req *schema.ProofRequest, proof *schema.IndyProof) ([]*schema.Attr, error)
}

type provider interface {
	GetDatastore() datastore.Store
	GetWallet() Wallet
	GetVerifier() Verifier
	GetPublisher() amqp.Publisher
	GetNonceOracle() NonceOracle
	GetUniversity() *datastore.University
}

// OpenRequest summarizes a proof record still waiting for a proof.
type OpenRequest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Attributes []string `json:"attributes"`
}

// Service runs the proof exchange for a single proof type at a single university.
type Service struct {
	pt         *ProofType
	store      datastore.Store
	university *datastore.University
	wallet     Wallet
	verifier   Verifier
	publisher  amqp.Publisher
	nonces     NonceOracle
	log        *log.Entry
}

func NewService(ctx provider, pt *ProofType) *Service {
	return &Service{
		pt:         pt,
		store:      ctx.GetDatastore(),
		university: ctx.GetUniversity(),
		wallet:     ctx.GetWallet(),
		verifier:   ctx.GetVerifier(),
		publisher:  ctx.GetPublisher(),
		nonces:     ctx.GetNonceOracle(),
		log: log.WithFields(log.Fields{
			"component": "presentproof",
			"proofType": pt.Version().String(),
		}),
	}
}

func (r *Service) ProofType() *ProofType {
	return r.pt
}

// AddProofRequest creates a new record awaiting a proof from the student.
func (r *Service) AddProofRequest(studentID string) (*datastore.ProofRecord, error) {
	student, err := r.student(studentID)
	if err != nil {
		return nil, err
	}

	nonce, err := r.nonces.Nonce()
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate proof request nonce")
	}

	v := r.pt.Version()
	record := &datastore.ProofRecord{
		ID:           uuid.New().String(),
		StudentID:    student.ID,
		ProofName:    v.Name,
		ProofVersion: v.Version,
		Nonce:        nonce,
	}

	_, err = r.store.InsertProofRecord(record)
	if err != nil {
		return nil, errors.Wrap(err, "unable to save proof record")
	}

	r.log.WithFields(log.Fields{"student": student.ID, "record": record.ID}).Info("proof requested")
	return record, nil
}

// GetProofRecord loads a record and checks it belongs to this proof type.
func (r *Service) GetProofRecord(id string) (*datastore.ProofRecord, error) {
	record, err := r.store.GetProofRecord(id)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load proof record %s", id)
	}

	if schema.NewVersion(record.ProofName, record.ProofVersion) != r.pt.Version() {
		return nil, errors.Wrapf(ErrProofMismatch, "record %s is %s:%s, expected %s", id,
			record.ProofName, record.ProofVersion, r.pt.Version())
	}

	return record, nil
}

// FindProofRequests lists the student's records of this proof type that have no proof yet.
func (r *Service) FindProofRequests(studentID string) ([]*OpenRequest, error) {
	student, err := r.student(studentID)
	if err != nil {
		return nil, err
	}

	records, err := r.store.ListOpenProofRecords(student.ID, r.pt.Version().Name)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list open proof records")
	}

	out := make([]*OpenRequest, 0, len(records))
	for _, record := range records {
		if record.ProofVersion != r.pt.Version().Version {
			continue
		}
		out = append(out, &OpenRequest{
			ID:         record.ID,
			Name:       record.ProofName,
			Version:    record.ProofVersion,
			Attributes: r.pt.AttributeNames(),
		})
	}

	return out, nil
}

// GetProofRequestMessage authcrypts the proof request for a record to the student's connection.
func (r *Service) GetProofRequestMessage(studentID, recordID string) (*schema.AuthcryptedMessage, error) {
	student, record, err := r.load(studentID, recordID)
	if err != nil {
		return nil, err
	}

	req, err := BuildProofRequest(r.store, r.pt, r.university, student, record)
	if err != nil {
		return nil, err
	}

	d, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal proof request")
	}

	conn := student.Connection
	msg, err := r.wallet.AuthEncrypt(r.university.ID, conn.MyVerkey, conn.TheirVerkey, d)
	if err != nil {
		return nil, errors.Wrap(err, "unable to authcrypt proof request")
	}

	return &schema.AuthcryptedMessage{Message: msg, DID: conn.MyDID}, nil
}

// HandleProof verifies a proof submitted for a record and, when the proof type accepts it, stores it.
// A rejected or failed proof leaves the record open. The proof type's commit runs only after the
// proof is stored, so a lost race or a store failure applies nothing.
func (r *Service) HandleProof(proverID, recordID string, msg *schema.AuthcryptedMessage) (bool, error) {
	student, record, err := r.load(proverID, recordID)
	if err != nil {
		return false, err
	}
	logger := r.log.WithFields(log.Fields{"student": student.ID, "record": record.ID})

	req, err := BuildProofRequest(r.store, r.pt, r.university, student, record)
	if err != nil {
		return false, err
	}

	attrs, err := r.verify(student.Connection, req, msg)
	if err != nil {
		logger.WithError(err).Warn("proof failed verification")
		return false, err
	}

	result := r.pt.NewResult()
	for _, attr := range attrs {
		err = result.SetAttribute(attr.Name, attr.Value)
		if err != nil {
			return false, errors.Wrapf(err, "unable to set attribute %s", attr.Name)
		}
	}

	proofJSON, err := json.Marshal(result)
	if err != nil {
		return false, errors.Wrap(err, "unable to marshal proof result")
	}

	accepted, err := r.pt.Handle()(student, record, result)
	if err != nil {
		return false, errors.Wrap(err, "proof handler failed")
	}

	if !accepted {
		logger.Warn("proof rejected by handler")
		r.notify(notifier.ProofRejectedEvent, student, record)
		return false, nil
	}

	err = r.store.CompleteProofRecord(record.ID, string(proofJSON))
	if errors.Is(err, datastore.ErrProofAlreadyProvided) {
		return false, errors.Wrapf(ErrAlreadyProvided, "record %s", record.ID)
	}
	if err != nil {
		return false, errors.Wrap(err, "unable to save proof")
	}

	err = r.pt.Commit(student, record, result)
	if err != nil {
		logger.WithError(err).Error("proof stored but not applied")
		return true, errors.Wrap(err, "unable to apply accepted proof")
	}

	logger.Info("proof verified")
	r.notify(notifier.ProofVerifiedEvent, student, record)

	return true, nil
}

// GetProof decodes the stored proof of a completed record.
func (r *Service) GetProof(studentID, recordID string) (Result, error) {
	student, err := r.student(studentID)
	if err != nil {
		return nil, err
	}

	record, err := r.GetProofRecord(recordID)
	if err != nil {
		return nil, err
	}

	if record.StudentID != student.ID {
		return nil, errors.Wrapf(ErrProofMismatch, "record %s does not belong to %s", recordID, studentID)
	}

	if !record.Provided() {
		return nil, errors.Wrapf(ErrNoProof, "record %s", recordID)
	}

	result := r.pt.NewResult()
	err = json.Unmarshal([]byte(*record.ProofJSON), result)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode stored proof")
	}

	return result, nil
}

func (r *Service) verify(conn *datastore.Connection, req *schema.ProofRequest, msg *schema.AuthcryptedMessage) ([]*schema.Attr, error) {
	if msg == nil || len(msg.Message) == 0 {
		return nil, errors.Wrap(ErrVerification, "empty proof message")
	}

	d, err := r.wallet.AuthDecrypt(r.university.ID, conn.MyVerkey, conn.TheirVerkey, msg.Message)
	if err != nil {
		return nil, errors.Wrapf(ErrVerification, "unable to decrypt proof: %v", err)
	}

	proof := &schema.IndyProof{}
	err = json.Unmarshal(d, proof)
	if err != nil {
		return nil, errors.Wrapf(ErrVerification, "invalid proof: %v", err)
	}

	attrs, err := r.verifier.Verify(req, proof)
	if err != nil {
		return nil, errors.Wrapf(ErrVerification, "%v", err)
	}

	return attrs, nil
}

// load resolves the student and an open record of theirs, in that order.
func (r *Service) load(studentID, recordID string) (*datastore.Student, *datastore.ProofRecord, error) {
	student, err := r.student(studentID)
	if err != nil {
		return nil, nil, err
	}

	if !student.HasConnection() {
		return nil, nil, errors.Wrapf(ErrNoConnection, "student %s", studentID)
	}

	record, err := r.GetProofRecord(recordID)
	if err != nil {
		return nil, nil, err
	}

	if record.StudentID != student.ID {
		return nil, nil, errors.Wrapf(ErrProofMismatch, "record %s does not belong to %s", recordID, studentID)
	}

	if record.Provided() {
		return nil, nil, errors.Wrapf(ErrAlreadyProvided, "record %s", recordID)
	}

	return student, record, nil
}

func (r *Service) student(id string) (*datastore.Student, error) {
	student, err := r.store.GetStudent(id)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrapf(ErrUnknownUser, "student %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load student %s", id)
	}

	if student.UniversityID != r.university.ID {
		return nil, errors.Wrapf(ErrUnknownUser, "student %s is not enrolled at %s", id, r.university.Name)
	}

	return student, nil
}

func (r *Service) notify(event string, student *datastore.Student, record *datastore.ProofRecord) {
	if r.publisher == nil {
		return
	}

	err := notifier.Notify(r.publisher, notifier.ProofTopic, event, &notifier.ProofEvent{
		UniversityID:  r.university.ID,
		StudentID:     student.ID,
		ProofRecordID: record.ID,
		ProofName:     record.ProofName,
		ProofVersion:  record.ProofVersion,
	})
	if err != nil {
		r.log.WithError(err).Error("unable to publish proof event")
	}
}
