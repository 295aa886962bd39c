/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didexchange

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

//go:generate mockery -name=UniversityWallet
type UniversityWallet interface {
	CreatePairwiseDID(ownerID string) (string, string, error)
	AnonDecrypt(ownerID, myVerkey string, msg []byte) ([]byte, error)
}

type bouncerProvider interface {
	GetDatastore() datastore.Store
	GetUniversityWallet() UniversityWallet
	GetPublisher() amqp.Publisher
	GetUniversity() *datastore.University
}

// Bouncer runs the university side of onboarding. Only a response to the pending
// request of a student is let in.
type Bouncer struct {
	store      datastore.Store
	wallet     UniversityWallet
	publisher  amqp.Publisher
	university *datastore.University
	log        *log.Entry
}

func NewBouncer(ctx bouncerProvider) *Bouncer {
	return &Bouncer{
		store:      ctx.GetDatastore(),
		wallet:     ctx.GetUniversityWallet(),
		publisher:  ctx.GetPublisher(),
		university: ctx.GetUniversity(),
		log:        log.WithField("component", "bouncer"),
	}
}

// Begin issues a connection request to a student and remembers it as pending. A later
// Begin replaces an unanswered request.
func (r *Bouncer) Begin(userName string) (*schema.ConnectionRequest, error) {
	student, err := r.student(userName)
	if err != nil {
		return nil, err
	}

	if student.HasConnection() {
		return nil, errors.Wrapf(ErrAlreadyConnected, "student %s", userName)
	}

	did, verkey, err := r.wallet.CreatePairwiseDID(r.university.ID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create pairwise did")
	}

	student.Pending = &datastore.PendingConnection{
		MyDID:        did,
		MyVerkey:     verkey,
		RequestNonce: uuid.New().String(),
	}

	err = r.store.UpdateStudent(student)
	if err != nil {
		return nil, errors.Wrap(err, "unable to save pending connection")
	}

	r.log.WithField("student", userName).Debug("onboarding started")

	return &schema.ConnectionRequest{
		DID:          did,
		Verkey:       verkey,
		RequestNonce: student.Pending.RequestNonce,
		Label:        r.university.Name,
	}, nil
}

// Finalize opens the student's anoncrypted response and establishes the connection.
// Nothing is persisted when it fails.
func (r *Bouncer) Finalize(userName string, msg *schema.AnoncryptedMessage) error {
	student, err := r.student(userName)
	if err != nil {
		return err
	}

	pending := student.Pending
	if pending == nil {
		return errors.Wrapf(ErrNoPendingConnection, "student %s", userName)
	}

	if msg == nil || len(msg.Message) == 0 {
		return errors.Wrap(ErrInvalidResponse, "empty message")
	}

	d, err := r.wallet.AnonDecrypt(r.university.ID, pending.MyVerkey, msg.Message)
	if err != nil {
		return errors.Wrapf(ErrInvalidResponse, "unable to decrypt: %v", err)
	}

	resp := &schema.ConnectionResponse{}
	err = json.Unmarshal(d, resp)
	if err != nil || resp.DID == "" || resp.Verkey == "" {
		return errors.Wrap(ErrInvalidResponse, "malformed connection response")
	}

	if resp.RequestNonce != pending.RequestNonce {
		return errors.Wrapf(ErrNonceMismatch, "student %s", userName)
	}

	student.Connection = &datastore.Connection{
		MyDID:       pending.MyDID,
		MyVerkey:    pending.MyVerkey,
		TheirDID:    resp.DID,
		TheirVerkey: resp.Verkey,
	}
	student.Pending = nil

	err = r.store.UpdateStudent(student)
	if err != nil {
		return errors.Wrap(err, "unable to save connection")
	}

	r.log.WithFields(log.Fields{"student": userName, "theirDID": resp.DID}).Info("connection established")
	r.notify(student)

	return nil
}

func (r *Bouncer) student(userName string) (*datastore.Student, error) {
	student, err := r.store.GetStudentByUserName(r.university.ID, userName)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrapf(ErrUnknownStudent, "%s", userName)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load student %s", userName)
	}

	return student, nil
}

func (r *Bouncer) notify(student *datastore.Student) {
	if r.publisher == nil {
		return
	}

	err := notifier.Notify(r.publisher, notifier.ConnectionTopic, notifier.ConnectionAcceptedEvent, &notifier.ConnectionAccepted{
		UniversityID: r.university.ID,
		StudentID:    student.ID,
		UserName:     student.UserName,
		TheirDID:     student.Connection.TheirDID,
	})
	if err != nil {
		r.log.WithError(err).Error("unable to publish connection event")
	}
}
