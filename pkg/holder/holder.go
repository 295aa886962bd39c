/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package holder is the student agent. It keeps the student's own records, registers and onboards
// with universities, and fetches the proof requests universities address to the student.
package holder

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/scoir/studybits/pkg/client/university"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/framework"
	"github.com/scoir/studybits/pkg/schema"
)

var (
	ErrStudentExists     = errors.New("student already exists")
	ErrUnknownStudent    = errors.New("unknown student")
	ErrUnknownUniversity = errors.New("unknown university")
	ErrNotConnected      = errors.New("no connection with university")
	ErrUnexpectedSender  = errors.New("message not sent by connected university")
	ErrUnknownRequest    = errors.New("unknown proof request")
)

//go:generate mockery -name=UniversityClient
type UniversityClient interface {
	RegisterStudent(ctx context.Context, reg *university.StudentRegistration) error
	GetStudent(ctx context.Context, userName string) (*university.StudentInfo, error)
	ListExchangePositions(ctx context.Context, userName string) ([]*university.ExchangePosition, error)
	ListProofRequests(ctx context.Context, v schema.Version, userName string) ([]*university.OpenRequest, error)
	GetProofRequest(ctx context.Context, v schema.Version, userName, recordID string) (*schema.AuthcryptedMessage, error)
	SubmitProof(ctx context.Context, v schema.Version, userName, recordID string, msg *schema.AuthcryptedMessage) (bool, error)
}

//go:generate mockery -name=Wallet
type Wallet interface {
	AuthEncrypt(ownerID, myVerkey, theirVerkey string, msg []byte) ([]byte, error)
	AuthDecrypt(ownerID, myVerkey, theirVerkey string, msg []byte) ([]byte, error)
}

//go:generate mockery -name=Onboarder
type Onboarder interface {
	Onboard(ctx context.Context, student *datastore.Student, u *datastore.University) (*datastore.ConnectionRecord, error)
}

type provider interface {
	GetDatastore() datastore.Store
	GetHolderWallet() Wallet
	GetOnboarder() Onboarder
	GetHolderClient(u *datastore.University) UniversityClient
}

type Holder struct {
	store     datastore.Store
	wallet    Wallet
	onboarder Onboarder
	clients   func(u *datastore.University) UniversityClient
	log       *log.Entry
}

func New(ctx provider) *Holder {
	return &Holder{
		store:     ctx.GetDatastore(),
		wallet:    ctx.GetHolderWallet(),
		onboarder: ctx.GetOnboarder(),
		clients:   ctx.GetHolderClient,
		log:       log.WithField("component", "holder"),
	}
}

// LoadUniversities records every configured university the agent does not know yet.
func (r *Holder) LoadUniversities(remote []*framework.RemoteUniversity) error {
	for _, ru := range remote {
		u, err := r.store.GetUniversityByName(ru.Name)
		switch {
		case err == nil:
			if u.Endpoint == ru.Endpoint {
				continue
			}
			r.log.WithField("university", ru.Name).Warnf("ignoring new endpoint %s, known as %s", ru.Endpoint, u.Endpoint)
		case errors.Is(err, datastore.ErrNotFound):
			_, err = r.store.InsertUniversity(&datastore.University{Name: ru.Name, Endpoint: ru.Endpoint})
			if err != nil {
				return errors.Wrapf(err, "unable to save university %s", ru.Name)
			}
		default:
			return errors.Wrapf(err, "unable to load university %s", ru.Name)
		}
	}

	return nil
}

// CreateStudent saves the student's own profile. An existing profile with the same user name is returned unchanged.
func (r *Holder) CreateStudent(s *datastore.Student) (*datastore.Student, error) {
	if s.UserName == "" {
		return nil, errors.New("user name is required")
	}

	existing, err := r.store.GetStudentByUserName("", s.UserName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrap(err, "unable to load student")
	}

	s.UniversityID = ""
	_, err = r.store.InsertStudent(s)
	if err != nil {
		return nil, errors.Wrap(err, "unable to save student")
	}

	return s, nil
}

// Enroll creates the student's profile from the record a university already keeps for them and onboards
// with that university.
func (r *Holder) Enroll(ctx context.Context, userName, universityName string) (*datastore.Student, error) {
	_, err := r.student(userName)
	if err == nil {
		return nil, errors.Wrapf(ErrStudentExists, "%s", userName)
	}
	if !errors.Is(err, ErrUnknownStudent) {
		return nil, err
	}

	u, err := r.university(universityName)
	if err != nil {
		return nil, err
	}

	info, err := r.clients(u).GetStudent(ctx, userName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to fetch %s from %s", userName, u.Name)
	}

	student, err := r.CreateStudent(&datastore.Student{
		UserName:  userName,
		FirstName: info.FirstName,
		LastName:  info.LastName,
	})
	if err != nil {
		return nil, err
	}

	_, err = r.onboarder.Onboard(ctx, student, u)
	if err != nil {
		return student, errors.Wrapf(err, "unable to onboard with %s", u.Name)
	}

	return student, nil
}

// Register enrolls the student with the university. It must succeed before onboarding.
func (r *Holder) Register(ctx context.Context, userName, universityName string) error {
	student, u, err := r.lookup(userName, universityName)
	if err != nil {
		return err
	}

	err = r.clients(u).RegisterStudent(ctx, &university.StudentRegistration{
		UserName:  student.UserName,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		SSN:       student.SSN,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to register with %s", u.Name)
	}

	r.log.WithFields(log.Fields{"student": userName, "university": u.Name}).Info("registered")
	return nil
}

func (r *Holder) Onboard(ctx context.Context, userName, universityName string) (*datastore.ConnectionRecord, error) {
	student, u, err := r.lookup(userName, universityName)
	if err != nil {
		return nil, err
	}

	return r.onboarder.Onboard(ctx, student, u)
}

// SyncProofRequests fetches the open proof requests of one proof type and stores those not seen before.
// It returns how many were new.
func (r *Holder) SyncProofRequests(ctx context.Context, userName, universityName string, v schema.Version) (int, error) {
	student, u, err := r.lookup(userName, universityName)
	if err != nil {
		return 0, err
	}

	conn, err := r.connection(student, u)
	if err != nil {
		return 0, err
	}

	client := r.clients(u)
	open, err := client.ListProofRequests(ctx, v, student.UserName)
	if err != nil {
		return 0, errors.Wrap(err, "unable to list proof requests")
	}

	saved := 0
	for _, o := range open {
		msg, err := client.GetProofRequest(ctx, v, student.UserName, o.ID)
		if err != nil {
			return saved, errors.Wrapf(err, "unable to fetch proof request %s", o.ID)
		}

		req, d, err := r.openRequest(student, conn, msg)
		if err != nil {
			return saved, errors.Wrapf(err, "proof request %s", o.ID)
		}

		isNew, err := r.store.SaveProofRequestIfNew(&datastore.ReceivedProofRequest{
			ID:           o.ID,
			StudentID:    student.ID,
			UniversityID: u.ID,
			Name:         req.Name,
			Version:      req.Version,
			Nonce:        req.Nonce,
			Request:      d,
		})
		if err != nil {
			return saved, errors.Wrap(err, "unable to save proof request")
		}

		if isNew {
			saved++
		}
	}

	r.log.WithFields(log.Fields{"student": userName, "university": u.Name, "proof": v.String(), "new": saved}).
		Debug("proof requests synced")

	return saved, nil
}

func (r *Holder) ProofRequests(userName string) ([]*datastore.ReceivedProofRequest, error) {
	student, err := r.student(userName)
	if err != nil {
		return nil, err
	}

	return r.store.ListProofRequests(student.ID)
}

// SyncExchangePositions fetches the student's positions from every connected university and stores the
// new ones. It returns how many were new.
func (r *Holder) SyncExchangePositions(ctx context.Context, userName string) (int, error) {
	student, err := r.student(userName)
	if err != nil {
		return 0, err
	}

	universities, err := r.connectedUniversities(student)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, u := range universities {
		positions, err := r.clients(u).ListExchangePositions(ctx, student.UserName)
		if err != nil {
			return saved, errors.Wrapf(err, "unable to list exchange positions at %s", u.Name)
		}

		for _, p := range positions {
			pos := &datastore.ExchangePosition{
				ID:            uuid.New().String(),
				UniversityID:  u.ID,
				StudentID:     student.ID,
				ProofRecordID: p.ProofRecordID,
				FirstName:     p.FirstName,
				LastName:      p.LastName,
				Degree:        p.Degree,
				Status:        p.Status,
			}

			id, err := r.store.InsertExchangePosition(pos)
			if err != nil {
				return saved, errors.Wrap(err, "unable to save exchange position")
			}

			if id == pos.ID {
				saved++
			}
		}
	}

	r.log.WithFields(log.Fields{"student": userName, "new": saved}).Debug("exchange positions synced")
	return saved, nil
}

// ExchangePositions lists the stored positions of the student at every connected university.
func (r *Holder) ExchangePositions(userName string) ([]*datastore.ExchangePosition, error) {
	student, err := r.student(userName)
	if err != nil {
		return nil, err
	}

	universities, err := r.connectedUniversities(student)
	if err != nil {
		return nil, err
	}

	var out []*datastore.ExchangePosition
	for _, u := range universities {
		positions, err := r.store.ListExchangePositions(u.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list exchange positions of %s", u.Name)
		}

		for _, p := range positions {
			if p.StudentID == student.ID {
				out = append(out, p)
			}
		}
	}

	return out, nil
}

// SubmitProof authcrypts a proof answering a stored request and sends it to the university that asked.
func (r *Holder) SubmitProof(ctx context.Context, userName, requestID string, proof *schema.IndyProof) (bool, error) {
	student, err := r.student(userName)
	if err != nil {
		return false, err
	}

	requests, err := r.store.ListProofRequests(student.ID)
	if err != nil {
		return false, errors.Wrap(err, "unable to load proof requests")
	}

	var pr *datastore.ReceivedProofRequest
	for _, p := range requests {
		if p.ID == requestID {
			pr = p
			break
		}
	}
	if pr == nil {
		return false, errors.Wrapf(ErrUnknownRequest, "%s", requestID)
	}

	u, err := r.store.GetUniversity(pr.UniversityID)
	if err != nil {
		return false, errors.Wrap(err, "unable to load university")
	}

	conn, err := r.connection(student, u)
	if err != nil {
		return false, err
	}

	d, err := json.Marshal(proof)
	if err != nil {
		return false, errors.Wrap(err, "unable to marshal proof")
	}

	sealed, err := r.wallet.AuthEncrypt(student.ID, conn.MyVerkey, conn.TheirVerkey, d)
	if err != nil {
		return false, errors.Wrap(err, "unable to authcrypt proof")
	}

	accepted, err := r.clients(u).SubmitProof(ctx, schema.NewVersion(pr.Name, pr.Version), student.UserName, pr.ID,
		&schema.AuthcryptedMessage{Message: sealed, DID: conn.MyDID})
	if err != nil {
		return false, errors.Wrap(err, "unable to submit proof")
	}

	r.log.WithFields(log.Fields{"student": userName, "university": u.Name, "accepted": accepted}).Info("proof submitted")
	return accepted, nil
}

func (r *Holder) openRequest(student *datastore.Student, conn *datastore.ConnectionRecord,
	msg *schema.AuthcryptedMessage) (*schema.ProofRequest, []byte, error) {

	if msg.DID != conn.TheirDID {
		return nil, nil, errors.Wrapf(ErrUnexpectedSender, "%s", msg.DID)
	}

	d, err := r.wallet.AuthDecrypt(student.ID, conn.MyVerkey, conn.TheirVerkey, msg.Message)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to decrypt proof request")
	}

	req := &schema.ProofRequest{}
	err = json.Unmarshal(d, req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "malformed proof request")
	}

	if req.TheirDID != conn.MyDID {
		return nil, nil, errors.Errorf("proof request addressed to %s", req.TheirDID)
	}

	return req, d, nil
}

func (r *Holder) connection(student *datastore.Student, u *datastore.University) (*datastore.ConnectionRecord, error) {
	conn, err := r.store.GetConnectionRecord(student.ID, u.ID)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotConnected, "%s", u.Name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load connection")
	}

	if conn.State != datastore.ConnectionCompleted {
		return nil, errors.Wrapf(ErrNotConnected, "%s, onboarding pending", u.Name)
	}

	return conn, nil
}

func (r *Holder) lookup(userName, universityName string) (*datastore.Student, *datastore.University, error) {
	student, err := r.student(userName)
	if err != nil {
		return nil, nil, err
	}

	u, err := r.university(universityName)
	if err != nil {
		return nil, nil, err
	}

	return student, u, nil
}

func (r *Holder) university(name string) (*datastore.University, error) {
	u, err := r.store.GetUniversityByName(name)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrapf(ErrUnknownUniversity, "%s", name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load university")
	}

	return u, nil
}

// connectedUniversities are the known universities the student finished onboarding with.
func (r *Holder) connectedUniversities(student *datastore.Student) ([]*datastore.University, error) {
	all, err := r.store.ListUniversities()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list universities")
	}

	var out []*datastore.University
	for _, u := range all {
		_, err := r.connection(student, u)
		if errors.Is(err, ErrNotConnected) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	return out, nil
}

func (r *Holder) student(userName string) (*datastore.Student, error) {
	student, err := r.store.GetStudentByUserName("", userName)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrapf(ErrUnknownStudent, "%s", userName)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to load student")
	}

	return student, nil
}
