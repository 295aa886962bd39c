package didexchange

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/schema"
	"github.com/scoir/studybits/pkg/wallet"
)

//go:generate mockery -name=UniversityClient
type UniversityClient interface {
	BeginOnboarding(ctx context.Context, userName string) (*schema.ConnectionRequest, error)
	FinalizeOnboarding(ctx context.Context, userName string, msg *schema.AnoncryptedMessage) error
}

//go:generate mockery -name=StudentWallet
type StudentWallet interface {
	AcceptConnectionRequest(ownerID string, req *schema.ConnectionRequest) (*schema.ConnectionResponse, *wallet.Pairwise, error)
	AnonEncrypt(theirVerkey string, msg []byte) ([]byte, error)
}

type onboarderProvider interface {
	GetDatastore() datastore.Store
	GetStudentWallet() StudentWallet
	GetUniversityClient(u *datastore.University) UniversityClient
}

// Onboarder runs the student side of onboarding with a university.
type Onboarder struct {
	store   datastore.Store
	wallet  StudentWallet
	clients func(u *datastore.University) UniversityClient
	log     *log.Entry
}

func NewOnboarder(ctx onboarderProvider) *Onboarder {
	return &Onboarder{
		store:   ctx.GetDatastore(),
		wallet:  ctx.GetStudentWallet(),
		clients: ctx.GetUniversityClient,
		log:     log.WithField("component", "onboarder"),
	}
}

// Onboard connects student to university. The connection request is persisted as pending before
// the student answers it, and the connection only completes once the university acknowledges.
// Any failure leaves the attempt to be restarted from the beginning.
func (r *Onboarder) Onboard(ctx context.Context, student *datastore.Student, u *datastore.University) (*datastore.ConnectionRecord, error) {
	existing, err := r.store.GetConnectionRecord(student.ID, u.ID)
	if err != nil && !errors.Is(err, datastore.ErrNotFound) {
		return nil, errors.Wrap(err, "unable to load connection record")
	}
	if existing != nil && existing.State == datastore.ConnectionCompleted {
		return nil, errors.Wrapf(ErrAlreadyConnected, "%s at %s", student.UserName, u.Name)
	}

	client := r.clients(u)
	req, err := client.BeginOnboarding(ctx, student.UserName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to begin onboarding")
	}

	record, err := r.savePending(existing, student, u, req)
	if err != nil {
		return nil, err
	}

	resp, pairwise, err := r.wallet.AcceptConnectionRequest(student.ID, req)
	if err != nil {
		return nil, errors.Wrap(err, "unable to accept connection request")
	}

	d, err := json.Marshal(resp)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal connection response")
	}

	sealed, err := r.wallet.AnonEncrypt(req.Verkey, d)
	if err != nil {
		return nil, errors.Wrap(err, "unable to anoncrypt connection response")
	}

	err = client.FinalizeOnboarding(ctx, student.UserName, &schema.AnoncryptedMessage{Message: sealed})
	if err != nil {
		return nil, errors.Wrap(err, "unable to finalize onboarding")
	}

	record.MyDID = pairwise.MyDID
	record.MyVerkey = pairwise.MyVerkey
	record.State = datastore.ConnectionCompleted
	err = r.store.UpdateConnectionRecord(record)
	if err != nil {
		return nil, errors.Wrap(err, "unable to save connection")
	}

	r.log.WithFields(log.Fields{"student": student.UserName, "university": u.Name}).Info("connection established")
	return record, nil
}

func (r *Onboarder) savePending(existing *datastore.ConnectionRecord, student *datastore.Student,
	u *datastore.University, req *schema.ConnectionRequest) (*datastore.ConnectionRecord, error) {

	record := &datastore.ConnectionRecord{
		ID:           uuid.New().String(),
		StudentID:    student.ID,
		UniversityID: u.ID,
		RequestNonce: req.RequestNonce,
		TheirDID:     req.DID,
		TheirVerkey:  req.Verkey,
		State:        datastore.ConnectionPending,
	}

	if existing != nil {
		record.ID = existing.ID
		err := r.store.UpdateConnectionRecord(record)
		if err != nil {
			return nil, errors.Wrap(err, "unable to save pending connection")
		}
		return record, nil
	}

	_, err := r.store.InsertConnectionRecord(record)
	if err != nil {
		return nil, errors.Wrap(err, "unable to save pending connection")
	}

	return record, nil
}
