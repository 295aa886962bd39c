package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"goji.io/pat"

	"github.com/scoir/studybits/pkg/client/university"
	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/util"
)

func (r *APIServer) registerStudent(w http.ResponseWriter, req *http.Request) {
	reg := &university.StudentRegistration{}
	err := json.NewDecoder(req.Body).Decode(reg)
	if err != nil || reg.UserName == "" {
		util.WriteErrorStatus(w, http.StatusBadRequest, "userName is required")
		return
	}

	_, err = r.store.GetStudentByUserName(r.university.ID, reg.UserName)
	if err == nil {
		util.WriteErrorStatus(w, http.StatusConflict, "student "+reg.UserName+" is already registered")
		return
	}
	if !errors.Is(err, datastore.ErrNotFound) {
		r.writeError(w, errors.Wrap(err, "unable to load student"))
		return
	}

	s := &datastore.Student{
		ID:           uuid.New().String(),
		UserName:     reg.UserName,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		SSN:          reg.SSN,
		UniversityID: r.university.ID,
	}

	_, err = r.store.InsertStudent(s)
	if err != nil {
		r.writeError(w, errors.Wrap(err, "unable to save student"))
		return
	}

	r.log.WithField("student", s.UserName).Info("student registered")
	util.WriteJSON(w, http.StatusCreated, view(s))
}

func (r *APIServer) getStudent(w http.ResponseWriter, req *http.Request) {
	s, err := r.student(pat.Param(req, "student"))
	if err != nil {
		r.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, view(s))
}

// listStudentPositions shows a student the exchange positions their accepted proofs earned.
func (r *APIServer) listStudentPositions(w http.ResponseWriter, req *http.Request) {
	s, err := r.student(pat.Param(req, "student"))
	if err != nil {
		r.writeError(w, err)
		return
	}

	positions, err := r.store.ListExchangePositions(r.university.ID)
	if err != nil {
		r.writeError(w, errors.Wrap(err, "unable to list exchange positions"))
		return
	}

	var own []*datastore.ExchangePosition
	for _, p := range positions {
		if p.StudentID == s.ID {
			own = append(own, p)
		}
	}

	util.WriteJSON(w, http.StatusOK, positionViews(own))
}

func (r *APIServer) student(userName string) (*datastore.Student, error) {
	s, err := r.store.GetStudentByUserName(r.university.ID, userName)
	if err != nil {
		return nil, errors.Wrapf(err, "student %s", userName)
	}

	return s, nil
}

func view(s *datastore.Student) *university.StudentInfo {
	return &university.StudentInfo{
		UserName:  s.UserName,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Connected: s.HasConnection(),
	}
}

func positionViews(positions []*datastore.ExchangePosition) []*university.ExchangePosition {
	out := make([]*university.ExchangePosition, len(positions))
	for i, p := range positions {
		out[i] = &university.ExchangePosition{
			ProofRecordID: p.ProofRecordID,
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			Degree:        p.Degree,
			Status:        p.Status,
		}
	}
	return out
}
