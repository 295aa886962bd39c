/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package prooftype declares the proofs a university requests from students.
package prooftype

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/datastore"
	"github.com/scoir/studybits/pkg/presentproof"
)

const (
	PositionAccepted = "accepted"
	PositionApplied  = "applied"
)

// Register adds every proof type to reg.
func Register(reg *presentproof.Registry, store datastore.Store) error {
	for _, def := range []*presentproof.Definition{NewDiploma(store), NewTranscript(store)} {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func recordPosition(store datastore.Store, student *datastore.Student, record *datastore.ProofRecord,
	firstName, lastName, degree, status string) error {

	_, err := store.InsertExchangePosition(&datastore.ExchangePosition{
		ID:            uuid.New().String(),
		UniversityID:  student.UniversityID,
		StudentID:     student.ID,
		ProofRecordID: record.ID,
		FirstName:     firstName,
		LastName:      lastName,
		Degree:        degree,
		Status:        status,
	})
	if err != nil {
		return errors.Wrap(err, "unable to record exchange position")
	}

	return nil
}
