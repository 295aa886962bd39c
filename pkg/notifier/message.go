package notifier

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/scoir/studybits/pkg/amqp"
)

const QueueName = "notification"

const (
	ConnectionTopic = "connection"
	ProofTopic      = "proof"

	ConnectionAcceptedEvent = "accepted"
	ProofVerifiedEvent      = "verified"
	ProofRejectedEvent      = "rejected"
)

type Notification struct {
	Topic     string      `json:"topic"`
	Event     string      `json:"event"`
	EventData interface{} `json:"message"`
}

// ConnectionAccepted is published once a student's connection is established.
type ConnectionAccepted struct {
	UniversityID string `json:"universityId"`
	StudentID    string `json:"studentId"`
	UserName     string `json:"userName"`
	TheirDID     string `json:"theirDid"`
}

// ProofEvent is published when a submitted proof is verified or rejected.
type ProofEvent struct {
	UniversityID  string `json:"universityId"`
	StudentID     string `json:"studentId"`
	ProofRecordID string `json:"proofRecordId"`
	ProofName     string `json:"proofName"`
	ProofVersion  string `json:"proofVersion"`
}

type EventMessage struct {
	Event     string      `json:"event"`
	Timestamp int64       `json:"timestamp"`
	EventData interface{} `json:"message"`
}

// Notify queues a notification for delivery to the webhooks registered for its topic.
func Notify(pub amqp.Publisher, topic, event string, data interface{}) error {
	d, err := json.Marshal(&Notification{
		Topic:     topic,
		Event:     event,
		EventData: data,
	})
	if err != nil {
		return errors.Wrap(err, "unable to marshal notification")
	}

	return pub.Publish(d, "application/json")
}
