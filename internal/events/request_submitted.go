package events

import "time"

const RequestLifecycleTopic = "enlacerb.solicitudes.v1"

const EventRequestSubmitted = "solicitud.creada"

type RequestSubmittedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	SubmissionID uint      `json:"solicitud_id"`
	Type         string    `json:"tipo"`
	CreatedBy    uint      `json:"creado_por"`
	OccurredAt   time.Time `json:"occurred_at"`
}
