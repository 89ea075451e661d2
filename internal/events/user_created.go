package events

import "time"

const UserLifecycleTopic = "enlacerb.usuarios.v1"

const EventUserCreated = "usuario.creado"

// UserCreatedEvent is emitted once a user and its empty employee profile are committed.
type UserCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     uint      `json:"usuario_id"`
	EmployeeID uint      `json:"empleado_id"`
	RoleID     uint      `json:"rol_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
