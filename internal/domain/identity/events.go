package identity

import "github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"

// AggregateTypeUser is the aggregate type name for user events
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeUserRegistered = "identity.user.registered"
)

// UserRegisteredEvent is emitted when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
	}
}

// EventType returns the event type
func (e *UserRegisteredEvent) EventType() string {
	return EventTypeUserRegistered
}
