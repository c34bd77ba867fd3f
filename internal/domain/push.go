package domain

// Notification is the alert payload delivered to administrator devices.
// Title and body are the whole payload; Data may carry the order id for
// client-side deep-linking.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendResult is the per-token outcome of a multicast send.
type SendResult struct {
	Token     string
	Success   bool
	ErrorCode string
}

// Provider error codes that mean the registration is permanently dead
// (malformed, or no longer bound to any installed app instance). Any other
// failure code is treated as transient and must not cause a prune.
const (
	ErrCodeInvalidRegistration = "InvalidRegistration"
	ErrCodeNotRegistered       = "NotRegistered"
)

// PermanentlyInvalid reports whether the result identifies a token that is
// safe to remove from the registry.
func (r SendResult) PermanentlyInvalid() bool {
	if r.Success {
		return false
	}
	return r.ErrorCode == ErrCodeInvalidRegistration || r.ErrorCode == ErrCodeNotRegistered
}
