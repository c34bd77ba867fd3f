package domain

// NotificationProfile holds the administrator's push settings: the
// enable/disable flag and the registered device tokens. There is exactly one
// administrator; the profile is keyed by that account's internal user id.
type NotificationProfile struct {
	UserID  string   `json:"user_id"`
	Enabled bool     `json:"notifications_enabled"`
	Tokens  []string `json:"tokens"`
}

// HasTokens reports whether at least one device is registered.
func (p NotificationProfile) HasTokens() bool { return len(p.Tokens) > 0 }
