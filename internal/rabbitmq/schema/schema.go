package schema

import (
	"encoding/json"
	"errors"
	"time"
)

// PasswordResetEmail is queued by the API and delivered by the mailer.
type PasswordResetEmail struct {
	Recipient   string    `json:"recipient"`
	Link        string    `json:"link"`
	RequestedAt time.Time `json:"requestedAt"`
}

func (m *PasswordResetEmail) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *PasswordResetEmail) Unmarshal(data []byte) error {
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	if m.Recipient == "" || m.Link == "" {
		return errors.New("password reset email must have recipient and link")
	}
	return nil
}
