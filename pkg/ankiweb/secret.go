package ankiweb

import (
	"encoding/json"
)

const redacted = "*****"

// Secret holds a credential. Every printable or serialized form of it is
// redacted; only Value exposes the content.
type Secret struct {
	value string
}

func NewSecret(value string) Secret {
	return Secret{value: value}
}

func (s Secret) Value() string {
	return s.value
}

func (s Secret) IsZero() bool {
	return s.value == ""
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// UnmarshalJSON accepts a plain JSON string so secrets can arrive as action arguments.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	s.value = value
	return nil
}

// Credentials log a user into AnkiWeb.
type Credentials struct {
	Email    Secret `json:"user_email"`
	Password Secret `json:"user_password"`
}
