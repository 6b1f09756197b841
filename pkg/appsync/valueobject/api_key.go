package valueobject

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

const apiKeyTypeName = "valueobject.APIKey"

// APIKeyInput carries the optional fields of an API key. A nil field is absent.
type APIKeyInput struct {
	ID          *string `mapstructure:"id"`
	Description *string `mapstructure:"description"`
	Expires     *string `mapstructure:"expires"`
	Deletes     *string `mapstructure:"deletes"`
}

// APIKey describes an AppSync API key.
//
// Customers invoke AppSync GraphQL operations with API keys as an identity
// mechanism. Two key versions exist and disagree on the epoch unit of the
// expiration time:
//
//   - da1 keys were issued from November 2017 until February 2018. They always
//     expire after 7 days and report their expiration in milliseconds. They
//     cannot be updated and are no longer valid.
//   - da2 keys report expiration and deletion in seconds, accept a caller
//     provided expiration, and are kept for 60 days after they expire. An
//     expired da2 key can be reinstated until its deletion time.
//
// APIKey does not interpret either field; see KeyVersion for that.
type APIKey struct {
	id          *string
	description *string
	expires     *string
	deletes     *string
}

// NewAPIKey builds an APIKey from typed input.
func NewAPIKey(input APIKeyInput) *APIKey {
	return &APIKey{
		id:          cloneString(input.ID),
		description: cloneString(input.Description),
		expires:     cloneString(input.Expires),
		deletes:     cloneString(input.Deletes),
	}
}

// CreateAPIKey builds an APIKey from an existing *APIKey (returned as is),
// an APIKeyInput, or a map keyed by id, description, expires and deletes.
func CreateAPIKey(input any) (*APIKey, error) {
	switch v := input.(type) {
	case *APIKey:
		if v == nil {
			return nil, unsupportedInput(apiKeyTypeName, input)
		}
		return v, nil
	case APIKeyInput:
		return NewAPIKey(v), nil
	case *APIKeyInput:
		if v == nil {
			return nil, unsupportedInput(apiKeyTypeName, input)
		}
		return NewAPIKey(*v), nil
	case map[string]any:
		var in APIKeyInput
		if err := decodeInput(apiKeyTypeName, v, &in); err != nil {
			return nil, err
		}
		return NewAPIKey(in), nil
	default:
		return nil, unsupportedInput(apiKeyTypeName, input)
	}
}

// ID is the API key ID.
func (k *APIKey) ID() *string {
	return cloneString(k.id)
}

// Description is the purpose of the API key.
func (k *APIKey) Description() *string {
	return cloneString(k.description)
}

// Expires is the time after which the key expires, as epoch seconds rounded
// down to the hour.
func (k *APIKey) Expires() *string {
	return cloneString(k.expires)
}

// Deletes is the time after which the key is deleted, as epoch seconds
// rounded down to the hour.
func (k *APIKey) Deletes() *string {
	return cloneString(k.deletes)
}

// Equal reports whether both keys hold the same fields.
func (k *APIKey) Equal(other *APIKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return equalString(k.id, other.id) &&
		equalString(k.description, other.description) &&
		equalString(k.expires, other.expires) &&
		equalString(k.deletes, other.deletes)
}

type apiKeyJSON struct {
	ID          *string `json:"id,omitempty"`
	Description *string `json:"description,omitempty"`
	Expires     *string `json:"expires,omitempty"`
	Deletes     *string `json:"deletes,omitempty"`
}

// MarshalJSON writes the present fields only.
func (k *APIKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(apiKeyJSON{
		ID:          k.id,
		Description: k.description,
		Expires:     k.expires,
		Deletes:     k.deletes,
	})
}

// UnmarshalJSON reads an AppSync response fragment. Epoch fields may be
// JSON numbers or strings. A JSON null leaves k unchanged.
func (k *APIKey) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return errors.Wrap(err, "decode api key")
	}

	var in APIKeyInput
	if err := decodeInput(apiKeyTypeName, raw, &in); err != nil {
		return err
	}
	*k = *NewAPIKey(in)
	return nil
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
