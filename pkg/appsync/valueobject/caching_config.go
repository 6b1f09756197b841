package valueobject

import (
	"encoding/json"
	"slices"
)

const cachingConfigTypeName = "valueobject.CachingConfig"

// CachingConfigInput carries the fields of a resolver caching configuration.
// TTL is required when the config is serialized. A nil CachingKeys is absent;
// a non-nil empty slice is sent as an empty list.
type CachingConfigInput struct {
	TTL         *string  `mapstructure:"ttl"`
	CachingKeys []string `mapstructure:"cachingKeys"`
}

// CachingConfig is the caching configuration for a resolver.
//
// Construction never validates. A missing TTL is reported by RequestBody.
type CachingConfig struct {
	ttl         *string
	cachingKeys []string
}

// NewCachingConfig builds a CachingConfig from typed input.
func NewCachingConfig(input CachingConfigInput) *CachingConfig {
	return &CachingConfig{
		ttl:         cloneString(input.TTL),
		cachingKeys: cloneStrings(input.CachingKeys),
	}
}

// CreateCachingConfig builds a CachingConfig from an existing *CachingConfig
// (returned as is), a CachingConfigInput, or a map keyed by ttl and cachingKeys.
func CreateCachingConfig(input any) (*CachingConfig, error) {
	switch v := input.(type) {
	case *CachingConfig:
		if v == nil {
			return nil, unsupportedInput(cachingConfigTypeName, input)
		}
		return v, nil
	case CachingConfigInput:
		return NewCachingConfig(v), nil
	case *CachingConfigInput:
		if v == nil {
			return nil, unsupportedInput(cachingConfigTypeName, input)
		}
		return NewCachingConfig(*v), nil
	case map[string]any:
		var in CachingConfigInput
		if err := decodeInput(cachingConfigTypeName, v, &in); err != nil {
			return nil, err
		}
		return NewCachingConfig(in), nil
	default:
		return nil, unsupportedInput(cachingConfigTypeName, input)
	}
}

// TTL is the caching duration in seconds, or "" when unset.
func (c *CachingConfig) TTL() string {
	if c.ttl == nil {
		return ""
	}
	return *c.ttl
}

// HasTTL reports whether a TTL was supplied.
func (c *CachingConfig) HasTTL() bool {
	return c.ttl != nil
}

// CachingKeys returns the caching keys in order. It is never nil.
func (c *CachingConfig) CachingKeys() []string {
	if c.cachingKeys == nil {
		return []string{}
	}
	return cloneStrings(c.cachingKeys)
}

// RequestBody renders the wire payload. It fails when TTL is missing.
func (c *CachingConfig) RequestBody() (map[string]any, error) {
	payload := map[string]any{}
	if c.ttl == nil {
		return nil, missingField(cachingConfigTypeName, "ttl")
	}
	payload["ttl"] = *c.ttl

	if c.cachingKeys != nil {
		payload["cachingKeys"] = cloneStrings(c.cachingKeys)
	}

	return payload, nil
}

// MarshalJSON encodes RequestBody.
func (c *CachingConfig) MarshalJSON() ([]byte, error) {
	body, err := c.RequestBody()
	if err != nil {
		return nil, err
	}
	return json.Marshal(body)
}

// Equal reports whether both configs hold the same fields. An absent key list
// differs from an empty one because they serialize differently.
func (c *CachingConfig) Equal(other *CachingConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	if !equalString(c.ttl, other.ttl) {
		return false
	}
	if (c.cachingKeys == nil) != (other.cachingKeys == nil) {
		return false
	}
	return slices.Equal(c.cachingKeys, other.cachingKeys)
}
