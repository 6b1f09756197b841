package valueobject

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// KeyVersion identifies the AppSync API key scheme that produced an epoch value.
type KeyVersion int

const (
	// KeyVersionDA1 keys store epochs in milliseconds.
	KeyVersionDA1 KeyVersion = iota + 1
	// KeyVersionDA2 keys store epochs in seconds.
	KeyVersionDA2
)

// da2Retention is how long an expired da2 key is kept before deletion.
const da2Retention = 60 * 24 * time.Hour

func (v KeyVersion) String() string {
	switch v {
	case KeyVersionDA1:
		return "da1"
	case KeyVersionDA2:
		return "da2"
	default:
		return fmt.Sprintf("KeyVersion(%d)", int(v))
	}
}

// RetentionPeriod is the window between expiration and deletion. da1 keys
// have none.
func (v KeyVersion) RetentionPeriod() time.Duration {
	if v == KeyVersionDA2 {
		return da2Retention
	}
	return 0
}

// ParseKeyTime interprets an epoch string in the unit used by version.
func ParseKeyTime(raw string, version KeyVersion) (time.Time, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse %s epoch %q", version, raw)
	}

	switch version {
	case KeyVersionDA1:
		return time.UnixMilli(n).UTC(), nil
	case KeyVersionDA2:
		return time.Unix(n, 0).UTC(), nil
	default:
		return time.Time{}, &InvalidArgumentError{
			Type:   apiKeyTypeName,
			Reason: fmt.Sprintf("unknown key version %d", int(version)),
		}
	}
}

// ExpiresAt interprets Expires for the given key version. The bool is false
// when the key carries no expiration.
func (k *APIKey) ExpiresAt(version KeyVersion) (time.Time, bool, error) {
	return parseOptionalKeyTime(k.expires, version)
}

// DeletesAt interprets Deletes for the given key version.
func (k *APIKey) DeletesAt(version KeyVersion) (time.Time, bool, error) {
	return parseOptionalKeyTime(k.deletes, version)
}

func parseOptionalKeyTime(raw *string, version KeyVersion) (time.Time, bool, error) {
	if raw == nil {
		return time.Time{}, false, nil
	}
	t, err := ParseKeyTime(*raw, version)
	if err != nil {
		return time.Time{}, true, err
	}
	return t, true, nil
}

// KeyVersionFromID guesses the key version from the "da1-" or "da2-" prefix
// AppSync puts on key IDs. Unknown prefixes are treated as da2.
func KeyVersionFromID(id string) KeyVersion {
	if strings.HasPrefix(id, "da1-") || id == "da1" {
		return KeyVersionDA1
	}
	return KeyVersionDA2
}
