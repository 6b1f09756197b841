// Package payload assembles value objects into a single outbound JSON body.
package payload

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// RequestBodyer is implemented by value objects that serialize into a
// request payload fragment.
type RequestBodyer interface {
	RequestBody() (map[string]any, error)
}

type part struct {
	key    string
	value  any
	object RequestBodyer
}

// Builder collects top-level fields of a request body in insertion order.
// It is not safe for concurrent use.
type Builder struct {
	logger *zap.Logger
	parts  []part
}

// New creates a Builder. A nil logger disables logging.
func New(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger}
}

// Set adds a plain value under key.
func (b *Builder) Set(key string, value any) *Builder {
	b.parts = append(b.parts, part{key: key, value: value})
	return b
}

// SetObject adds the request body of object under key. A nil object, including
// a typed nil pointer, is skipped.
func (b *Builder) SetObject(key string, object RequestBodyer) *Builder {
	if isNil(object) {
		return b
	}
	b.parts = append(b.parts, part{key: key, object: object})
	return b
}

// Build renders every part. All failing parts are reported together and no
// body is returned when any of them fails.
func (b *Builder) Build() (map[string]any, error) {
	body := make(map[string]any, len(b.parts))
	var errs error

	for _, p := range b.parts {
		if p.object == nil {
			body[p.key] = p.value
			continue
		}

		fragment, err := p.object.RequestBody()
		if err != nil {
			b.logger.Debug("request body part failed", zap.String("key", p.key), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.key, err))
			continue
		}
		b.logger.Debug("request body part rendered", zap.String("key", p.key), zap.Int("fields", len(fragment)))
		body[p.key] = fragment
	}

	if errs != nil {
		return nil, errs
	}
	return body, nil
}

// JSON renders Build as JSON.
func (b *Builder) JSON() ([]byte, error) {
	body, err := b.Build()
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "encode request body")
	}
	return out, nil
}

func isNil(object RequestBodyer) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
