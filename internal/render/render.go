// Package render turns JSON documents into AppSync request payloads for the
// appsync-payload tool.
package render

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-appsync/internal/constants"
	"github.com/cyphera/cyphera-appsync/internal/helpers"
	"github.com/cyphera/cyphera-appsync/pkg/appsync/payload"
	"github.com/cyphera/cyphera-appsync/pkg/appsync/valueobject"
)

// ErrUnknownKind is returned for a payload kind the renderer does not handle.
var ErrUnknownKind = errors.New("unknown payload kind")

// Renderer renders one document per call.
type Renderer struct {
	logger *zap.Logger
	pretty bool
}

// NewRenderer creates a Renderer. A nil logger disables logging.
func NewRenderer(logger *zap.Logger, pretty bool) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger, pretty: pretty}
}

// Render decodes input as the given kind and returns the rendered JSON.
func (r *Renderer) Render(kind string, input []byte) ([]byte, error) {
	if !helpers.IsValidPayloadKind(kind) {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}

	var builder *payload.Builder
	var err error
	switch kind {
	case constants.CachingConfigKind:
		builder, err = r.cachingConfig(input)
	case constants.APIKeyKind:
		builder, err = r.apiKey(input)
	}
	if err != nil {
		return nil, err
	}

	body, err := builder.Build()
	if err != nil {
		return nil, err
	}
	r.logger.Debug("rendered payload", zap.String("kind", kind), zap.Int("fields", len(body)))

	if r.pretty {
		return json.MarshalIndent(body, "", "  ")
	}
	return json.Marshal(body)
}

func (r *Renderer) cachingConfig(input []byte) (*payload.Builder, error) {
	raw, err := decodeObject(input)
	if err != nil {
		return nil, err
	}

	cfg, err := valueobject.CreateCachingConfig(raw)
	if err != nil {
		return nil, err
	}
	return payload.New(r.logger).SetObject("cachingConfig", cfg), nil
}

func (r *Renderer) apiKey(input []byte) (*payload.Builder, error) {
	var key valueobject.APIKey
	if err := json.Unmarshal(input, &key); err != nil {
		return nil, errors.Wrap(err, "decode api key")
	}

	version := valueobject.KeyVersionFromID(aws.ToString(key.ID()))
	builder := payload.New(r.logger).
		Set("apiKey", &key).
		Set("version", version.String())

	if expires, ok, err := key.ExpiresAt(version); err != nil {
		return nil, errors.Wrap(err, "interpret expires")
	} else if ok {
		builder.Set("expiresAt", expires.Format(time.RFC3339))
	}

	if deletes, ok, err := key.DeletesAt(version); err != nil {
		return nil, errors.Wrap(err, "interpret deletes")
	} else if ok {
		builder.Set("deletesAt", deletes.Format(time.RFC3339))
	}

	return builder, nil
}

func decodeObject(input []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode input")
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
