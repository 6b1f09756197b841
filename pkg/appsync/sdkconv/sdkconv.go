// Package sdkconv converts value objects to and from the AWS SDK v2 AppSync
// types, so callers that already hold an appsync.Client can use them directly.
package sdkconv

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/appsync"
	"github.com/aws/aws-sdk-go-v2/service/appsync/types"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/multierr"

	"github.com/cyphera/cyphera-appsync/pkg/appsync/valueobject"
)

// APIKeyFromSDK converts an SDK API key. A zero epoch is treated as absent.
func APIKeyFromSDK(key types.ApiKey) *valueobject.APIKey {
	return valueobject.NewAPIKey(valueobject.APIKeyInput{
		ID:          key.Id,
		Description: key.Description,
		Expires:     epochString(key.Expires),
		Deletes:     epochString(key.Deletes),
	})
}

// APIKeysFromListOutput converts every key of a ListApiKeys page.
func APIKeysFromListOutput(out *appsync.ListApiKeysOutput) []*valueobject.APIKey {
	if out == nil {
		return nil
	}
	keys := make([]*valueobject.APIKey, 0, len(out.ApiKeys))
	for _, key := range out.ApiKeys {
		keys = append(keys, APIKeyFromSDK(key))
	}
	return keys
}

// APIKeyToSDK converts an API key to its SDK shape. Epoch strings must be
// base 10 integers; leading zeros do not switch the base.
func APIKeyToSDK(key *valueobject.APIKey) (types.ApiKey, error) {
	if key == nil {
		return types.ApiKey{}, errors.Wrap(valueobject.ErrInvalidArgument, "nil api key")
	}

	expires, err := parseEpoch("expires", key.Expires())
	if err != nil {
		return types.ApiKey{}, err
	}
	deletes, err := parseEpoch("deletes", key.Deletes())
	if err != nil {
		return types.ApiKey{}, err
	}

	return types.ApiKey{
		Id:          key.ID(),
		Description: key.Description(),
		Expires:     expires,
		Deletes:     deletes,
	}, nil
}

// CachingConfigToSDK converts a caching config for UpdateResolver and
// CreateResolver inputs. A missing TTL fails the same way RequestBody does.
func CachingConfigToSDK(cfg *valueobject.CachingConfig) (*types.CachingConfig, error) {
	if cfg == nil {
		return nil, nil
	}

	body, err := cfg.RequestBody()
	if err != nil {
		return nil, err
	}

	ttl, err := strconv.ParseInt(cfg.TTL(), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse ttl %q", cfg.TTL())
	}

	out := &types.CachingConfig{Ttl: ttl}
	if keys, ok := body["cachingKeys"].([]string); ok {
		out.CachingKeys = keys
	}
	return out, nil
}

// CachingConfigsToSDK converts a batch and reports every failure together.
func CachingConfigsToSDK(cfgs []*valueobject.CachingConfig) ([]*types.CachingConfig, error) {
	out := make([]*types.CachingConfig, len(cfgs))
	var errs error
	for i, cfg := range cfgs {
		converted, err := CachingConfigToSDK(cfg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("caching config %d: %w", i, err))
			continue
		}
		out[i] = converted
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// CachingConfigFromSDK converts an SDK caching config. The TTL is always set
// because the SDK models it as a required integer.
func CachingConfigFromSDK(cfg *types.CachingConfig) *valueobject.CachingConfig {
	if cfg == nil {
		return nil
	}
	return valueobject.NewCachingConfig(valueobject.CachingConfigInput{
		TTL:         aws.String(cast.ToString(cfg.Ttl)),
		CachingKeys: cfg.CachingKeys,
	})
}

func epochString(v int64) *string {
	if v == 0 {
		return nil
	}
	return aws.String(cast.ToString(v))
}

func parseEpoch(field string, raw *string) (int64, error) {
	if raw == nil {
		return 0, nil
	}
	n, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s %q", field, *raw)
	}
	return n, nil
}
