package valueobject_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/cyphera/cyphera-appsync/pkg/appsync/valueobject"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingConfig_RequestBody(t *testing.T) {
	tests := []struct {
		name     string
		input    valueobject.CachingConfigInput
		wantBody map[string]any
		wantErr  bool
	}{
		{
			name: "ttl and caching keys keep their order",
			input: valueobject.CachingConfigInput{
				TTL:         aws.String("60"),
				CachingKeys: []string{"$context.arguments.id", "$context.identity.sub"},
			},
			wantBody: map[string]any{
				"ttl":         "60",
				"cachingKeys": []string{"$context.arguments.id", "$context.identity.sub"},
			},
		},
		{
			name:     "ttl only omits caching keys",
			input:    valueobject.CachingConfigInput{TTL: aws.String("60")},
			wantBody: map[string]any{"ttl": "60"},
		},
		{
			name: "empty caching keys are sent",
			input: valueobject.CachingConfigInput{
				TTL:         aws.String("3600"),
				CachingKeys: []string{},
			},
			wantBody: map[string]any{"ttl": "3600", "cachingKeys": []string{}},
		},
		{
			name:    "missing ttl fails",
			input:   valueobject.CachingConfigInput{},
			wantErr: true,
		},
		{
			name: "missing ttl fails regardless of caching keys",
			input: valueobject.CachingConfigInput{
				CachingKeys: []string{"$context.arguments.id"},
			},
			wantErr: true,
		},
		{
			name:     "ttl is not range checked",
			input:    valueobject.CachingConfigInput{TTL: aws.String("-5")},
			wantBody: map[string]any{"ttl": "-5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valueobject.NewCachingConfig(tt.input)

			body, err := cfg.RequestBody()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, body)
				assert.True(t, valueobject.IsMissingField(err))
				assert.True(t, errors.Is(err, valueobject.ErrInvalidArgument))
				assert.Equal(t, `missing parameter "ttl" for "valueobject.CachingConfig": the value cannot be nil`, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestCachingConfig_Getters(t *testing.T) {
	t.Run("caching keys default to empty", func(t *testing.T) {
		cfg := valueobject.NewCachingConfig(valueobject.CachingConfigInput{TTL: aws.String("60")})
		keys := cfg.CachingKeys()
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
		assert.Equal(t, "60", cfg.TTL())
		assert.True(t, cfg.HasTTL())
	})

	t.Run("missing ttl reads as unset", func(t *testing.T) {
		cfg := valueobject.NewCachingConfig(valueobject.CachingConfigInput{})
		assert.Equal(t, "", cfg.TTL())
		assert.False(t, cfg.HasTTL())
	})

	t.Run("caching keys cannot be mutated through the getter or the input", func(t *testing.T) {
		input := []string{"$context.arguments.id", "$context.identity.sub"}
		cfg := valueobject.NewCachingConfig(valueobject.CachingConfigInput{TTL: aws.String("60"), CachingKeys: input})

		input[0] = "changed"
		got := cfg.CachingKeys()
		got[1] = "changed"

		assert.Equal(t, []string{"$context.arguments.id", "$context.identity.sub"}, cfg.CachingKeys())
	})
}

func TestCreateCachingConfig(t *testing.T) {
	t.Run("passes an existing config through", func(t *testing.T) {
		existing := valueobject.NewCachingConfig(valueobject.CachingConfigInput{TTL: aws.String("60")})
		got, err := valueobject.CreateCachingConfig(existing)
		require.NoError(t, err)
		assert.Same(t, existing, got)
	})

	t.Run("builds from a map", func(t *testing.T) {
		got, err := valueobject.CreateCachingConfig(map[string]any{
			"ttl":         "60",
			"cachingKeys": []any{"$context.arguments.id", "$context.identity.sub"},
			"ignored":     true,
		})
		require.NoError(t, err)

		body, err := got.RequestBody()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"ttl":         "60",
			"cachingKeys": []string{"$context.arguments.id", "$context.identity.sub"},
		}, body)
	})

	t.Run("empty caching keys from a map are kept as supplied", func(t *testing.T) {
		got, err := valueobject.CreateCachingConfig(map[string]any{
			"ttl":         "60",
			"cachingKeys": []any{},
		})
		require.NoError(t, err)
		assert.Empty(t, got.CachingKeys())
		assert.NotNil(t, got.CachingKeys())

		body, err := got.RequestBody()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"ttl": "60", "cachingKeys": []string{}}, body)
	})

	t.Run("nil values from a map are absent", func(t *testing.T) {
		got, err := valueobject.CreateCachingConfig(map[string]any{
			"ttl":         "60",
			"cachingKeys": nil,
		})
		require.NoError(t, err)
		assert.Empty(t, got.CachingKeys())

		body, err := got.RequestBody()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"ttl": "60"}, body)
	})

	t.Run("nil ttl from a map fails on serialization regardless of caching keys", func(t *testing.T) {
		got, err := valueobject.CreateCachingConfig(map[string]any{
			"ttl":         nil,
			"cachingKeys": []any{"$context.arguments.id"},
		})
		require.NoError(t, err)
		assert.False(t, got.HasTTL())
		assert.Equal(t, []string{"$context.arguments.id"}, got.CachingKeys())

		_, err = got.RequestBody()
		assert.True(t, valueobject.IsMissingField(err))
	})

	t.Run("numeric ttl becomes a string", func(t *testing.T) {
		got, err := valueobject.CreateCachingConfig(map[string]any{"ttl": 300})
		require.NoError(t, err)
		assert.Equal(t, "300", got.TTL())
	})

	t.Run("empty map constructs but does not serialize", func(t *testing.T) {
		got, err := valueobject.CreateCachingConfig(map[string]any{})
		require.NoError(t, err)

		_, err = got.RequestBody()
		assert.True(t, valueobject.IsMissingField(err))
	})

	t.Run("builds from a typed input pointer", func(t *testing.T) {
		got, err := valueobject.CreateCachingConfig(&valueobject.CachingConfigInput{TTL: aws.String("30")})
		require.NoError(t, err)
		assert.Equal(t, "30", got.TTL())
	})

	t.Run("rejects unsupported input", func(t *testing.T) {
		_, err := valueobject.CreateCachingConfig(60)
		require.Error(t, err)
		assert.True(t, errors.Is(err, valueobject.ErrInvalidArgument))
		assert.False(t, valueobject.IsMissingField(err))
	})
}

func TestCachingConfig_MarshalJSON(t *testing.T) {
	cfg := valueobject.NewCachingConfig(valueobject.CachingConfigInput{
		TTL:         aws.String("60"),
		CachingKeys: []string{"$context.arguments.id"},
	})

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ttl":"60","cachingKeys":["$context.arguments.id"]}`, string(out))

	_, err = json.Marshal(valueobject.NewCachingConfig(valueobject.CachingConfigInput{}))
	require.Error(t, err)
	assert.True(t, valueobject.IsMissingField(err))
}

func TestCachingConfig_Equal(t *testing.T) {
	base := valueobject.CachingConfigInput{TTL: aws.String("60"), CachingKeys: []string{"a", "b"}}

	assert.True(t, valueobject.NewCachingConfig(base).Equal(valueobject.NewCachingConfig(base)))
	assert.False(t, valueobject.NewCachingConfig(base).Equal(valueobject.NewCachingConfig(valueobject.CachingConfigInput{
		TTL:         aws.String("60"),
		CachingKeys: []string{"b", "a"},
	})))
	assert.False(t, valueobject.NewCachingConfig(valueobject.CachingConfigInput{TTL: aws.String("60")}).Equal(
		valueobject.NewCachingConfig(valueobject.CachingConfigInput{TTL: aws.String("60"), CachingKeys: []string{}}),
	))
}
