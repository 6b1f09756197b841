package valueobject

import (
	"github.com/mitchellh/mapstructure"
)

// decodeInput fills target from an untyped map keyed by wire field names.
// Unknown keys are ignored and nil values leave the field absent.
func decodeInput(typeName string, input map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return &InvalidArgumentError{Type: typeName, Reason: err.Error()}
	}

	if err := decoder.Decode(input); err != nil {
		return &InvalidArgumentError{Type: typeName, Reason: err.Error()}
	}
	return nil
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
