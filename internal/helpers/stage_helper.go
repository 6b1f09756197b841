package helpers

import "github.com/cyphera/cyphera-appsync/internal/constants"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
	StageTest  = "test"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal, StageTest:
		return true
	default:
		return false
	}
}

// IsValidPayloadKind reports whether kind names a value object the payload tool can render.
func IsValidPayloadKind(kind string) bool {
	switch kind {
	case constants.CachingConfigKind, constants.APIKeyKind:
		return true
	default:
		return false
	}
}
