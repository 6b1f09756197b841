package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockRequestBodyerForTest creates a MockRequestBodyer tied to t.
func NewMockRequestBodyerForTest(t *testing.T) *MockRequestBodyer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRequestBodyer(ctrl)
}
