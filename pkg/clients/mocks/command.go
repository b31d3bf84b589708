package mocks

import (
	"github.com/jumppad-labs/matrixpanel/pkg/clients/command/types"
	"github.com/stretchr/testify/mock"
)

type Command struct {
	mock.Mock
}

func (m *Command) Execute(config types.CommandConfig) (*types.CommandResult, error) {
	args := m.Called(config)

	if r, ok := args.Get(0).(*types.CommandResult); ok {
		return r, args.Error(1)
	}

	return nil, args.Error(1)
}
