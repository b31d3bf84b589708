package mocks

import "github.com/stretchr/testify/mock"

// Browser records the URIs the server asks to open
type Browser struct {
	mock.Mock
}

func (b *Browser) Open(uri string) error {
	return b.Called(uri).Error(0)
}
