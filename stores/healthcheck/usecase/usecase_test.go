package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/ledger/base/ctx"
	"github.com/x-xyz/ledger/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	errDown := errors.New("down")
	tests := []struct {
		name      string
		dbErr     error
		cacheErr  error
		expectErr error
	}{
		{"healthy", nil, nil, nil},
		{"db down", errDown, nil, errDown},
		{"cache down", nil, errDown, errDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.HealthCheckRepo{}
			repo.On("PingDB", mock.Anything).Return(tt.dbErr)
			repo.On("PingCache", mock.Anything).Return(tt.cacheErr)

			err := New(repo).Check(ctx.Background())
			assert.Equal(t, tt.expectErr, err)
			if tt.dbErr != nil {
				repo.AssertNotCalled(t, "PingCache", mock.Anything)
			}
		})
	}
}
