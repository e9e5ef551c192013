package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)

	repo := &mocks.HealthCheckRepo{}
	repo.On("PingNode", mock.Anything).Return(nil).Once()
	repo.On("PingNode", mock.Anything).Return(errors.New("connection refused")).Once()

	uc := New(repo)
	req.NoError(uc.Check(ctx.Background()))
	req.EqualError(uc.Check(ctx.Background()), "connection refused")
	repo.AssertExpectations(t)
}
