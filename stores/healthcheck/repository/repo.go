package repository

import (
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	hcdomain "github.com/x-xyz/nftmarket/domain/healthcheck"
	"github.com/x-xyz/nftmarket/service/chain"
)

const pingTimeout = 2 * time.Second

type impl struct {
	client chain.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(client chain.Client) hcdomain.HealthCheckRepo {
	return &impl{
		client: client,
	}
}

func (im *impl) PingNode(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.client.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping node error")
		return err
	}
	return nil
}
