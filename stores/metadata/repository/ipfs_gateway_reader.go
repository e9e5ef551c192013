package repository

import (
	"net/http"
	"time"

	bCtx "github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

// UrlResolver turns a content id into a fetchable gateway url.
type UrlResolver func(cid string) string

type ipfsGatewayReaderRepo struct {
	http    domain.WebResourceReaderRepository
	resolve UrlResolver
}

// NewIpfsGatewayReaderRepo reads ipfs content over a http gateway, usually the
// dedicated pinata gateway whose urls need an access token.
func NewIpfsGatewayReaderRepo(client *http.Client, resolve UrlResolver, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{
		http:    NewHttpReaderRepo(client, timeout, nil),
		resolve: resolve,
	}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	body, err := r.http.Get(c, r.resolve(cid))
	if err != nil {
		c.WithField("cid", cid).Warn("gateway read failed")
		return nil, err
	}
	return body, nil
}
