package domain

import (
	"github.com/x-xyz/nftmarket/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}
