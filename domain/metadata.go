package domain

import (
	"io"

	"github.com/x-xyz/nftmarket/base/ctx"
)

// MetadataDocument is the off-chain json a token uri points at. Image holds
// the content id of the pinned asset.
type MetadataDocument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price,omitempty"`
	Image       string `json:"image"`
}

// MetadataGateway pins mint inputs and builds gateway urls for pinned content.
type MetadataGateway interface {
	// ResolveURL is pure: no I/O and the same cid always gives the same url.
	ResolveURL(cid string) string
	UploadAsset(c ctx.Ctx, file io.Reader, filename string) (string, error)
	UploadMetadata(c ctx.Ctx, doc MetadataDocument) (string, error)
}

type MetadataUseCase interface {
	// Get reads the document behind a token uri: a bare cid, ipfs:// or http(s)://.
	Get(c ctx.Ctx, tokenUri string) (*MetadataDocument, error)
}
