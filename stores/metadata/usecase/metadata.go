package usecase

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	bCtx "github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/service/cache"
	"golang.org/x/xerrors"
)

var (
	errUnsupportedScheme = xerrors.New("unsupported scheme")
	errInvalidJson       = xerrors.New("invalid json")

	dedicatedPinataRegex = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)
	publicGateways       = []string{
		"https://gateway.pinata.cloud/ipfs/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
	}
)

type MetadataUseCaseCfg struct {
	HttpReader domain.WebResourceReaderRepository
	IpfsReader domain.WebResourceReaderRepository
	// optional; documents are content addressed so entries never go stale
	Cache cache.Service
}

type metadataUseCase struct {
	httpReader domain.WebResourceReaderRepository
	ipfsReader domain.WebResourceReaderRepository
	cache      cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		httpReader: cfg.HttpReader,
		ipfsReader: cfg.IpfsReader,
		cache:      cfg.Cache,
	}
}

func (u *metadataUseCase) Get(c bCtx.Ctx, tokenUri string) (*domain.MetadataDocument, error) {
	tokenUri = strings.TrimSpace(tokenUri)
	if tokenUri == "" {
		return nil, xerrors.Errorf("empty token uri: %w", domain.ErrMetadataUnresolvable)
	}

	doc := &domain.MetadataDocument{}
	getter := func() (interface{}, error) {
		return u.fetch(c, tokenUri)
	}

	var err error
	if u.cache != nil {
		err = u.cache.GetByFunc(c, tokenUri, doc, getter)
	} else {
		var v interface{}
		if v, err = getter(); err == nil {
			doc = v.(*domain.MetadataDocument)
		}
	}
	if err != nil {
		c.WithFields(log.Fields{
			"tokenUri": tokenUri,
			"err":      err,
		}).Error("failed to resolve metadata")
		return nil, xerrors.Errorf("%s: %w", tokenUri, domain.ErrMetadataUnresolvable)
	}
	return doc, nil
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, tokenUri string) (*domain.MetadataDocument, error) {
	data, err := u.read(c, tokenUri)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, errInvalidJson
	}
	doc := &domain.MetadataDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (u *metadataUseCase) read(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	switch pUrl.Scheme {
	case "":
		// token uris minted here are bare content ids
		return u.ipfsReader.Get(c, strings.TrimPrefix(rawUrl, "/ipfs/"))
	case "ipfs":
		cid := strings.TrimPrefix(rawUrl, "ipfs://")
		cid = strings.TrimPrefix(cid, "ipfs/")
		return u.ipfsReader.Get(c, cid)
	case "http", "https":
		data, err := u.httpReader.Get(c, rawUrl)
		if err == nil {
			return data, nil
		}
		if cid := gatewayCid(rawUrl); cid != "" {
			c.WithFields(log.Fields{
				"url": rawUrl,
				"cid": cid,
			}).Info("falling back to ipfs")
			return u.ipfsReader.Get(c, cid)
		}
		return nil, err
	default:
		return nil, errUnsupportedScheme
	}
}

// gatewayCid extracts the content path from a public or dedicated pinata
// gateway url, dropping any query.
func gatewayCid(rawUrl string) string {
	if i := strings.Index(rawUrl, "?"); i >= 0 {
		rawUrl = rawUrl[:i]
	}
	for _, p := range publicGateways {
		if strings.HasPrefix(rawUrl, p) {
			return strings.TrimPrefix(rawUrl, p)
		}
	}
	if loc := dedicatedPinataRegex.FindStringIndex(rawUrl); loc != nil {
		return rawUrl[loc[1]:]
	}
	return ""
}
