package pinata

import (
	"io"
	"net/http"
	"time"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

const (
	// names the pinned objects carry in the pinata dashboard
	assetPinName    = "pinnie"
	metadataPinName = "Pinnie NFT Metadata"
)

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

// PinataOptions.CidVersion 0 yields the bare "Qm..." ids stored as token uris.
type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}

type ServiceCfg struct {
	HttpClient   *http.Client
	ApiUrl       string
	Jwt          string
	Gateway      string
	GatewayToken string
	Timeout      time.Duration
}

// Service pins content to ipfs through pinata and builds gateway urls for it.
type Service interface {
	domain.MetadataGateway

	Pin(c ctx.Ctx, file io.Reader, filename string, opts ...Options) (string, error)
	PinJson(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
}
