package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
)

const (
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	client       *http.Client
	apiUrl       string
	jwt          string
	gateway      string
	gatewayToken string
}

func New(cfg *ServiceCfg) Service {
	client := cfg.HttpClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &pinataImpl{
		client:       client,
		apiUrl:       strings.TrimRight(cfg.ApiUrl, "/"),
		jwt:          cfg.Jwt,
		gateway:      strings.TrimRight(cfg.Gateway, "/"),
		gatewayToken: cfg.GatewayToken,
	}
}

func (im *pinataImpl) ResolveURL(cid string) string {
	return fmt.Sprintf("%s/ipfs/%s?pinataGatewayToken=%s", im.gateway, cid, url.QueryEscape(im.gatewayToken))
}

func (im *pinataImpl) UploadAsset(c ctx.Ctx, file io.Reader, filename string) (string, error) {
	cid, err := im.Pin(c, file, filename,
		WithMetadata(PinataMetadata{
			Name:      assetPinName,
			KeyValues: map[string]interface{}{"filename": filename},
		}),
		WithOptions(PinataOptions{CidVersion: CidVersion_0}),
	)
	if err != nil {
		return "", xerrors.Errorf("upload asset: %w", err)
	}
	return cid, nil
}

func (im *pinataImpl) UploadMetadata(c ctx.Ctx, doc domain.MetadataDocument) (string, error) {
	cid, err := im.PinJson(c, doc,
		WithMetadata(PinataMetadata{
			Name:      metadataPinName,
			KeyValues: map[string]interface{}{"tokenName": doc.Name},
		}),
		WithOptions(PinataOptions{CidVersion: CidVersion_0}),
	)
	if err != nil {
		return "", xerrors.Errorf("upload metadata: %w", err)
	}
	return cid, nil
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, filename string, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", uploadFailure(err.Error())
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.WithField("err", err).Error("io.ReadAll failed")
		return "", uploadFailure(err.Error())
	}
	mime := mimetype.Detect(content)
	if filename == "" {
		filename = "file" + mime.Extension()
	}

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	h.Set("Content-Type", mime.String())
	if fw, err := w.CreatePart(h); err != nil {
		c.WithField("err", err).Error("w.CreatePart failed")
		return "", uploadFailure(err.Error())
	} else if _, err := fw.Write(content); err != nil {
		c.WithField("err", err).Error("fw.Write failed")
		return "", uploadFailure(err.Error())
	}

	if opts.Metadata != nil {
		if b, err := json.Marshal(opts.Metadata); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", uploadFailure(err.Error())
		} else if err := w.WriteField("pinataMetadata", string(b)); err != nil {
			return "", uploadFailure(err.Error())
		}
	}

	if opts.Options != nil {
		if b, err := json.Marshal(opts.Options); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", uploadFailure(err.Error())
		} else if err := w.WriteField("pinataOptions", string(b)); err != nil {
			return "", uploadFailure(err.Error())
		}
	}

	if err := w.Close(); err != nil {
		return "", uploadFailure(err.Error())
	}

	c.WithFields(log.Fields{"filename": filename, "mime": mime.String(), "size": len(content)}).Info("pinning file")
	return im.post(c, im.apiUrl+pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", uploadFailure(err.Error())
	}

	opts.PinataContent = value

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", uploadFailure(err.Error())
	}

	return im.post(c, im.apiUrl+pinJsonPath, "application/json", bytes.NewBuffer(body))
}

// post sends one pin request. There are no retries: every successful call
// creates a new pinned object.
func (im *pinataImpl) post(c ctx.Ctx, url, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(c, http.MethodPost, url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", uploadFailure(err.Error())
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+im.jwt)

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", uploadFailure(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
			"errorBody":  string(errorBody),
		}).Error("Request failed")
		return "", uploadFailure(fmt.Sprintf("status %d", resp.StatusCode))
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", uploadFailure(err.Error())
	}
	if p.IpfsHash == "" {
		c.WithField("url", url).Error("empty IpfsHash")
		return "", uploadFailure("empty IpfsHash")
	}

	return p.IpfsHash, nil
}

func uploadFailure(reason string) error {
	return xerrors.Errorf("%s: %w", reason, domain.ErrUploadFailure)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
