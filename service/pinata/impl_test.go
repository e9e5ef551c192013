package pinata

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type pinataSuite struct {
	suite.Suite
	srv      *httptest.Server
	handler  http.HandlerFunc
	requests int
	svc      Service
}

func TestPinataSuite(t *testing.T) {
	suite.Run(t, new(pinataSuite))
}

func (s *pinataSuite) SetupTest() {
	s.requests = 0
	s.handler = nil
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests++
		s.handler(w, r)
	}))
	s.svc = New(&ServiceCfg{
		HttpClient:   s.srv.Client(),
		ApiUrl:       s.srv.URL,
		Jwt:          "jwt-token",
		Gateway:      "https://demo.mypinata.cloud/",
		GatewayToken: "gw token",
	})
}

func (s *pinataSuite) TearDownTest() {
	s.srv.Close()
}

func (s *pinataSuite) TestResolveURL() {
	want := "https://demo.mypinata.cloud/ipfs/QmCid?pinataGatewayToken=gw+token"
	s.Equal(want, s.svc.ResolveURL("QmCid"))
	s.Equal(want, s.svc.ResolveURL("QmCid"))
	s.Equal(0, s.requests)
}

func (s *pinataSuite) TestUploadAsset() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinPath, r.URL.Path)
		s.Equal("Bearer jwt-token", r.Header.Get("Authorization"))
		s.Require().NoError(r.ParseMultipartForm(1 << 20))

		f, h, err := r.FormFile("file")
		s.Require().NoError(err)
		s.Equal("cat.png", h.Filename)
		s.Equal("image/png", h.Header.Get("Content-Type"))
		body, _ := io.ReadAll(f)
		s.Equal(pngHeader, body)

		meta := PinataMetadata{}
		s.NoError(json.Unmarshal([]byte(r.FormValue("pinataMetadata")), &meta))
		s.Equal(assetPinName, meta.Name)
		s.Equal(map[string]interface{}{"filename": "cat.png"}, meta.KeyValues)

		opts := PinataOptions{CidVersion: CidVersion_1}
		s.NoError(json.Unmarshal([]byte(r.FormValue("pinataOptions")), &opts))
		s.Equal(CidVersion_0, opts.CidVersion)

		w.Write([]byte(`{"IpfsHash":"QmAsset","PinSize":10}`))
	}
	cid, err := s.svc.UploadAsset(ctx.Background(), bytes.NewReader(pngHeader), "cat.png")
	s.NoError(err)
	s.Equal("QmAsset", cid)
}

func (s *pinataSuite) TestUploadAssetNamesUnnamedFile() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(r.ParseMultipartForm(1 << 20))
		_, h, err := r.FormFile("file")
		s.Require().NoError(err)
		s.Equal("file.png", h.Filename)
		w.Write([]byte(`{"IpfsHash":"QmAsset"}`))
	}
	_, err := s.svc.UploadAsset(ctx.Background(), bytes.NewReader(pngHeader), "")
	s.NoError(err)
}

func (s *pinataSuite) TestUploadMetadata() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinJsonPath, r.URL.Path)
		s.Equal("application/json", r.Header.Get("Content-Type"))
		var body struct {
			PinataContent  domain.MetadataDocument `json:"pinataContent"`
			PinataMetadata PinataMetadata          `json:"pinataMetadata"`
			PinataOptions  *PinataOptions          `json:"pinataOptions"`
		}
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal(domain.MetadataDocument{Name: "cat", Description: "a cat", Price: "0.01", Image: "QmAsset"}, body.PinataContent)
		s.Equal(metadataPinName, body.PinataMetadata.Name)
		s.Equal(map[string]interface{}{"tokenName": "cat"}, body.PinataMetadata.KeyValues)
		s.Require().NotNil(body.PinataOptions)
		s.Equal(CidVersion_0, body.PinataOptions.CidVersion)
		w.Write([]byte(`{"IpfsHash":"QmMeta"}`))
	}
	cid, err := s.svc.UploadMetadata(ctx.Background(), domain.MetadataDocument{
		Name: "cat", Description: "a cat", Price: "0.01", Image: "QmAsset",
	})
	s.NoError(err)
	s.Equal("QmMeta", cid)
}

func (s *pinataSuite) TestUploadFailures() {
	tests := []struct {
		desc    string
		handler http.HandlerFunc
	}{
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"bad jwt"}`))
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}},
		{"no hash", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}},
	}
	for _, t := range tests {
		s.handler = t.handler
		_, err := s.svc.UploadMetadata(ctx.Background(), domain.MetadataDocument{Name: "x"})
		s.True(errors.Is(err, domain.ErrUploadFailure), t.desc)
		_, err = s.svc.UploadAsset(ctx.Background(), bytes.NewReader(pngHeader), "x.png")
		s.True(errors.Is(err, domain.ErrUploadFailure), t.desc)
	}
}

func (s *pinataSuite) TestTransportFault() {
	s.srv.Close()
	_, err := s.svc.UploadAsset(ctx.Background(), bytes.NewReader(pngHeader), "x.png")
	s.True(errors.Is(err, domain.ErrUploadFailure))
}

func (s *pinataSuite) TestMalformedApiUrl() {
	svc := New(&ServiceCfg{ApiUrl: "http://bad host", Jwt: "jwt-token"})

	_, err := svc.UploadAsset(ctx.Background(), bytes.NewReader(pngHeader), "x.png")
	s.True(errors.Is(err, domain.ErrUploadFailure))
	_, err = svc.UploadMetadata(ctx.Background(), domain.MetadataDocument{Name: "x"})
	s.True(errors.Is(err, domain.ErrUploadFailure))
	s.Equal(0, s.requests)
}

func (s *pinataSuite) TestRejectedPinOption() {
	reject := func(*PinOptions) error { return errors.New("bad option") }

	_, err := s.svc.Pin(ctx.Background(), bytes.NewReader(pngHeader), "x.png", reject)
	s.True(errors.Is(err, domain.ErrUploadFailure))
	_, err = s.svc.PinJson(ctx.Background(), map[string]string{"a": "b"}, reject)
	s.True(errors.Is(err, domain.ErrUploadFailure))
	s.Equal(0, s.requests)
}
