package repository

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/nftmarket/base/ctx"
)

const (
	testCid  = "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq"
	testBody = `{"name":"Pinnie","description":"first mint","image":"QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ"}`
)

var (
	mockCtx = bCtx.Background()
)

type readerSuite struct {
	suite.Suite
	srv      *httptest.Server
	lastPath string
	lastArg  string
	status   int
}

func TestReaders(t *testing.T) {
	suite.Run(t, new(readerSuite))
}

func (s *readerSuite) SetupTest() {
	s.status = http.StatusOK
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastArg = r.URL.Query().Get("arg")
		if s.status != http.StatusOK {
			w.WriteHeader(s.status)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, testBody)
	}))
}

func (s *readerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *readerSuite) TestHttpReader() {
	r := NewHttpReaderRepo(nil, time.Second, map[string]string{"Accept": "application/json"})
	b, err := r.Get(mockCtx, s.srv.URL+"/metadata.json")
	s.Require().NoError(err)
	s.Equal(testBody, string(b))
	s.Equal("/metadata.json", s.lastPath)
}

func (s *readerSuite) TestHttpReaderBadStatus() {
	s.status = http.StatusNotFound
	r := NewHttpReaderRepo(nil, time.Second, nil)
	_, err := r.Get(mockCtx, s.srv.URL+"/missing")
	s.Error(err)
}

func (s *readerSuite) TestGatewayReader() {
	resolve := func(cid string) string {
		return s.srv.URL + "/ipfs/" + cid + "?pinataGatewayToken=tok"
	}
	r := NewIpfsGatewayReaderRepo(nil, resolve, time.Second)
	b, err := r.Get(mockCtx, testCid)
	s.Require().NoError(err)
	s.Equal(testBody, string(b))
	s.Equal("/ipfs/"+testCid, s.lastPath)
}

func (s *readerSuite) TestNodeApiReader() {
	r := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(s.srv.URL), time.Second)
	b, err := r.Get(mockCtx, testCid)
	s.Require().NoError(err)
	s.Equal(testBody, string(b))
	s.Equal("/api/v0/cat", s.lastPath)
	s.Equal(testCid, s.lastArg)
}
