package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/appstate"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/domain/flow"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/domain/market"
	"github.com/x-xyz/nftmarket/domain/marketplace"
	"github.com/x-xyz/nftmarket/domain/mocks"
	appstateUsecase "github.com/x-xyz/nftmarket/stores/appstate/usecase"
	flowUsecase "github.com/x-xyz/nftmarket/stores/flow/usecase"
)

var mockCtx = ctx.Background()

const (
	viewer     = domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	other      = domain.Address("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	marketAddr = domain.Address("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fakeResolver struct {
	ev *event.Event
}

func (f *fakeResolver) Extract(receipt *types.Receipt, kind event.Kind) (*event.Event, bool) {
	if receipt == nil || f.ev == nil || f.ev.Kind != kind {
		return nil, false
	}
	return f.ev, true
}

type fakeAnnouncer struct {
	got []market.Announcement
}

func (f *fakeAnnouncer) Announce(c ctx.Ctx, a market.Announcement) error {
	f.got = append(f.got, a)
	return xerrors.New("discord down")
}

type marketSuite struct {
	suite.Suite
	contract  *mocks.MarketplaceContract
	assembler *mocks.Assembler
	gateway   *mocks.MetadataGateway
	resolver  *fakeResolver
	announcer *fakeAnnouncer
	store     appstate.Store
	flows     flow.Registry
	im        *impl
}

func TestMarket(t *testing.T) {
	suite.Run(t, new(marketSuite))
}

func (s *marketSuite) SetupTest() {
	s.contract = &mocks.MarketplaceContract{}
	s.assembler = &mocks.Assembler{}
	s.gateway = &mocks.MetadataGateway{}
	s.resolver = &fakeResolver{}
	s.announcer = &fakeAnnouncer{}
	s.store = appstateUsecase.NewStore()
	s.flows = flowUsecase.NewRegistry(&flowUsecase.RegistryCfg{Timeout: 2 * time.Second})
	s.im = New(&MarketUseCaseCfg{
		Contract:  s.contract,
		Assembler: s.assembler,
		Gateway:   s.gateway,
		Resolver:  s.resolver,
		Store:     s.store,
		Flows:     s.flows,
		Announcer: s.announcer,
	}).(*impl)
}

func (s *marketSuite) TearDownTest() {
	s.contract.AssertExpectations(s.T())
	s.assembler.AssertExpectations(s.T())
	s.gateway.AssertExpectations(s.T())
}

func (s *marketSuite) connect(addr domain.Address) {
	s.store.SetConnection(appstate.ConnectionFromAccounts([]domain.Address{addr}))
}

func (s *marketSuite) wait(id string) *flow.Flow {
	c, cancel := ctx.WithTimeout(mockCtx, 3*time.Second)
	defer cancel()
	f, err := s.flows.Wait(c, id)
	s.Require().NoError(err)
	return f
}

func tokenIs(id int64) interface{} {
	return mock.MatchedBy(func(t *big.Int) bool { return t != nil && t.Int64() == id })
}

func weiIs(wei string) interface{} {
	return mock.MatchedBy(func(t *big.Int) bool { return t != nil && t.String() == wei })
}

func rawItem(id int64, seller, owner domain.Address) *marketplace.MarketItem {
	return &marketplace.MarketItem{
		TokenId: big.NewInt(id),
		Seller:  seller,
		Owner:   owner,
		Price:   big.NewInt(10000000000000000),
	}
}

func pendingTx(hash domain.TxHash, receipt *types.Receipt, err error) *mocks.PendingTx {
	tx := &mocks.PendingTx{}
	tx.On("Hash").Return(hash)
	tx.On("Wait", mock.Anything).Return(receipt, err)
	return tx
}

func (s *marketSuite) TestBrowseReplacesListings() {
	raws := []marketplace.MarketItem{*rawItem(1, other, marketAddr), *rawItem(2, other, marketAddr)}
	listings := []*listing.Listing{{TokenId: "1"}, {TokenId: "2"}}
	s.contract.On("FetchMarketItems", mock.Anything).Return(raws, nil).Once()
	s.assembler.On("Assemble", mock.Anything, raws, mock.Anything).Return(listings, nil).Once()

	got, err := s.im.Browse(mockCtx)
	s.Require().NoError(err)
	s.Equal(listings, got)
	s.Len(s.store.Listings(), 2)
}

func (s *marketSuite) TestBrowseKeepsListingsOnFailure() {
	s.store.ReplaceListings([]*listing.Listing{{TokenId: "9"}})
	raws := []marketplace.MarketItem{*rawItem(1, other, marketAddr)}
	s.contract.On("FetchMarketItems", mock.Anything).Return(raws, nil).Once()
	s.assembler.On("Assemble", mock.Anything, raws, mock.Anything).Return(nil, domain.ErrMetadataUnresolvable).Once()

	_, err := s.im.Browse(mockCtx)
	s.ErrorIs(err, domain.ErrMetadataUnresolvable)
	s.Equal(domain.TokenId("9"), s.store.Listings()[0].TokenId)
}

func (s *marketSuite) TestMyItemsRequiresConnection() {
	_, err := s.im.MyItems(mockCtx)
	s.ErrorIs(err, domain.ErrNotConnected)
}

func (s *marketSuite) TestMyItems() {
	s.connect(viewer)
	raws := []marketplace.MarketItem{*rawItem(3, domain.EmptyAddress, viewer)}
	s.contract.On("FetchMyNFTs", mock.Anything, viewer).Return(raws, nil).Once()
	s.assembler.On("Assemble", mock.Anything, raws, mock.Anything).Return([]*listing.Listing{{TokenId: "3"}}, nil).Once()

	got, err := s.im.MyItems(mockCtx)
	s.Require().NoError(err)
	s.Len(got, 1)
	s.Len(s.store.Listings(), 1)
}

func (s *marketSuite) TestDetailRelations() {
	cases := []struct {
		name     string
		viewer   domain.Address
		seller   domain.Address
		owner    domain.Address
		relation market.Relation
		action   market.Action
	}{
		{"owner wins over seller", viewer, viewer, viewer, market.RelationOwner, market.ActionResell},
		{"seller", viewer, viewer, marketAddr, market.RelationSeller, market.ActionSellerNotice},
		{"buyer", viewer, other, marketAddr, market.RelationBuyer, market.ActionBuy},
		{"disconnected", "", other, marketAddr, market.RelationBuyer, market.ActionBuy},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.viewer != "" {
				s.connect(tc.viewer)
			}
			raw := rawItem(4, tc.seller, tc.owner)
			s.contract.On("FetchSingleNFT", mock.Anything, tokenIs(4)).Return(raw, nil).Once()
			s.assembler.On("Assemble", mock.Anything, []marketplace.MarketItem{*raw}, mock.Anything).Return([]*listing.Listing{{
				TokenId: "4",
				Seller:  tc.seller.ToLower(),
				Owner:   tc.owner.ToLower(),
			}}, nil).Once()

			d, err := s.im.Detail(mockCtx, "4")
			s.Require().NoError(err)
			s.Equal(tc.relation, d.Relation)
			s.Equal(tc.action, d.Action)
		})
	}
}

func (s *marketSuite) TestDetailBadTokenId() {
	_, err := s.im.Detail(mockCtx, "abc")
	s.ErrorIs(err, domain.ErrBadParamInput)
	_, err = s.im.Detail(mockCtx, "0")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *marketSuite) TestDetailNotFound() {
	s.contract.On("FetchSingleNFT", mock.Anything, tokenIs(5)).Return(&marketplace.MarketItem{TokenId: big.NewInt(0)}, nil).Once()

	_, err := s.im.Detail(mockCtx, "5")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *marketSuite) TestBuy() {
	s.connect(viewer)
	s.store.ReplaceListings([]*listing.Listing{{TokenId: "7"}, {TokenId: "8"}})
	raw := rawItem(7, other, marketAddr)
	s.contract.On("FetchSingleNFT", mock.Anything, tokenIs(7)).Return(raw, nil).Once()
	s.contract.On("CreateMarketSale", mock.Anything, tokenIs(7), weiIs("10000000000000000")).
		Return(pendingTx("0xbuy", &types.Receipt{Status: 1}, nil), nil).Once()

	f, err := s.im.Buy(mockCtx, "7")
	s.Require().NoError(err)
	s.Equal(flow.KindBuy, f.Kind)
	s.Equal("item:7", f.Key)

	done := s.wait(f.Id)
	s.Equal(flow.StateSuccess, done.State)
	s.Equal(domain.TxHash("0xbuy"), done.TxHash)
	s.Equal("/my-nfts?bought=successfully-7", done.Redirect)
	s.Require().Len(s.store.Listings(), 1)
	s.Equal(domain.TokenId("8"), s.store.Listings()[0].TokenId)
	s.Len(s.announcer.got, 1)
}

func (s *marketSuite) TestBuyNotOfferedToSeller() {
	s.connect(viewer)
	s.contract.On("FetchSingleNFT", mock.Anything, tokenIs(7)).Return(rawItem(7, viewer, marketAddr), nil).Once()

	_, err := s.im.Buy(mockCtx, "7")
	s.ErrorIs(err, domain.ErrActionNotOffered)
}

func (s *marketSuite) TestBuyRevertedKeepsListing() {
	s.connect(viewer)
	s.store.ReplaceListings([]*listing.Listing{{TokenId: "7"}})
	s.contract.On("FetchSingleNFT", mock.Anything, tokenIs(7)).Return(rawItem(7, other, marketAddr), nil).Once()
	s.contract.On("CreateMarketSale", mock.Anything, tokenIs(7), mock.Anything).
		Return(pendingTx("0xbuy", nil, xerrors.Errorf("status 0: %w", domain.ErrTransactionFailed)), nil).Once()

	f, err := s.im.Buy(mockCtx, "7")
	s.Require().NoError(err)

	done := s.wait(f.Id)
	s.Equal(flow.StateFailed, done.State)
	s.Equal(flow.ErrorKindTransactionFailed, done.Error)
	s.Len(s.store.Listings(), 1)
	s.Empty(s.announcer.got)
}

func (s *marketSuite) TestResell() {
	s.connect(viewer)
	s.contract.On("FetchSingleNFT", mock.Anything, tokenIs(6)).Return(rawItem(6, other, viewer), nil).Once()
	s.contract.On("GetListingPrice", mock.Anything).Return(big.NewInt(250000000000000), nil).Once()
	s.contract.On("ResellToken", mock.Anything, tokenIs(6), weiIs("20000000000000000"), weiIs("250000000000000")).
		Return(pendingTx("0xresell", &types.Receipt{Status: 1}, nil), nil).Once()

	f, err := s.im.Resell(mockCtx, "6", "0.02")
	s.Require().NoError(err)

	done := s.wait(f.Id)
	s.Equal(flow.StateSuccess, done.State)
	s.Equal("/?relist=successfully", done.Redirect)
}

func (s *marketSuite) TestResellRejectsBadPrice() {
	s.connect(viewer)
	for _, price := range []string{"", "abc", "-1", "0", "0.0000000000000000001"} {
		_, err := s.im.Resell(mockCtx, "6", price)
		s.ErrorIs(err, domain.ErrInvalidNumberFormat, price)
	}
}

func (s *marketSuite) TestResellNotOfferedToBuyer() {
	s.connect(viewer)
	s.contract.On("FetchSingleNFT", mock.Anything, tokenIs(6)).Return(rawItem(6, other, marketAddr), nil).Once()

	_, err := s.im.Resell(mockCtx, "6", "1")
	s.ErrorIs(err, domain.ErrActionNotOffered)
}

func (s *marketSuite) mintForm() market.MintForm {
	return market.MintForm{
		Name:        "Sunset",
		Description: "orange sky",
		Price:       "0.01",
		Image:       pngHeader,
		Filename:    "sunset.png",
	}
}

func (s *marketSuite) TestMint() {
	s.connect(viewer)
	s.gateway.On("UploadAsset", mock.Anything, mock.Anything, "sunset.png").Return("QmImage", nil).Once()
	s.gateway.On("UploadMetadata", mock.Anything, domain.MetadataDocument{
		Name:        "Sunset",
		Description: "orange sky",
		Price:       "0.01",
		Image:       "QmImage",
	}).Return("QmMeta", nil).Once()
	s.gateway.On("ResolveURL", "QmImage").Return("https://gw/ipfs/QmImage").Once()
	s.contract.On("GetListingPrice", mock.Anything).Return(big.NewInt(250000000000000), nil).Once()
	s.contract.On("CreateToken", mock.Anything, "QmMeta", weiIs("10000000000000000"), weiIs("250000000000000")).
		Return(pendingTx("0xmint", &types.Receipt{Status: 1}, nil), nil).Once()
	s.resolver.ev = &event.Event{
		Kind:              event.KindMarketItemCreated,
		MarketItemCreated: &event.MarketItemCreated{TokenId: big.NewInt(12)},
	}

	f, err := s.im.Mint(mockCtx, s.mintForm())
	s.Require().NoError(err)
	s.Equal("mint:"+viewer.ToLowerStr(), f.Key)

	done := s.wait(f.Id)
	s.Equal(flow.StateSuccess, done.State)
	s.Equal(domain.TokenId("12"), done.TokenId)
	s.Equal("/?created=successfully-12", done.Redirect)
	s.Require().Len(s.announcer.got, 1)
	s.Equal("https://gw/ipfs/QmImage", s.announcer.got[0].ImageUrl)
}

func (s *marketSuite) TestMintUploadFailureStopsEarly() {
	s.connect(viewer)
	s.gateway.On("UploadAsset", mock.Anything, mock.Anything, "sunset.png").
		Return("", xerrors.Errorf("status 401: %w", domain.ErrUploadFailure)).Once()

	f, err := s.im.Mint(mockCtx, s.mintForm())
	s.Require().NoError(err)

	done := s.wait(f.Id)
	s.Equal(flow.StateFailed, done.State)
	s.Equal(flow.ErrorKindUploadFailure, done.Error)
	s.gateway.AssertNotCalled(s.T(), "UploadMetadata", mock.Anything, mock.Anything)
	s.contract.AssertNotCalled(s.T(), "CreateToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *marketSuite) TestMintEventMissing() {
	s.connect(viewer)
	s.gateway.On("UploadAsset", mock.Anything, mock.Anything, mock.Anything).Return("QmImage", nil).Once()
	s.gateway.On("UploadMetadata", mock.Anything, mock.Anything).Return("QmMeta", nil).Once()
	s.contract.On("GetListingPrice", mock.Anything).Return(big.NewInt(1), nil).Once()
	s.contract.On("CreateToken", mock.Anything, "QmMeta", mock.Anything, mock.Anything).
		Return(pendingTx("0xmint", &types.Receipt{Status: 1}, nil), nil).Once()

	f, err := s.im.Mint(mockCtx, s.mintForm())
	s.Require().NoError(err)

	done := s.wait(f.Id)
	s.Equal(flow.StateFailed, done.State)
	s.Equal(flow.ErrorKindEventNotFound, done.Error)
	s.Empty(s.announcer.got)
}

func (s *marketSuite) TestMintValidation() {
	s.connect(viewer)

	form := s.mintForm()
	form.Name = ""
	_, err := s.im.Mint(mockCtx, form)
	s.ErrorIs(err, domain.ErrBadParamInput)

	form = s.mintForm()
	form.Image = []byte("just some text")
	_, err = s.im.Mint(mockCtx, form)
	s.ErrorIs(err, domain.ErrBadParamInput)

	form = s.mintForm()
	form.Price = "free"
	_, err = s.im.Mint(mockCtx, form)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *marketSuite) TestMintBusy() {
	s.connect(viewer)
	release := make(chan struct{})
	s.gateway.On("UploadAsset", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return("", domain.ErrUploadFailure).Once()

	f, err := s.im.Mint(mockCtx, s.mintForm())
	s.Require().NoError(err)
	_, err = s.im.Mint(mockCtx, s.mintForm())
	s.ErrorIs(err, domain.ErrFlowBusy)

	close(release)
	s.wait(f.Id)
}

func (s *marketSuite) TestWritesRequireConnection() {
	_, err := s.im.Buy(mockCtx, "1")
	s.ErrorIs(err, domain.ErrNotConnected)
	_, err = s.im.Resell(mockCtx, "1", "1")
	s.ErrorIs(err, domain.ErrNotConnected)
	_, err = s.im.Mint(mockCtx, s.mintForm())
	s.ErrorIs(err, domain.ErrNotConnected)
}
