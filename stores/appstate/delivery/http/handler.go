package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/delivery"
	"github.com/x-xyz/nftmarket/domain/appstate"
	"github.com/x-xyz/nftmarket/domain/listing"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type handler struct {
	store appstate.Store
}

func New(e *echo.Echo, store appstate.Store) {
	h := &handler{store: store}
	e.GET("/state", h.snapshot)
	e.GET("/ws/state", h.stream)
}

// snapshot
//
//	@Summary	Current view state
//	@Tags		state
//	@Produce	json
//	@Success	200	{object}	appstate.Snapshot
//	@Router		/state [get]
func (h *handler) snapshot(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.store.Snapshot())
}

// stream pushes a snapshot on connect and after every change of either cell.
// Bursts of changes collapse into one push of the latest state.
func (h *handler) stream(c echo.Context) error {
	cont := c.Get("ctx").(ctx.Ctx)
	conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		cont.WithField("err", err).Error("upgrader.Upgrade failed")
		return err
	}
	defer conn.Close()

	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	unsubConn := h.store.SubscribeConnection(func(appstate.Connection) { notify() })
	defer unsubConn()
	unsubListings := h.store.SubscribeListings(func([]*listing.Listing) { notify() })
	defer unsubListings()

	// reads only to notice the peer going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	notify()
	for {
		select {
		case <-closed:
			return nil
		case <-changed:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return nil
			}
			if err := conn.WriteJSON(h.store.Snapshot()); err != nil {
				cont.WithField("err", err).Warn("conn.WriteJSON failed")
				return nil
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		}
	}
}
