package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/domain"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       interface{}
		wantStatus int
		wantBody   JsonResponse
	}{
		{
			name:       "success",
			status:     http.StatusOK,
			data:       "ok",
			wantStatus: http.StatusOK,
			wantBody:   JsonResponse{"ok", JsonResponseStatusSuccess},
		},
		{
			name:       "wrapped not found",
			status:     http.StatusInternalServerError,
			data:       xerrors.Errorf("fetchSingleNFT: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   JsonResponse{"fetchSingleNFT: " + domain.ErrNotFound.Error(), JsonResponseStatusFail},
		},
		{
			name:       "busy",
			status:     http.StatusInternalServerError,
			data:       domain.ErrFlowBusy,
			wantStatus: http.StatusConflict,
			wantBody:   JsonResponse{domain.ErrFlowBusy.Error(), JsonResponseStatusFail},
		},
		{
			name:       "unknown error keeps status",
			status:     http.StatusInternalServerError,
			data:       xerrors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   JsonResponse{"boom", JsonResponseStatusFail},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, MakeJsonResp(c, tt.status, tt.data))
			require.Equal(t, tt.wantStatus, rec.Code)

			var got JsonResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, tt.wantBody, got)
		})
	}
}
