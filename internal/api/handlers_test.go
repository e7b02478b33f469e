package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hashvault-io/hashvault-core/internal/config"
	"github.com/hashvault-io/hashvault-core/internal/db"
	"github.com/hashvault-io/hashvault-core/internal/db/model"
	"github.com/hashvault-io/hashvault-core/internal/observability/metrics"
	"github.com/hashvault-io/hashvault-core/internal/queue"
	"github.com/hashvault-io/hashvault-core/internal/services"
	"github.com/hashvault-io/hashvault-core/tests/mocks"
)

func testServer(t *testing.T) (*Server, *mocks.DbInterface) {
	t.Helper()
	metrics.Init(0)

	dbMock := mocks.NewDbInterface(t)
	qm, err := queue.NewQueueManager(&config.QueueConfig{Enabled: false})
	require.NoError(t, err)

	cfg := &config.Config{
		Mining: config.MiningConfig{
			BlockReward:   50_000_000,
			ClaimWindow:   48 * time.Hour,
			MaxRetryTimes: 1,
			RetryInterval: time.Millisecond,
		},
		Gateway: config.GatewayConfig{
			WithdrawalFee:          1_000_000,
			WithdrawalCooldown:     24 * time.Hour,
			MaxSupply:              21_000_000_000_000,
			TransferLockThreshold:  "0.8",
			StakingAPR:             "0.365",
			AllowedStakeTerms:      []int{30, 90},
			HashPowerPrice:         10_000_000,
			ReferralCommissionRate: "0.05",
			ReferralHashPowerRate:  "0.1",
			MaxRetryTimes:          1,
			RetryInterval:          time.Millisecond,
		},
	}

	srv := New(&config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         8080,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}, services.NewService(cfg, dbMock, qm))

	return srv, dbMock
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	return rec
}

func TestGetBalanceEndpoint(t *testing.T) {
	srv, dbMock := testServer(t)

	dbMock.On("GetAccount", mock.Anything, "alice").
		Return(&model.AccountDocument{ID: "alice", UsdtBalance: 5_000_000}, nil).Once()
	dbMock.On("FindClaimableRewards", mock.Anything, "alice", mock.Anything).
		Return([]model.UnclaimedRewardDocument{{Amount: 250_000}}, nil).Once()

	rec := doRequest(t, srv, http.MethodGet, "/v1/accounts/alice/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data services.BalanceDetails `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(5_000_000), resp.Data.UsdtBalance)
	require.Equal(t, int64(250_000), resp.Data.UnclaimedRewards)
}

func TestGetBalanceEndpoint_UnknownAccount(t *testing.T) {
	srv, dbMock := testServer(t)

	dbMock.On("GetAccount", mock.Anything, "ghost").
		Return(nil, &db.NotFoundError{Key: "ghost", Message: "account not found"}).Once()

	rec := doRequest(t, srv, http.MethodGet, "/v1/accounts/ghost/balance", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClaimEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv, dbMock := testServer(t)

		dbMock.On("GetAccount", mock.Anything, "alice").
			Return(&model.AccountDocument{ID: "alice"}, nil).Once()
		dbMock.On("ClaimRewards", mock.Anything, "alice", mock.Anything).
			Return(int64(1_000_000), int64(2), nil).Once()

		rec := doRequest(t, srv, http.MethodPost, "/v1/accounts/alice/claim", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("nothing claimable is a conflict", func(t *testing.T) {
		srv, dbMock := testServer(t)

		dbMock.On("GetAccount", mock.Anything, "alice").
			Return(&model.AccountDocument{ID: "alice"}, nil).Once()
		dbMock.On("ClaimRewards", mock.Anything, "alice", mock.Anything).
			Return(int64(0), int64(0), nil).Once()

		rec := doRequest(t, srv, http.MethodPost, "/v1/accounts/alice/claim", nil)
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("frozen account is forbidden", func(t *testing.T) {
		srv, dbMock := testServer(t)

		dbMock.On("GetAccount", mock.Anything, "alice").
			Return(&model.AccountDocument{ID: "alice", Frozen: true}, nil).Once()

		rec := doRequest(t, srv, http.MethodPost, "/v1/accounts/alice/claim", nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDepositEndpoints(t *testing.T) {
	t.Run("request then approve", func(t *testing.T) {
		srv, dbMock := testServer(t)

		dbMock.On("GetAccount", mock.Anything, "alice").
			Return(&model.AccountDocument{ID: "alice"}, nil).Twice()
		dbMock.On("InsertLedgerEntry", mock.Anything, mock.Anything).Return(nil).Once()

		rec := doRequest(t, srv, http.MethodPost, "/v1/deposits", depositRequest{
			AccountID: "alice",
			Amount:    100_000_000,
			TxHash:    "0xabc",
			Network:   "TRC20",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created struct {
			Data model.LedgerEntryDocument `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		pending := &model.LedgerEntryDocument{
			EntryID:   created.Data.EntryID,
			Type:      created.Data.Type,
			AccountID: "alice",
			Amount:    100_000_000,
		}
		dbMock.On("GetLedgerEntry", mock.Anything, created.Data.EntryID).Return(pending, nil).Once()
		dbMock.On("ApproveDeposit", mock.Anything, created.Data.EntryID, (*model.LedgerEntryDocument)(nil), mock.Anything).
			Return(pending, nil).Once()

		rec = doRequest(t, srv, http.MethodPost, "/v1/admin/deposits/"+created.Data.EntryID+"/approve", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate tx hash is a conflict", func(t *testing.T) {
		srv, dbMock := testServer(t)

		dbMock.On("GetAccount", mock.Anything, "alice").
			Return(&model.AccountDocument{ID: "alice"}, nil).Once()
		dbMock.On("InsertLedgerEntry", mock.Anything, mock.Anything).
			Return(&db.DuplicateKeyError{Key: "0xabc", Message: "ledger entry with this tx hash already exists"}).Once()

		rec := doRequest(t, srv, http.MethodPost, "/v1/deposits", depositRequest{
			AccountID: "alice",
			Amount:    100_000_000,
			TxHash:    "0xabc",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("zero amount is a bad request", func(t *testing.T) {
		srv, _ := testServer(t)

		rec := doRequest(t, srv, http.MethodPost, "/v1/deposits", depositRequest{
			AccountID: "alice",
			TxHash:    "0xabc",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBlockEndpoint(t *testing.T) {
	t.Run("returns a mined block", func(t *testing.T) {
		srv, dbMock := testServer(t)

		minedAt := time.Now().UTC().Truncate(time.Millisecond)
		dbMock.On("GetBlock", mock.Anything, int64(42)).
			Return(&model.BlockDocument{Height: 42, Reward: 50_000_000, TotalHashPower: 1000, MinedAt: minedAt}, nil).Once()

		rec := doRequest(t, srv, http.MethodGet, "/v1/blocks/42", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data model.BlockDocument `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, int64(42), resp.Data.Height)
		require.Equal(t, int64(50_000_000), resp.Data.Reward)
	})

	t.Run("unknown height is 404", func(t *testing.T) {
		srv, dbMock := testServer(t)

		dbMock.On("GetBlock", mock.Anything, int64(99)).
			Return((*model.BlockDocument)(nil), &db.NotFoundError{Key: "99"}).Once()

		rec := doRequest(t, srv, http.MethodGet, "/v1/blocks/99", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed height is 400", func(t *testing.T) {
		srv, dbMock := testServer(t)

		rec := doRequest(t, srv, http.MethodGet, "/v1/blocks/latest", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		dbMock.AssertNotCalled(t, "GetBlock", mock.Anything, mock.Anything)
	})
}

func TestStatsEndpoint(t *testing.T) {
	srv, dbMock := testServer(t)

	dbMock.On("CalculateNetworkStats", mock.Anything).
		Return(&db.NetworkStatsResult{TotalHashPower: 1234, CirculatingSupply: 9_000_000}, nil).Once()
	dbMock.On("GetLatestBlock", mock.Anything).
		Return(&model.BlockDocument{Height: 77, MinedAt: time.Now().UTC()}, nil).Once()

	rec := doRequest(t, srv, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data services.GlobalStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(77), resp.Data.BlockHeight)
	require.Equal(t, int64(1234), resp.Data.TotalHashPower)
	require.False(t, resp.Data.TransferLocked)
}
