package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parkmobile/internal/models"
	"parkmobile/internal/token"
)

func TestLoginStoresTokensAndCoercesIDs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "driver@example.com", body["email"])
		w.Write([]byte(`{
			"accessToken": "at-1",
			"refreshToken": "rt-1",
			"user": {"id": "7", "fullName": "Anh Tran", "email": "driver@example.com", "roleId": "1"}
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := token.NewMemoryStore()
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	user, err := client.Login(context.Background(), "driver@example.com", "secret")
	require.NoError(t, err)
	require.EqualValues(t, 7, user.ID.Int())
	require.EqualValues(t, 1, user.RoleID.Int())

	stored := store.Load(context.Background())
	require.NotNil(t, stored)
	require.Equal(t, token.Pair{AccessToken: "at-1", RefreshToken: "rt-1"}, *stored)
}

func TestLoginBadCredentialsIsAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := seededStore(&token.Pair{AccessToken: "a", RefreshToken: "r"})
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	_, err := client.Login(context.Background(), "driver@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid email or password", apiErr.Message)
	// Bad credentials never clear an existing session.
	require.NotNil(t, store.Load(context.Background()))
}

func TestRegisterDefaultsRoleID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.EqualValues(t, 1, body["roleId"])
		w.Write([]byte(`{"accessToken":"at","refreshToken":"rt","user":{"id":3,"fullName":"N","email":"n@x","roleId":1}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := token.NewMemoryStore()
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	user, err := client.Register(context.Background(), RegisterParams{FullName: "N", Email: "n@x", Password: "p"})
	require.NoError(t, err)
	require.EqualValues(t, 3, user.ID.Int())
	require.NotNil(t, store.Load(context.Background()))
}

func TestLogoutClearsTokensEvenOnRemoteFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := seededStore(&token.Pair{AccessToken: "a", RefreshToken: "r"})
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	err := client.Logout(context.Background())
	require.Error(t, err)
	require.Nil(t, store.Load(context.Background()))
}

func TestLogoutWithoutSessionIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), token.NewMemoryStore(), zap.NewNop())
	require.NoError(t, client.Logout(context.Background()))
}

func TestProfileIrrecoverable401ClearsTokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":"at-2","refreshToken":"rt-2"}`))
	})
	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := seededStore(&token.Pair{AccessToken: "a", RefreshToken: "r"})
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	_, err := client.Profile(context.Background())
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Nil(t, store.Load(context.Background()))
}

func TestCurrentParkingNotFoundMeansNotParked(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parking-sessions/my/current", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := seededStore(&token.Pair{AccessToken: "a", RefreshToken: "r"})
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	current, err := client.CurrentParking(context.Background())
	require.NoError(t, err)
	require.False(t, current.HasActiveParking)
	require.Nil(t, current.CurrentParking)
}

func TestPreviewFeeNotFoundIsDomainError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parking-sessions/my/current/preview-fee", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := seededStore(&token.Pair{AccessToken: "a", RefreshToken: "r"})
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	_, err := client.PreviewFee(context.Background())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "no active parking session", notFound.Message)
}

func TestSessionsBuildsQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parking-sessions", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "active", r.URL.Query().Get("status"))
		require.Equal(t, "12", r.URL.Query().Get("parkingLotId"))
		w.Write([]byte(`[{"id":5,"status":"active","entryTime":"2026-08-30T08:00:00Z"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := seededStore(&token.Pair{AccessToken: "a", RefreshToken: "r"})
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	sessions, err := client.Sessions(context.Background(), models.SessionStatusActive, 12)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.EqualValues(t, 5, sessions[0].ID.Int())
	require.True(t, sessions[0].Active())
}

func TestRegisterVehicleRejectsUnknownType(t *testing.T) {
	client := NewClient("http://unused", http.DefaultClient, token.NewMemoryStore(), zap.NewNop())

	_, err := client.RegisterVehicle(context.Background(), "51A-123.45", "boat")
	require.Error(t, err)
}

func TestParkingLotNormalizesSlots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/parking-lots/3", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": 3,
			"name": "Central Lot",
			"location": "12 Ly Thuong Kiet",
			"pricePerHour": "15000",
			"map": "https://cdn.example.com/lot3.png",
			"slots": [
				{"id": 1, "slotNumber": "A-01", "status": "occupied"},
				{"id": 2, "slot_code": "A-02", "status": "empty"}
			]
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := seededStore(&token.Pair{AccessToken: "a", RefreshToken: "r"})
	client := NewClient(srv.URL, srv.Client(), store, zap.NewNop())

	lot, err := client.ParkingLot(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "12 Ly Thuong Kiet", lot.Address)
	require.EqualValues(t, 15000, lot.PricePerHour.Float())
	require.Len(t, lot.Slots, 2)
	require.Equal(t, "A-01", lot.Slots[0].Code)
	require.Equal(t, "A-02", lot.Slots[1].Code)
}
