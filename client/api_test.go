package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbs-store/models"
)

func TestAPIClientListItems(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/items", r.URL.Path)
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Item{
			{ID: "item001", Name: "Headphones", Price: 2999},
		})
	}))
	defer server.Close()

	featured := true
	api := NewAPIClient(server.URL)
	items, err := api.ListItems(context.Background(), models.ItemFilter{Category: "audio", Featured: &featured})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item001", items[0].ID)
	assert.Contains(t, gotQuery, "category=audio")
	assert.Contains(t, gotQuery, "featured=true")
}

func TestAPIClientDecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Item not found"})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	_, err := api.GetItem(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Item not found")
	assert.Contains(t, err.Error(), "404")
}

func TestAPIClientLoadCatalogFallback(t *testing.T) {
	// Port 0 is never listening.
	api := NewAPIClient("http://127.0.0.1:0")
	items, fallback := api.LoadCatalog(context.Background())
	assert.True(t, fallback)
	assert.Equal(t, SampleCatalog(), items)
}

func TestAPIClientLoadCatalogPrefersBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Item{{ID: "item042", Name: "Kettle", Price: 899}})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	items, fallback := api.LoadCatalog(context.Background())
	assert.False(t, fallback)
	require.Len(t, items, 1)
	assert.Equal(t, "item042", items[0].ID)
}

func TestAPIClientCreateItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.CreateItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Item{ID: "item100", Name: req.Name, Price: *req.Price})
	}))
	defer server.Close()

	price := 499.0
	api := NewAPIClient(server.URL)
	item, err := api.CreateItem(context.Background(), models.CreateItemRequest{
		Name:        "Mug",
		Description: "Ceramic mug",
		Price:       &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "item100", item.ID)
	assert.Equal(t, "Mug", item.Name)
}

func TestAPIClientPinFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/generate-pin":
			json.NewEncoder(w).Encode(models.GeneratePinResponse{
				Message: "PIN generated successfully",
				Phone:   "919876543210",
				Pin:     "123456",
			})
		case "/api/verify-pin":
			var req models.VerifyPinRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Pin != "123456" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid PIN or phone number"})
				return
			}
			json.NewEncoder(w).Encode(models.VerifyPinResponse{Message: "PIN verified successfully", Verified: true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)

	resp, err := api.GeneratePin(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "919876543210", resp.Phone)
	assert.Equal(t, "123456", resp.Pin)

	ok, err := api.VerifyPin(context.Background(), resp.Phone, "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = api.VerifyPin(context.Background(), resp.Phone, "000000")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "Invalid PIN")
}
