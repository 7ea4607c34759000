package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPOrderClientCreateOrder(t *testing.T) {
	t.Run("success returns order id", func(t *testing.T) {
		var got Submission
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/orders", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"orderId": "ord-7"})
		}))
		defer srv.Close()

		client, err := NewHTTPOrderClient(srv.URL, srv.Client())
		require.NoError(t, err)

		sub := &Submission{
			MerchantID: "salon-1",
			Lines:      []Line{{Type: "service", CatalogID: "svc-1", Quantity: 1, UnitPrice: 35}},
			Total:      35,
		}
		orderID, err := client.CreateOrder(context.Background(), sub)
		require.NoError(t, err)
		assert.Equal(t, "ord-7", orderID)
		assert.Equal(t, *sub, got)
	})

	t.Run("structured failure becomes SubmitError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"reason": "slot_taken", "message": "already booked"})
		}))
		defer srv.Close()

		client, err := NewHTTPOrderClient(srv.URL, srv.Client())
		require.NoError(t, err)

		_, err = client.CreateOrder(context.Background(), &Submission{MerchantID: "m"})
		var se *SubmitError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "slot_taken", se.Reason)
		assert.Equal(t, "already booked", se.Message)
	})

	t.Run("opaque failure gets a fallback reason", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := NewHTTPOrderClient(srv.URL, srv.Client())
		require.NoError(t, err)

		_, err = client.CreateOrder(context.Background(), &Submission{MerchantID: "m"})
		var se *SubmitError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "unexpected_status", se.Reason)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		client, err := NewHTTPOrderClient(srv.URL, srv.Client())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = client.CreateOrder(ctx, &Submission{MerchantID: "m"})
		assert.Error(t, err)
	})
}
