package profile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/profile"
	"tienda/pkg/testutil"
)

func newService(t *testing.T, b *testutil.Backend) *profile.Service {
	t.Helper()
	return profile.NewService(testutil.NewClientStack(t, b.URL()).API)
}

func userBody() map[string]any {
	return map[string]any{
		"id": 42, "email": "ana@example.mx",
		"first_name": "Ana", "last_name": "Bustos", "phone": nil,
	}
}

func TestGet(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Router.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, userBody())
	})

	r := newService(t, b).Get(context.Background())
	require.True(t, r.Ok())
	assert.Equal(t, profile.User{ID: 42, Email: "ana@example.mx", FirstName: "Ana", LastName: "Bustos"}, r.Value())
}

func TestUpdate(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Router.Put("/users/me", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ana María", body["first_name"])
		testutil.WriteJSON(w, http.StatusOK, map[string]any{
			"id": 42, "email": "ana@example.mx", "first_name": "Ana María", "last_name": "Bustos",
		})
	})

	r := newService(t, b).Update(context.Background(), profile.User{FirstName: "Ana María", LastName: "Bustos"})
	require.True(t, r.Ok())
	assert.Equal(t, "Ana María", r.Value().FirstName)
}

func TestAddresses(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		b := testutil.NewBackend(t)
		b.Router.Get("/addresses", func(w http.ResponseWriter, r *http.Request) {
			testutil.WriteJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "street": "Av. Juárez", "exterior_number": "10", "city": "Puebla", "state": "Puebla", "postal_code": "72000", "is_default": true},
			})
		})

		r := newService(t, b).ListAddresses(context.Background())
		require.True(t, r.Ok())
		require.Len(t, r.Value(), 1)
		assert.True(t, r.Value()[0].Default)
		assert.Equal(t, "10", r.Value()[0].ExteriorNumber)
	})

	t.Run("create echoes the saved record", func(t *testing.T) {
		b := testutil.NewBackend(t)
		b.Router.Post("/addresses", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Calle 5 de Mayo", body["street"])
			testutil.WriteJSON(w, http.StatusCreated, map[string]any{
				"id": 8, "street": "Calle 5 de Mayo", "city": "Puebla", "state": "Puebla", "postal_code": "72000",
			})
		})

		r := newService(t, b).CreateAddress(context.Background(), profile.Address{
			Street: "Calle 5 de Mayo", City: "Puebla", State: "Puebla", PostalCode: "72000",
		})
		require.True(t, r.Ok())
		assert.Equal(t, 8, r.Value().ID)
	})

	t.Run("delete", func(t *testing.T) {
		b := testutil.NewBackend(t)
		b.Router.Delete("/addresses/8", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		r := newService(t, b).DeleteAddress(context.Background(), 8)
		assert.True(t, r.Ok())
	})
}

func TestFiscalData(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Router.Get("/users/me/fiscal-data", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, map[string]any{
			"rfc": "BUSA900101XXX", "business_name": "Ana Bustos", "fiscal_regime": "612", "postal_code": "72000",
		})
	})
	b.Router.Put("/users/me/fiscal-data", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		testutil.WriteJSON(w, http.StatusOK, map[string]any{
			"rfc": body["rfc"], "business_name": body["business_name"],
		})
	})

	svc := newService(t, b)

	r := svc.FiscalData(context.Background())
	require.True(t, r.Ok())
	assert.Equal(t, "BUSA900101XXX", r.Value().RFC)
	assert.Equal(t, "612", r.Value().FiscalRegime)

	saved := svc.SaveFiscalData(context.Background(), profile.FiscalData{RFC: "XAXX010101000", BusinessName: "Ana"})
	require.True(t, saved.Ok())
	assert.Equal(t, "XAXX010101000", saved.Value().RFC)
}

func TestSnapshot(t *testing.T) {
	t.Run("aggregates user and addresses", func(t *testing.T) {
		b := testutil.NewBackend(t)
		b.Router.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
			testutil.WriteJSON(w, http.StatusOK, userBody())
		})
		b.Router.Get("/addresses", func(w http.ResponseWriter, r *http.Request) {
			testutil.WriteJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "street": "Av. Juárez", "city": "Puebla", "state": "Puebla", "postal_code": "72000"},
			})
		})

		r := newService(t, b).Snapshot(context.Background())
		require.True(t, r.Ok())
		assert.Equal(t, 42, r.Value().User.ID)
		assert.Len(t, r.Value().Addresses, 1)
	})

	t.Run("user failure fails the snapshot", func(t *testing.T) {
		b := testutil.NewBackend(t)
		b.Router.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
			testutil.WriteError(w, http.StatusInternalServerError, "Error interno")
		})
		b.Router.Get("/addresses", func(w http.ResponseWriter, r *http.Request) {
			testutil.WriteJSON(w, http.StatusOK, []map[string]any{})
		})

		r := newService(t, b).Snapshot(context.Background())
		require.False(t, r.Ok())
		assert.Equal(t, "Error interno", r.Message())
	})
}
