package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-tracker/internal/application/auth"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/report"
	apphttp "github.com/jhoicas/inventory-tracker/internal/interfaces/http"
	"github.com/jhoicas/inventory-tracker/pkg/client"
	pkgjwt "github.com/jhoicas/inventory-tracker/pkg/jwt"
	"github.com/jhoicas/inventory-tracker/pkg/password"
)

// newAPIServer levanta la API completa sobre almacenamiento en memoria.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	users := memory.NewUserRepository()
	items := memory.NewItemRepository()
	iss, err := pkgjwt.NewIssuer("client-test-secret", time.Hour)
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "client-test"}, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, password.NewHasher(bcrypt.MinCost), iss),
		ItemUC: inventory.NewItemUseCase(items),
		ReportUC: inventory.NewReportUseCase(items, map[string]inventory.ReportGenerator{
			"xml": report.NewXMLGenerator(),
		}),
		Verifier: iss,
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv
}

func TestSession_SinTokenNoVerifica(t *testing.T) {
	srv := newAPIServer(t)
	s := client.NewSession(client.New(srv.URL), client.NewMemoryStore(""))

	var seen []client.Status
	s.Subscribe(func(st client.State) { seen = append(seen, st.Status) })

	st, err := s.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.StatusUnauthenticated, st.Status)
	assert.Empty(t, seen, "no pasa por verifying")
}

func TestSession_TokenInvalidoSeBorra(t *testing.T) {
	srv := newAPIServer(t)
	store := client.NewMemoryStore("token.caducado.xx")
	s := client.NewSession(client.New(srv.URL), store)

	var seen []client.Status
	s.Subscribe(func(st client.State) { seen = append(seen, st.Status) })

	st, err := s.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.StatusUnauthenticated, st.Status)
	assert.Equal(t, []client.Status{client.StatusVerifying, client.StatusUnauthenticated}, seen)
	tok, _ := store.Load()
	assert.Empty(t, tok)
	assert.Empty(t, s.Client().Token())
}

func TestSession_FlujoCompleto(t *testing.T) {
	ctx := context.Background()
	srv := newAPIServer(t)
	store := client.NewMemoryStore("")
	s := client.NewSession(client.New(srv.URL), store)

	msg, err := s.Register(ctx, client.RegisterInput{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, auth.MsgRegistered, msg)
	assert.Equal(t, client.StatusUnauthenticated, s.State().Status, "registrar no inicia sesión")

	_, err = s.Register(ctx, client.RegisterInput{Username: "alice", Email: "alice@x.com", Password: "secret1"})
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, apphttp.MsgConflict, err.(*client.APIError).Message)

	_, err = s.Login(ctx, "alice@x.com", "wrong-pass")
	assert.True(t, client.IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, client.StatusUnauthenticated, s.State().Status)

	user, err := s.Login(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	st := s.State()
	assert.Equal(t, client.StatusAuthenticated, st.Status)
	stored, _ := store.Load()
	assert.Equal(t, st.Token, stored)

	api := s.Client()
	price := decimal.RequireFromString("9.99")
	item, err := api.CreateItem(ctx, client.ItemInput{Name: "Widget", Quantity: 5, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, user.ID, item.OwnerID)
	assert.True(t, item.Price.Valid)
	assert.True(t, item.Price.Decimal.Equal(price))

	list, err := api.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := api.UpdateItem(ctx, item.ID, client.ItemInput{Name: "Widget", Quantity: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated.Quantity)

	content, filename, err := api.Export(ctx, "xml")
	require.NoError(t, err)
	assert.Contains(t, string(content), "<inventario")
	assert.Contains(t, filename, "inventario-alice-")

	require.NoError(t, api.DeleteItem(ctx, item.ID))
	_, err = api.GetItem(ctx, item.ID)
	assert.True(t, client.IsStatus(err, http.StatusNotFound))

	// Un nuevo proceso con el token guardado recupera la sesión.
	s2 := client.NewSession(client.New(srv.URL), store)
	st2, err := s2.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, client.StatusAuthenticated, st2.Status)
	require.NotNil(t, st2.User)
	assert.Equal(t, user.ID, st2.User.ID)

	require.NoError(t, s.Logout())
	assert.Equal(t, client.StatusUnauthenticated, s.State().Status)
	stored, _ = store.Load()
	assert.Empty(t, stored)

	_, err = api.ListItems(ctx)
	assert.True(t, client.IsStatus(err, http.StatusUnauthorized), "sin token tras logout")
}
