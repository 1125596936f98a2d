package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/auth"
	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/infra/logger"
	"github.com/Spok95/yard-terminal/internal/infra/storage"
	"github.com/Spok95/yard-terminal/internal/report"
)

var now = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

type env struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func setup(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	s := app.Open(context.Background(), storage.NewMemory(), logger.Discard(), app.Options{
		Now: func() time.Time { return now },
	})
	h := NewHandler(s, auth.New("admin", hash, "test-key", time.Hour), logger.Discard())
	e := &env{t: t, router: h.Router()}

	w := e.do(http.MethodPost, "/api/login", gin.H{"login": "Admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out struct{ Token string }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	e.token = out.Token
	return e
}

func (e *env) do(method, path string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func gateIn(slot *yard.Location) app.GateInRequest {
	return app.GateInRequest{
		LoadType: containers.LoadFCL, OwnerCode: "MSKU", Serial: "305438", CheckDigit: "8",
		Client: "Acme", ReceptionNote: "GR-1", Vessel: "MSC Anna", ShippingLine: "MSC",
		Weight: 20000, Tare: 2000, EntryDate: now, Slot: slot,
		Transport: drivers.TransportInfo{
			TruckPlate: "ABCD-12", DriverName: "Juan Perez", DriverID: "12345678-9",
			DriverType: drivers.IDNational, Company: "Fletes",
		},
	}
}

func TestAuthRequired(t *testing.T) {
	e := setup(t)
	token := e.token

	e.token = ""
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/stats", nil).Code)
	e.token = "garbage"
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/stats", nil).Code)

	e.token = token
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/stats", nil).Code)

	assert.Equal(t, http.StatusNoContent, e.do(http.MethodPost, "/api/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/stats", nil).Code, "logout closes issued tokens")

	e.token = ""
	w := e.do(http.MethodPost, "/api/login", gin.H{"login": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateInOutFlow(t *testing.T) {
	e := setup(t)

	w := e.do(http.MethodPost, "/api/gate-in", gateIn(&yard.Location{Block: "A", Bay: "01", Row: 1, Tier: 1}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[app.GateInResult](t, w)
	assert.Equal(t, "MSKU305438-8", res.Container.ID)

	w = e.do(http.MethodPost, "/api/gate-in", gateIn(&yard.Location{Block: "A", Bay: "01", Row: 1, Tier: 1}))
	assert.Equal(t, http.StatusConflict, w.Code)

	bad := gateIn(nil)
	bad.Client = ""
	w = e.do(http.MethodPost, "/api/gate-in", bad)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{"client"}, decode[map[string]any](t, w)["fields"])

	w = e.do(http.MethodPost, "/api/relocations", gin.H{"containerId": res.Container.ID, "position": "b-3-2-1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(http.MethodGet, "/api/yard?block=B&bay=03", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["occupied"])

	w = e.do(http.MethodPost, "/api/gate-out", app.GateOutRequest{ContainerID: res.Container.ID, Transport: res.Container.Transport})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[app.GateOutResult](t, w)
	assert.Equal(t, containers.StatusOut, out.Container.Status)

	w = e.do(http.MethodPost, "/api/gate-out", app.GateOutRequest{ContainerID: res.Container.ID, Transport: res.Container.Transport})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodGet, "/api/containers/"+res.Container.ID+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decode[map[string]any](t, w)["count"])
}

func TestEIRDownload(t *testing.T) {
	e := setup(t)
	require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/gate-in", gateIn(nil)).Code)

	w := e.do(http.MethodGet, "/api/containers/MSKU305438-8/eir", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "EIR_MSKU305438-8_")

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/containers/NOPE/eir", nil).Code)
}

func TestSettingsConfirm(t *testing.T) {
	e := setup(t)
	require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/gate-in", gateIn(nil)).Code)

	dims := gin.H{"baysCount": 2, "rowsCount": 2, "tiersCount": 2}
	w := e.do(http.MethodPut, "/api/settings/yard/dimensions", dims)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, w)["confirm"])

	w = e.do(http.MethodPut, "/api/settings/yard/dimensions?force=true", dims)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusConflict, e.do(http.MethodPost, "/api/settings/yard/blocks", gin.H{"name": "a"}).Code)
	assert.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/settings/yard/blocks", gin.H{"name": "d"}).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/settings/yard/blocks", gin.H{"name": "e-1"}).Code)

	swap := gin.H{"blocks": []string{"B", "C", "D"}, "baysCount": 2, "rowsCount": 2, "tiersCount": 2, "lclBlock": "D"}
	assert.Equal(t, http.StatusConflict, e.do(http.MethodPut, "/api/settings/yard", swap).Code, "block A still holds the container")
}

func TestCatalogCRUD(t *testing.T) {
	e := setup(t)

	w := e.do(http.MethodPost, "/api/vessels", gin.H{"name": "MSC Anna", "imo": "9000001"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[map[string]any](t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = e.do(http.MethodPut, "/api/vessels/"+id, gin.H{"name": "MSC Anna II"})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/api/vessels?q=anna", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, w)["count"])

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPost, "/api/clients", gin.H{"name": ""}).Code)
	assert.Equal(t, http.StatusNoContent, e.do(http.MethodDelete, "/api/vessels/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/vessels/"+id, nil).Code)
}

func TestPreloadImport(t *testing.T) {
	e := setup(t)
	tpl := e.do(http.MethodGet, "/api/preloads/template", nil)
	require.Equal(t, http.StatusOK, tpl.Code)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "precargas.xlsx")
	require.NoError(t, err)
	_, err = part.Write(tpl.Body.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/preloads/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(http.MethodGet, "/api/preloads/match?note=gr-0001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	assert.Equal(t, "AGENCIA MASIVA", got["customsAgency"])
	assert.Equal(t, "MSKU305438-8", got["containerId"])

	w = e.do(http.MethodPost, "/api/gate-in/prefill", gin.H{"receptionNote": "GR-0001"})
	require.Equal(t, http.StatusOK, w.Code)
	pre := decode[map[string]any](t, w)
	assert.Equal(t, true, pre["preloaded"])
	assert.Equal(t, false, pre["autoDigit"])
}
