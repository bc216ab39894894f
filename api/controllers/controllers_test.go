package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/catalogue"
	"github.com/angelmondragon/furniture-catalogue-backend/internal/lots"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/config"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/db/models"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "controllers-test", Output: io.Discard})
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) responses.APIError {
	t.Helper()
	var env responses.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error
}

type stubCatalogue struct {
	rows []catalogue.Row
	err  error
	got  uuid.UUID
}

func (s *stubCatalogue) Merge(_ context.Context, projectID uuid.UUID) ([]catalogue.Row, error) {
	s.got = projectID
	return s.rows, s.err
}

type stubLots struct {
	detail *models.ItemDetail
	err    error
	input  lots.UpsertDetailInput
}

func (s *stubLots) UpsertDetail(_ context.Context, _ uuid.UUID, input lots.UpsertDetailInput) (*models.ItemDetail, error) {
	s.input = input
	return s.detail, s.err
}

func (s *stubLots) GetDetail(context.Context, uuid.UUID) (*models.ItemDetail, error) {
	return s.detail, s.err
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestCatalogueMergeRendersDisplayRows(t *testing.T) {
	projectID := uuid.New()
	lot := "LOT-4"
	svc := &stubCatalogue{rows: []catalogue.Row{{ID: uuid.New(), Name: "Chair", LotNumber: &lot}}}

	req := withParam(httptest.NewRequest(http.MethodGet, "/", nil), catalogueParam, projectID.String())
	rec := httptest.NewRecorder()
	CatalogueMerge(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, projectID, svc.got)

	var env struct {
		Data []catalogue.DisplayRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "LOT-4", env.Data[0].LotNumber)
	assert.Equal(t, catalogue.UnknownCategory, env.Data[0].CategoryName)
	assert.Equal(t, catalogue.UnknownCondition, env.Data[0].Condition)
}

func TestCatalogueMergeMapsDependencyErrors(t *testing.T) {
	svc := &stubCatalogue{err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("db down"), "merge catalogue").WithStep("catalogue.merge")}

	req := withParam(httptest.NewRequest(http.MethodGet, "/", nil), catalogueParam, uuid.NewString())
	rec := httptest.NewRecorder()
	CatalogueMerge(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, string(pkgerrors.CodeDependency), decodeError(t, rec).Code)
}

func TestCatalogueMergeWithoutServiceFails(t *testing.T) {
	req := withParam(httptest.NewRequest(http.MethodGet, "/", nil), catalogueParam, uuid.NewString())
	rec := httptest.NewRecorder()
	CatalogueMerge(nil, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestItemDetailUpsertDecodesTypedInput(t *testing.T) {
	projectID := uuid.New()
	itemID := uuid.New()
	svc := &stubLots{detail: &models.ItemDetail{
		ID:        uuid.New(),
		ItemID:    itemID,
		ProjectID: projectID,
		Condition: enums.ItemConditionFair,
		LotNumber: "LOT-2",
	}}

	body := `{"projectId":"` + projectID.String() + `","condition":"Fair","damageTypes":["scratch"],"location":{"zone":"B"}}`
	req := withParam(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body)), "itemId", itemID.String())
	rec := httptest.NewRecorder()
	ItemDetailUpsert(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, svc.input.ProjectID)
	assert.Equal(t, projectID, *svc.input.ProjectID)
	assert.Equal(t, []string{"scratch"}, svc.input.DamageTypes)
	assert.Equal(t, "B", svc.input.Location.Zone)

	var env struct {
		Data lots.DetailDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "LOT-2", env.Data.LotNumber)
	assert.NotNil(t, env.Data.DamageTypes)
}

func TestItemDetailUpsertRequiresProject(t *testing.T) {
	svc := &stubLots{}
	req := withParam(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"condition":"Good"}`)), "itemId", uuid.NewString())
	rec := httptest.NewRecorder()
	ItemDetailUpsert(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(pkgerrors.CodeValidation), decodeError(t, rec).Code)
}

func TestItemDetailGetNotFound(t *testing.T) {
	svc := &stubLots{err: pkgerrors.New(pkgerrors.CodeNotFound, "item detail not found").WithStep("lots.get_detail")}
	req := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "itemId", uuid.NewString())
	rec := httptest.NewRecorder()
	ItemDetailGet(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "item detail not found", decodeError(t, rec).Message)
}

func TestHealthReadyReportsFailingDependency(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvDev}}
	deps := map[string]Pinger{
		"database": stubPinger{},
		"redis":    stubPinger{err: errors.New("connection refused")},
	}

	rec := httptest.NewRecorder()
	HealthReady(cfg, testLogger(), deps).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, config.AppEnvDev, rec.Header().Get("X-Catalogue-Env"))
}

func TestHealthReadySkipsNilDependencies(t *testing.T) {
	cfg := &config.Config{}
	deps := map[string]Pinger{"database": stubPinger{}, "redis": nil}

	rec := httptest.NewRecorder()
	HealthReady(cfg, testLogger(), deps).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
