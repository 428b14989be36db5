package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/catalog-backend/internal/data/aggregates"
	"github.com/yungbote/catalog-backend/internal/data/repos"
	"github.com/yungbote/catalog-backend/internal/data/repos/testutil"
	"github.com/yungbote/catalog-backend/internal/http/response"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/services"
)

type catalogServer struct {
	t      *testing.T
	engine *gin.Engine
	deps   services.CatalogDeps
}

func newCatalogServer(t *testing.T) *catalogServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := testutil.Logger(t)
	deps := services.CatalogDeps{
		Base:        aggregates.BaseDeps{DB: db, Log: log},
		Categories:  repos.NewCategoryRepo(db, log),
		Genres:      repos.NewGenreRepo(db, log),
		CastMembers: repos.NewCastMemberRepo(db, log),
		Videos:      repos.NewVideoRepo(db, log),
	}
	r := gin.New()
	api := r.Group("/api")
	NewCRUDHandler("category", services.NewCategoryService(deps)).Register(api.Group("/categories"))
	NewCRUDHandler("genre", services.NewGenreService(deps)).Register(api.Group("/genres"))
	NewCRUDHandler("cast_member", services.NewCastMemberService(deps)).Register(api.Group("/cast_members"))
	NewCRUDHandler("video", services.NewVideoService(deps)).Register(api.Group("/videos"))
	return &catalogServer{t: t, engine: r, deps: deps}
}

func (s *catalogServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status: got=%d want=%d body=%s", rec.Code, want, rec.Body.String())
	}
}

func TestCategoryEndpoints(t *testing.T) {
	s := newCatalogServer(t)

	rec := s.do(http.MethodPost, "/api/categories", map[string]any{"name": "Horror"})
	expectStatus(t, rec, http.StatusCreated)
	created := decode[map[string]any](t, rec)
	id, _ := created["id"].(string)
	if id == "" || created["is_active"] != true || created["description"] != nil || created["deleted_at"] != nil {
		t.Fatalf("created: got=%v", created)
	}

	rec = s.do(http.MethodGet, "/api/categories", nil)
	expectStatus(t, rec, http.StatusOK)
	if list := decode[[]map[string]any](t, rec); len(list) != 1 {
		t.Fatalf("list: got=%d want=1", len(list))
	}

	rec = s.do(http.MethodPut, "/api/categories/"+id, map[string]any{"name": "Terror", "description": "d", "is_active": "0"})
	expectStatus(t, rec, http.StatusOK)
	updated := decode[map[string]any](t, rec)
	if updated["name"] != "Terror" || updated["description"] != "d" || updated["is_active"] != false {
		t.Fatalf("updated: got=%v", updated)
	}

	expectStatus(t, s.do(http.MethodDelete, "/api/categories/"+id, nil), http.StatusNoContent)
	expectStatus(t, s.do(http.MethodGet, "/api/categories/"+id, nil), http.StatusNotFound)
	expectStatus(t, s.do(http.MethodDelete, "/api/categories/"+id, nil), http.StatusNotFound)

	rec = s.do(http.MethodPost, "/api/categories/"+id+"/restore", nil)
	expectStatus(t, rec, http.StatusOK)
	expectStatus(t, s.do(http.MethodGet, "/api/categories/"+id, nil), http.StatusOK)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	s := newCatalogServer(t)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := s.do(method, "/api/videos/not-a-uuid", map[string]any{})
		expectStatus(t, rec, http.StatusNotFound)
		body := decode[map[string]map[string]any](t, rec)
		if body["error"]["code"] != "not_found" {
			t.Fatalf("%s code: got=%v", method, body["error"]["code"])
		}
	}
}

type validationBody struct {
	Error struct {
		Code   string `json:"code"`
		Fields map[string][]struct {
			Rule string `json:"rule"`
		} `json:"fields"`
	} `json:"error"`
}

func TestStoreValidationEnvelope(t *testing.T) {
	s := newCatalogServer(t)
	rec := s.do(http.MethodPost, "/api/cast_members", map[string]any{"type": 5})
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	body := decode[validationBody](t, rec)
	if body.Error.Code != "validation_failed" {
		t.Fatalf("code: got=%q", body.Error.Code)
	}
	if f := body.Error.Fields["name"]; len(f) != 1 || f[0].Rule != "required" {
		t.Fatalf("name: got=%+v", f)
	}
	if f := body.Error.Fields["type"]; len(f) != 1 || f[0].Rule != "oneof" {
		t.Fatalf("type: got=%+v", f)
	}
}

func TestUpdateUnknownIDIsNotFoundBeforeValidation(t *testing.T) {
	s := newCatalogServer(t)
	rec := s.do(http.MethodPut, "/api/genres/1c2d3e4f-0000-4000-8000-000000000000", map[string]any{})
	expectStatus(t, rec, http.StatusNotFound)
}

func TestInvalidJSONBody(t *testing.T) {
	s := newCatalogServer(t)
	expectStatus(t, s.do(http.MethodPost, "/api/categories", "{not json"), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodPost, "/api/categories", "[1,2]"), http.StatusBadRequest)
	for _, body := range []string{`{"name":"x"} trailing-garbage`, `{"name":"x"}{"name":"y"}`} {
		rec := s.do(http.MethodPost, "/api/categories", body)
		expectStatus(t, rec, http.StatusBadRequest)
		if env := decode[response.ErrorEnvelope](t, rec); env.Error.Code != "invalid_json" {
			t.Fatalf("code for %q: got=%q", body, env.Error.Code)
		}
	}
	expectStatus(t, s.do(http.MethodPost, "/api/categories", "{\"name\":\"x\"}\n  \n"), http.StatusCreated)
	// empty body behaves like {}
	expectStatus(t, s.do(http.MethodPost, "/api/categories", nil), http.StatusUnprocessableEntity)

	rows, err := s.deps.Categories.List(dbctx.Context{Ctx: context.Background()})
	if err != nil || len(rows) != 1 {
		t.Fatalf("only the clean body should create a row: rows=%d err=%v", len(rows), err)
	}
}

func TestOversizedBody(t *testing.T) {
	s := newCatalogServer(t)
	body := `{"name":"big","description":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := s.do(http.MethodPost, "/api/categories", body)
	expectStatus(t, rec, http.StatusRequestEntityTooLarge)
	if env := decode[response.ErrorEnvelope](t, rec); env.Error.Code != "body_too_large" {
		t.Fatalf("code: got=%q", env.Error.Code)
	}
	rows, err := s.deps.Categories.List(dbctx.Context{Ctx: context.Background()})
	if err != nil || len(rows) != 0 {
		t.Fatalf("oversized body wrote rows: rows=%d err=%v", len(rows), err)
	}
}

func TestGenreAndVideoEndpointsIncludeRelations(t *testing.T) {
	s := newCatalogServer(t)
	db := s.deps.Base.DB
	c := testutil.SeedCategory(t, db, "c")

	rec := s.do(http.MethodPost, "/api/genres", map[string]any{"name": "Action", "categories_id": []string{c.ID.String()}})
	expectStatus(t, rec, http.StatusCreated)
	genre := decode[map[string]any](t, rec)
	if cats, _ := genre["categories"].([]any); len(cats) != 1 {
		t.Fatalf("genre categories: got=%v", genre["categories"])
	}
	genreID := genre["id"].(string)

	rec = s.do(http.MethodPost, "/api/videos", map[string]any{
		"title":         "Alien",
		"description":   "space",
		"year_launched": "1979",
		"rating":        "18",
		"duration":      117,
		"opened":        true,
		"categories_id": []string{c.ID.String()},
		"genres_id":     []string{genreID},
	})
	expectStatus(t, rec, http.StatusCreated)
	video := decode[map[string]any](t, rec)
	if video["opened"] != true || video["year_launched"] != float64(1979) {
		t.Fatalf("video: got=%v", video)
	}
	if gs, _ := video["genres"].([]any); len(gs) != 1 {
		t.Fatalf("video genres: got=%v", video["genres"])
	}

	rec = s.do(http.MethodGet, "/api/videos/"+video["id"].(string), nil)
	expectStatus(t, rec, http.StatusOK)
	shown := decode[map[string]any](t, rec)
	if cs, _ := shown["categories"].([]any); len(cs) != 1 {
		t.Fatalf("shown categories: got=%v", shown["categories"])
	}

	// deleted category no longer satisfies exists
	if err := s.deps.Categories.SoftDeleteByID(dbctx.Context{Ctx: context.Background()}, c.ID); err != nil {
		t.Fatalf("SoftDeleteByID: %v", err)
	}
	rec = s.do(http.MethodPut, "/api/genres/"+genreID, map[string]any{"name": "Action", "categories_id": []string{c.ID.String()}})
	expectStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestRestoreUnknownIsNotFound(t *testing.T) {
	s := newCatalogServer(t)
	rec := s.do(http.MethodPost, "/api/categories/1c2d3e4f-0000-4000-8000-000000000000/restore", nil)
	expectStatus(t, rec, http.StatusNotFound)
}
