package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	"github.com/yungbote/catalog-backend/internal/http/response"
	"github.com/yungbote/catalog-backend/internal/services"
)

const maxBodyBytes = 1 << 20

// CRUDHandler serves one catalog resource.
type CRUDHandler[T any] struct {
	resource string
	svc      services.CRUDService[T]
}

func NewCRUDHandler[T any](resource string, svc services.CRUDService[T]) *CRUDHandler[T] {
	return &CRUDHandler[T]{resource: resource, svc: svc}
}

// Register mounts the resource routes on g.
func (h *CRUDHandler[T]) Register(g *gin.RouterGroup) {
	g.GET("", h.Index)
	g.POST("", h.Store)
	g.GET("/:id", h.Show)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Destroy)
	g.POST("/:id/restore", h.Restore)
}

// GET /api/<resource>
func (h *CRUDHandler[T]) Index(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	if rows == nil {
		rows = []*T{}
	}
	response.RespondOK(c, rows)
}

// POST /api/<resource>
func (h *CRUDHandler[T]) Store(c *gin.Context) {
	input, ok := h.readInput(c)
	if !ok {
		return
	}
	row, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, row)
}

// GET /api/<resource>/:id
func (h *CRUDHandler[T]) Show(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	row, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, row)
}

// PUT|PATCH /api/<resource>/:id
func (h *CRUDHandler[T]) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	input, ok := h.readInput(c)
	if !ok {
		return
	}
	row, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /api/<resource>/:id
func (h *CRUDHandler[T]) Destroy(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// POST /api/<resource>/:id/restore
func (h *CRUDHandler[T]) Restore(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	row, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, row)
}

// pathID parses :id. Malformed ids answer 404 like unknown ones.
func (h *CRUDHandler[T]) pathID(c *gin.Context) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		response.RespondAPIError(c, domainagg.NotFound(h.resource+".route", h.resource, raw))
		return uuid.Nil, false
	}
	return id, true
}

// readInput decodes the body as a JSON object. An empty body is an empty
// object so that rule sets report the missing fields.
func (h *CRUDHandler[T]) readInput(c *gin.Context) (map[string]any, bool) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return nil, false
	}
	if len(raw) > maxBodyBytes {
		response.RespondError(c, http.StatusRequestEntityTooLarge, "body_too_large", errors.New("request body too large"))
		return nil, false
	}
	input := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return input, true
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var trailing json.RawMessage
	if err := dec.Decode(&input); err != nil || dec.Decode(&trailing) != io.EOF {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", errors.New("request body must be a single JSON object"))
		return nil, false
	}
	return input, true
}
