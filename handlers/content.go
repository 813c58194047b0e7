package handlers

import (
	"doctospeech/middleware"
	"doctospeech/models"
	"doctospeech/services/content"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	Service content.ContentService
}

func NewContentHandler(s content.ContentService) *ContentHandler {
	return &ContentHandler{Service: s}
}

// viewer is nil for anonymous callers on optional-auth routes.
func viewer(c *gin.Context) *models.Actor {
	if actor, ok := middleware.ActorFrom(c); ok {
		return &actor
	}
	return nil
}

func (h *ContentHandler) ListResources(c *gin.Context) {
	resources, err := h.Service.ListResources(c.Request.Context(), viewer(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Resources retrieved", resources)
}

func (h *ContentHandler) ResourceDetail(c *gin.Context) {
	r, err := h.Service.ResourceDetail(c.Request.Context(), viewer(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Resource retrieved", r)
}

func (h *ContentHandler) ListEbooks(c *gin.Context) {
	actor, authed := currentActor(c)
	if !authed {
		return
	}
	ebooks, err := h.Service.ListEbooks(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Ebooks retrieved", ebooks)
}

func (h *ContentHandler) CreateResource(c *gin.Context) {
	var in models.Resource
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Service.CreateResource(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Resource created", r)
}

func (h *ContentHandler) CreateEbook(c *gin.Context) {
	var in models.Ebook
	if !bindJSON(c, &in) {
		return
	}
	e, err := h.Service.CreateEbook(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Ebook created", e)
}
