package transport

import (
	"net/http"

	"github.com/ds124wfegd/listings/internal/service"
	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	artistService service.ArtistService
	notifier      *Notifier
}

func NewArtistHandler(artistService service.ArtistService, notifier *Notifier) *ArtistHandler {
	return &ArtistHandler{artistService: artistService, notifier: notifier}
}

func (h *ArtistHandler) GetArtists(c *gin.Context) {
	artists, err := h.artistService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: artists})
}

func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	term, err := bindSearch(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.artistService.Search(c.Request.Context(), term)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    result,
		Meta:    gin.H{"search_term": term},
	})
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.artistService.GetDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: detail})
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req service.ArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		h.notifier.failure(c, "Artist", "", "listed", nil)
		badRequest(c, err)
		return
	}

	result, err := h.artistService.Create(c.Request.Context(), &req)
	if err != nil {
		h.notifier.failure(c, "Artist", req.Name, "listed", err)
		writeError(c, err)
		return
	}

	h.notifier.success(c, result.Message)
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: result.Message, Data: result})
}

func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		h.notifier.failure(c, "Artist", "", "updated", nil)
		badRequest(c, err)
		return
	}

	result, err := h.artistService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.notifier.failure(c, "Artist", req.Name, "updated", err)
		writeError(c, err)
		return
	}

	h.notifier.success(c, result.Message)
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: result.Message, Data: result})
}
