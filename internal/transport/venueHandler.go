package transport

import (
	"net/http"

	"github.com/ds124wfegd/listings/internal/service"
	"github.com/gin-gonic/gin"
)

type searchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

func bindSearch(c *gin.Context) (string, error) {
	var req searchRequest
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
	} else {
		err = c.ShouldBind(&req)
	}
	return req.SearchTerm, err
}

type VenueHandler struct {
	venueService service.VenueService
	notifier     *Notifier
}

func NewVenueHandler(venueService service.VenueService, notifier *Notifier) *VenueHandler {
	return &VenueHandler{venueService: venueService, notifier: notifier}
}

func (h *VenueHandler) GetVenues(c *gin.Context) {
	buckets, err := h.venueService.ListByLocation(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: buckets})
}

func (h *VenueHandler) SearchVenues(c *gin.Context) {
	term, err := bindSearch(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.venueService.Search(c.Request.Context(), term)
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

func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.venueService.GetDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: detail})
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req service.VenueRequest
	if err := c.ShouldBind(&req); err != nil {
		h.notifier.failure(c, "Venue", "", "listed", nil)
		badRequest(c, err)
		return
	}

	result, err := h.venueService.Create(c.Request.Context(), &req)
	if err != nil {
		h.notifier.failure(c, "Venue", req.Name, "listed", err)
		writeError(c, err)
		return
	}

	h.notifier.success(c, result.Message)
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: result.Message, Data: result})
}

func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.VenueRequest
	if err := c.ShouldBind(&req); err != nil {
		h.notifier.failure(c, "Venue", "", "updated", nil)
		badRequest(c, err)
		return
	}

	result, err := h.venueService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.notifier.failure(c, "Venue", req.Name, "updated", err)
		writeError(c, err)
		return
	}

	h.notifier.success(c, result.Message)
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: result.Message, Data: result})
}

func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.venueService.Delete(c.Request.Context(), id)
	if err != nil {
		h.notifier.failure(c, "Venue", "", "deleted", err)
		writeError(c, err)
		return
	}

	h.notifier.success(c, result.Message)
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: result.Message, Data: result})
}
