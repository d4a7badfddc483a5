package transport

import (
	"net/http"

	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/ds124wfegd/listings/internal/service"
	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	showService service.ShowService
	notifier    *Notifier
}

func NewShowHandler(showService service.ShowService, notifier *Notifier) *ShowHandler {
	return &ShowHandler{showService: showService, notifier: notifier}
}

func (h *ShowHandler) GetShows(c *gin.Context) {
	shows, err := h.showService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: shows})
}

func (h *ShowHandler) CreateShow(c *gin.Context) {
	var req service.ShowRequest
	if err := c.ShouldBind(&req); err != nil {
		h.notifier.failure(c, "Show", "", "listed", nil)
		badRequest(c, err)
		return
	}

	result, err := h.showService.Create(c.Request.Context(), &req)
	if err != nil {
		h.notifier.failure(c, "Show", "", "listed", err)
		writeError(c, err)
		return
	}

	h.notifier.success(c, result.Message)
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: result.Message, Data: result})
}

// GetChoices lists the accepted state codes and genres for submission forms.
func GetChoices(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data: gin.H{
			"states": entity.States,
			"genres": entity.Genres,
		},
	})
}
