package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeError(c *gin.Context, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: entity.ErrValidation.Error(), Fields: verr.Fields})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMessage(err)})
	case errors.Is(err, entity.ErrVenueHasShows):
		c.JSON(http.StatusConflict, ErrorResponse{Error: entity.ErrVenueHasShows.Error()})
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func notFoundMessage(err error) string {
	for _, known := range []error{entity.ErrVenueNotFound, entity.ErrArtistNotFound, entity.ErrShowNotFound} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return entity.ErrNotFound.Error()
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
}
