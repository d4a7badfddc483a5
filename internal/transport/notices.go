package transport

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/ds124wfegd/listings/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const formErrorMessage = "There is a form error"

// Notifier records mutation outcomes for the caller's session and hands them
// back once through GetNotices.
type Notifier struct {
	notices repository.NoticeRepository
}

func NewNotifier(notices repository.NoticeRepository) *Notifier {
	return &Notifier{notices: notices}
}

func (n *Notifier) notify(c *gin.Context, level entity.NoticeLevel, message string) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		return
	}

	notice := entity.Notice{Level: level, Message: message, CreatedAt: time.Now().UTC()}
	if err := n.notices.Push(c.Request.Context(), sessionID, notice); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("Failed to store notice")
	}
}

func (n *Notifier) success(c *gin.Context, message string) {
	n.notify(c, entity.NoticeSuccess, message)
}

// failure reports a rejected mutation. kind and name describe the subject,
// as in "Venue The Musical Hop", and action is the verb of the operation.
func (n *Notifier) failure(c *gin.Context, kind, name, action string, err error) {
	if err == nil || errors.Is(err, entity.ErrValidation) {
		n.notify(c, entity.NoticeError, formErrorMessage)
		return
	}

	subject := kind
	if name != "" {
		subject = kind + " " + name
	}
	n.notify(c, entity.NoticeError, fmt.Sprintf("An error occurred. %s could not be %s.", subject, action))
}

func (n *Notifier) GetNotices(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	notices, err := n.notices.Pop(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: notices})
}
