package handler

import (
	"errors"
	"net/http"

	"invoicing-dashboard-backend/internal/apperror"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes. Store failures only
// ever expose their generic message.
func respondError(c *gin.Context, err error) {
	var verr *apperror.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Missing or invalid fields.",
			"fields": verr.Fields,
		})
	case errors.Is(err, apperror.ErrDataAccess):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// isFormPost reports whether the request came from an HTML form, which
// expects to be redirected rather than handed JSON.
func isFormPost(c *gin.Context) bool {
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// navigate sends the client to location after a successful mutation.
func navigate(c *gin.Context, status int, location string, body gin.H) {
	if isFormPost(c) {
		c.Redirect(http.StatusSeeOther, location)
		return
	}
	body["location"] = location
	c.JSON(status, body)
}
