package handler

import (
	"errors"

	app_errors "locman/internal/errors"
	"locman/internal/response"
	"locman/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleServiceError writes the response for a service-layer error.
// Returns true when a response was sent, so handlers can simply
// `if HandleServiceError(c, err) { return }`.
func HandleServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	// Localized errors carry their message ID and template data.
	var svcErr *services.I18nError
	if errors.As(err, &svcErr) {
		if svcErr.Template != nil {
			response.ErrorI18nFromAPIError(c, svcErr.APIError, svcErr.MessageID, svcErr.Template)
		} else {
			response.ErrorI18nFromAPIError(c, svcErr.APIError, svcErr.MessageID)
		}
		return true
	}

	var apiErr *app_errors.APIError
	if errors.As(err, &apiErr) {
		response.Error(c, apiErr)
		return true
	}

	// Anything else came from the store; map it rather than leak it.
	if dbErr := app_errors.ParseDBError(err); dbErr != nil {
		response.Error(c, dbErr)
		return true
	}

	logrus.WithContext(c.Request.Context()).WithError(err).Error("unexpected service error")
	response.Error(c, app_errors.ErrInternalServer)
	return true
}
