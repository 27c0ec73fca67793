package api

import (
	"net/http"

	"floodwatch.app/internal/core/device"
	"github.com/gin-gonic/gin"
)

// registerDeviceToken handles POST /device-tokens requests
func (s *HTTPServerAdapter) registerDeviceToken(c *gin.Context) {
	var req DeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	token, err := s.deviceUseCase.Register(c.Request.Context(), device.RegisterParams{
		ExpoToken:  req.ExpoToken,
		Platform:   req.Platform,
		LocationID: req.LocationID,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDeviceTokenResponse(token))
}
