package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kbs-store/models"
	"kbs-store/services"
)

type PinController struct {
	Pins *services.PinService
}

func NewPinController(pins *services.PinService) *PinController {
	return &PinController{Pins: pins}
}

// @Summary Generate admin PIN
// @Description Generate a 6-digit PIN for the given phone number. The PIN replaces any outstanding one for that phone and expires after 5 minutes.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.GeneratePinRequest true "Phone number"
// @Success 200 {object} models.GeneratePinResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/generate-pin [post]
func (ctrl *PinController) GeneratePin(c *gin.Context) {
	var req models.GeneratePinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	result, err := ctrl.Pins.Generate(c.Request.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := models.GeneratePinResponse{
		Message: "PIN generated successfully",
		Phone:   result.Phone,
	}
	if result.Exposed {
		response.Pin = result.Pin
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Verify admin PIN
// @Description Verify a previously generated PIN. Verification is idempotent; the record stays valid until it expires.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.VerifyPinRequest true "Phone number and PIN"
// @Success 200 {object} models.VerifyPinResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/verify-pin [post]
func (ctrl *PinController) VerifyPin(c *gin.Context) {
	var req models.VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Phone == "" || req.Pin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number and PIN are required"})
		return
	}

	if err := ctrl.Pins.Verify(c.Request.Context(), req.Phone, req.Pin); err != nil {
		if errors.Is(err, models.ErrInvalidPin) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PIN or phone number"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.VerifyPinResponse{
		Message:  "PIN verified successfully",
		Verified: true,
	})
}
