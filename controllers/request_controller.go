package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/travelbuddy/backend/database"
	"github.com/travelbuddy/backend/middleware"
	"github.com/travelbuddy/backend/models"
	"github.com/travelbuddy/backend/utils"
	"gorm.io/gorm"
)

type SendRequestInput struct {
	TripID uint `json:"tripId" binding:"required" example:"1"`
}

// SendRequest godoc
// @Summary Send a join request
// @Description Requests to join another user's trip
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendRequestInput true "Join Request Creation"
// @Success 201 {object} map[string]interface{} "Request sent successfully"
// @Failure 400 {object} map[string]string "Invalid input or own trip"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 409 {object} map[string]string "Request already exists"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/requests/send [post]
func SendRequest(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)

	var input SendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	// Check if trip exists
	var trip models.Trip
	if err := database.DB.First(&trip, input.TripID).Error; err != nil {
		utils.RespondError(c, utils.ErrNotFound, "Trip not found", nil)
		return
	}

	// Prevent joining own trip
	if trip.UserID == userID {
		utils.RespondError(c, utils.ErrValidation, "You cannot join your own trip", nil)
		return
	}

	// Check for an existing request
	var existing models.JoinRequest
	if err := database.DB.Where("user_id = ? AND trip_id = ?", userID, input.TripID).
		First(&existing).Error; err == nil {
		utils.RespondError(c, utils.ErrConflict, "You have already requested to join this trip", nil)
		return
	}

	request := models.JoinRequest{
		UserID: userID,
		TripID: input.TripID,
		Status: models.RequestStatusPending,
	}

	if err := database.DB.Create(&request).Error; err != nil {
		// The unique index on (user_id, trip_id) backstops the existence
		// check above when two identical requests race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ErrConflict, "You have already requested to join this trip", nil)
			return
		}
		utils.RespondError(c, utils.ErrInternal, "Failed to create request", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Request sent successfully",
		"request": request,
	})
}

// DecideRequest godoc
// @Summary Accept or reject a join request
// @Description Lets the trip owner accept or reject a pending join request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path int true "Request ID"
// @Param status path string true "New status" Enums(accepted, rejected)
// @Success 200 {object} map[string]string "Request decided successfully"
// @Failure 400 {object} map[string]string "Invalid status or request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the trip owner"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request already decided"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/requests/{requestId}/{status} [patch]
func DecideRequest(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)

	requestID, err := strconv.ParseUint(c.Param("requestId"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.ErrValidation, "Invalid request ID", nil)
		return
	}

	status := c.Param("status")
	if status != models.RequestStatusAccepted && status != models.RequestStatusRejected {
		utils.RespondError(c, utils.ErrValidation, "Invalid status", nil)
		return
	}

	// Load the request with its trip to check ownership
	var request models.JoinRequest
	if err := database.DB.Preload("Trip").First(&request, requestID).Error; err != nil {
		utils.RespondError(c, utils.ErrNotFound, "Request not found", nil)
		return
	}

	if !utils.CanModify(userID, request.Trip.UserID) {
		utils.RespondError(c, utils.ErrForbidden, "You are not the owner of this trip", nil)
		return
	}

	// Conditional update: only a pending request may be decided. A request
	// that was already accepted or rejected stays as it is.
	result := database.DB.Model(&models.JoinRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Update("status", status)
	if result.Error != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to update request", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, utils.ErrConflict, "Request has already been decided", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request " + status + " successfully"})
}

// WithdrawRequest godoc
// @Summary Withdraw a join request
// @Description Deletes the caller's own join request for a trip
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path int true "Trip ID"
// @Success 200 {object} map[string]string "Request withdrawn successfully"
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/requests/{tripId} [delete]
func WithdrawRequest(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)

	tripID, err := strconv.ParseUint(c.Param("tripId"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.ErrValidation, "Invalid trip ID", nil)
		return
	}

	// Scoped to the caller, so nobody can withdraw someone else's request
	result := database.DB.Where("user_id = ? AND trip_id = ?", userID, tripID).
		Delete(&models.JoinRequest{})
	if result.Error != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to withdraw request", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, utils.ErrNotFound, "Request not found", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request withdrawn successfully"})
}
