package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/travelbuddy/backend/database"
	"github.com/travelbuddy/backend/middleware"
	"github.com/travelbuddy/backend/models"
	"github.com/travelbuddy/backend/utils"
)

type CreateTripInput struct {
	Destination string `json:"destination" binding:"required" example:"Goa"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02" example:"2025-06-01"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02" example:"2025-06-10"`
	Budget      int    `json:"budget" binding:"min=0" example:"15000"`
	Description string `json:"description" binding:"required,min=10" example:"Beach week, looking for two buddies"`
}

// ownerSummary is the public slice of a user shown on trip listings.
func ownerSummary(u models.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"profile_image": u.ProfileImage,
	}
}

// CreateTrip godoc
// @Summary Create a new trip
// @Description Creates a trip posting owned by the authenticated user
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip body CreateTripInput true "Trip Creation"
// @Success 201 {object} map[string]interface{} "Trip created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/trips [post]
func CreateTrip(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)

	var input CreateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	trip := models.Trip{
		Destination: input.Destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		Description: input.Description,
		UserID:      userID,
	}

	if err := database.DB.Create(&trip).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to create trip", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip created successfully",
		"trip":    trip,
	})
}

// GetTrips godoc
// @Summary List all trips
// @Description Returns the public feed of all trips, newest first
// @Tags trips
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of trips"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/trips [get]
func GetTrips(c *gin.Context) {
	var trips []models.Trip
	if err := database.DB.Preload("User").Order("created_at DESC").Find(&trips).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to fetch trips", err)
		return
	}

	response := []gin.H{}
	for _, trip := range trips {
		response = append(response, gin.H{
			"id":          trip.ID,
			"destination": trip.Destination,
			"startDate":   trip.StartDate,
			"endDate":     trip.EndDate,
			"budget":      trip.Budget,
			"description": trip.Description,
			"created_at":  trip.CreatedAt,
			"user":        ownerSummary(trip.User),
		})
	}

	c.JSON(http.StatusOK, gin.H{"trips": response})
}

// GetTrip godoc
// @Summary Get details of a specific trip
// @Description Returns a trip with its owner and join-request summaries
// @Tags trips
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} map[string]interface{} "Trip details"
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/trips/{id} [get]
func GetTrip(c *gin.Context) {
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.ErrValidation, "Invalid trip ID", nil)
		return
	}

	var trip models.Trip
	if err := database.DB.Preload("User").Preload("JoinRequests").First(&trip, tripID).Error; err != nil {
		utils.RespondError(c, utils.ErrNotFound, "Trip not found", nil)
		return
	}

	owner := ownerSummary(trip.User)
	owner["bio"] = trip.User.Bio

	// Only (userId, status) pairs are exposed here. Clients use them to tell
	// whether the current viewer has an accepted request, which is what
	// unlocks the owner's contact email in the UI.
	requests := []gin.H{}
	for _, r := range trip.JoinRequests {
		requests = append(requests, gin.H{
			"user_id": r.UserID,
			"status":  r.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            trip.ID,
		"destination":   trip.Destination,
		"startDate":     trip.StartDate,
		"endDate":       trip.EndDate,
		"budget":        trip.Budget,
		"description":   trip.Description,
		"created_at":    trip.CreatedAt,
		"user":          owner,
		"join_requests": requests,
	})
}

// GetMyTrips godoc
// @Summary Get the authenticated user's trips
// @Description Returns the caller's trips with their join requests and requester identities
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of trips"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/trips/user/me [get]
func GetMyTrips(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)

	var trips []models.Trip
	if err := database.DB.Where("user_id = ?", userID).
		Preload("JoinRequests").Preload("JoinRequests.User").
		Order("created_at DESC").
		Find(&trips).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to fetch trips", err)
		return
	}

	response := []gin.H{}
	for _, trip := range trips {
		requests := []gin.H{}
		for _, r := range trip.JoinRequests {
			requests = append(requests, gin.H{
				"id":     r.ID,
				"status": r.Status,
				"user":   ownerSummary(r.User),
			})
		}

		response = append(response, gin.H{
			"id":            trip.ID,
			"destination":   trip.Destination,
			"startDate":     trip.StartDate,
			"endDate":       trip.EndDate,
			"budget":        trip.Budget,
			"description":   trip.Description,
			"created_at":    trip.CreatedAt,
			"join_requests": requests,
		})
	}

	c.JSON(http.StatusOK, gin.H{"trips": response})
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Deletes a trip and all of its join requests
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 200 {object} map[string]string "Trip deleted successfully"
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/trips/{id} [delete]
func DeleteTrip(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, utils.ErrValidation, "Invalid trip ID", nil)
		return
	}

	var trip models.Trip
	if err := database.DB.First(&trip, tripID).Error; err != nil {
		utils.RespondError(c, utils.ErrNotFound, "Trip not found", nil)
		return
	}

	if !utils.CanModify(userID, trip.UserID) {
		utils.RespondError(c, utils.ErrForbidden, "Only the trip owner can delete the trip", nil)
		return
	}

	// Delete join requests first (cascade)
	if err := database.DB.Where("trip_id = ?", tripID).Delete(&models.JoinRequest{}).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to delete trip requests", err)
		return
	}

	if err := database.DB.Delete(&trip).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to delete trip", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}
