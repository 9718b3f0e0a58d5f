package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelbuddy/backend/database"
	"github.com/travelbuddy/backend/middleware"
	"github.com/travelbuddy/backend/models"
	"github.com/travelbuddy/backend/utils"
)

type UpdateProfileInput struct {
	Bio          *string  `json:"bio" binding:"omitempty,max=500"`
	Location     *string  `json:"location" binding:"omitempty,max=100"`
	ProfileImage *string  `json:"profile_image" binding:"omitempty,max=512"`
	Interests    []string `json:"interests"`
}

func profileResponse(u models.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"bio":           u.Bio,
		"location":      u.Location,
		"interests":     u.Interests,
		"profile_image": u.ProfileImage,
		"is_verified":   u.IsVerified,
	}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Description Returns the caller's profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/users/profile [get]
func GetProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, utils.ErrNotFound, "User not found", nil)
		return
	}

	c.JSON(http.StatusOK, profileResponse(user))
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Updates bio, location, interests and profile image
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileInput true "Profile Update"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/users/profile [put]
func UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserKey).(uint)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, utils.ErrNotFound, "User not found", nil)
		return
	}

	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}
	if input.Interests != nil {
		user.Interests = input.Interests
	}

	if err := database.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    profileResponse(user),
	})
}
