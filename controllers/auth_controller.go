package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelbuddy/backend/database"
	"github.com/travelbuddy/backend/email"
	"github.com/travelbuddy/backend/models"
	"github.com/travelbuddy/backend/utils"
	"gorm.io/gorm"
)

// Mailer delivers verification and password-reset emails. main wires the
// configured provider; tests leave the log-only default in place.
var Mailer email.Sender = &email.LogSender{}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required,len=6"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles user registration
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	// Check if user already exists
	var existingUser models.User
	if result := database.DB.Where("email = ?", input.Email).First(&existingUser); result.RowsAffected > 0 {
		utils.RespondError(c, utils.ErrConflict, "User with this email already exists", nil)
		return
	}

	code, err := utils.GenerateCode(6)
	if err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to create user", err)
		return
	}

	// Create new user
	user := models.User{
		Name:             input.Name,
		Email:            input.Email,
		Password:         input.Password,
		VerificationCode: code,
	}

	if result := database.DB.Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, utils.ErrConflict, "User with this email already exists", nil)
			return
		}
		utils.RespondError(c, utils.ErrInternal, "Failed to create user", result.Error)
		return
	}

	// Delivery failure should not block registration
	if err := Mailer.SendVerificationEmail(user.Email, code); err != nil {
		log.Printf("failed to send verification email to %s: %v", user.Email, err)
	}

	// Generate token
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

// Login handles user authentication
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	// Find user by email
	var user models.User
	if result := database.DB.Where("email = ?", input.Email).First(&user); result.Error != nil {
		utils.RespondError(c, utils.ErrUnauthorized, "Invalid email or password", nil)
		return
	}

	// Validate password
	if err := user.ValidatePassword(input.Password); err != nil {
		utils.RespondError(c, utils.ErrUnauthorized, "Invalid email or password", nil)
		return
	}

	// Generate token
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

// VerifyEmail marks an account as verified when the emailed code matches
func VerifyEmail(c *gin.Context) {
	var input VerifyEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	var user models.User
	if result := database.DB.Where("email = ?", input.Email).First(&user); result.Error != nil {
		utils.RespondError(c, utils.ErrNotFound, "User not found", nil)
		return
	}

	if user.VerificationCode == "" || user.VerificationCode != input.Code {
		utils.RespondError(c, utils.ErrValidation, "Invalid verification code", nil)
		return
	}

	updates := map[string]interface{}{"is_verified": true, "verification_code": ""}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to verify email", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ForgotPassword emails a reset code. It always responds 200 so the endpoint
// cannot be used to probe which emails have accounts.
func ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	var user models.User
	if result := database.DB.Where("email = ?", input.Email).First(&user); result.Error == nil {
		code, err := utils.GenerateCode(6)
		if err == nil {
			if err := database.DB.Model(&user).Update("reset_code", code).Error; err == nil {
				if err := Mailer.SendPasswordResetEmail(user.Email, code); err != nil {
					log.Printf("failed to send password reset email to %s: %v", user.Email, err)
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If an account exists for this email, a reset code has been sent"})
}

// ResetPassword sets a new password when the emailed reset code matches
func ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ErrValidation, err.Error(), nil)
		return
	}

	var user models.User
	if result := database.DB.Where("email = ?", input.Email).First(&user); result.Error != nil {
		utils.RespondError(c, utils.ErrValidation, "Invalid reset code", nil)
		return
	}

	if user.ResetCode == "" || user.ResetCode != input.Code {
		utils.RespondError(c, utils.ErrValidation, "Invalid reset code", nil)
		return
	}

	user.Password = input.Password
	user.ResetCode = ""
	if err := database.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, utils.ErrInternal, "Failed to reset password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
