package handler

import (
	"net/http"
	"time"

	"videogamehub/backend/internal/database"
	"videogamehub/backend/internal/models"
	"videogamehub/backend/internal/reviews"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ProfileResponse defines the structure for the authenticated user's profile.
type ProfileResponse struct {
	ID        uint      `json:"id" example:"1"`
	Nickname  string    `json:"nickname" example:"testuser"`
	Email     string    `json:"email" example:"test@example.com"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileInput defines the editable profile fields.
type ProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// AuthoredReviewResponse is one of the user's own reviews with the game
// name resolved for display.
type AuthoredReviewResponse struct {
	ID        uint      `json:"id"`
	GameID    int64     `json:"game_id"`
	GameName  string    `json:"game_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newProfileResponse(user models.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.ID,
		Nickname:  user.Nickname,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// endregion

type UserHandler struct {
	Reviews *reviews.Store
}

func NewUserHandler(reviewStore *reviews.Store) *UserHandler {
	return &UserHandler{Reviews: reviewStore}
}

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(user))
}

// UpdateMe godoc
// @Summary      Update current user's profile
// @Description  Updates the editable profile fields of the authenticated user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ProfileInput true "Profile fields"
// @Success      200  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Bio = input.Bio
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(user))
}

// GetMyReviews godoc
// @Summary      Get current user's reviews
// @Description  Retrieves the authenticated user's reviews, newest first, with game names resolved best-effort.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   AuthoredReviewResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/reviews [get]
func (h *UserHandler) GetMyReviews(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	authored, err := h.Reviews.ByAuthor(c.Request.Context(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	response := make([]AuthoredReviewResponse, len(authored))
	for i, a := range authored {
		response[i] = AuthoredReviewResponse{
			ID:        a.Review.ID,
			GameID:    a.Review.GameID,
			GameName:  a.GameName,
			Text:      a.Review.Text,
			CreatedAt: a.Review.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, response)
}
