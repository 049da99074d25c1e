package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"videogamehub/backend/internal/catalog"
	"videogamehub/backend/internal/database"
	"videogamehub/backend/internal/models"
	"videogamehub/backend/internal/reviews"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ReviewInput defines the structure for submitting a review.
type ReviewInput struct {
	Text string `json:"text" binding:"required"`
}

// ReviewResponse defines the structure for one game review.
type ReviewResponse struct {
	ID        uint      `json:"id"`
	GameID    int64     `json:"game_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		GameID:    review.GameID,
		Author:    review.AuthorHandle,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}

// endregion

const defaultTrendingLimit = 5

type GameHandler struct {
	Catalog *catalog.Client
	Reviews *reviews.Store
}

func NewGameHandler(catalogClient *catalog.Client, reviewStore *reviews.Store) *GameHandler {
	return &GameHandler{Catalog: catalogClient, Reviews: reviewStore}
}

// SearchGames godoc
// @Summary      Search games
// @Description  Searches the catalog by name. Only summary fields are populated.
// @Tags         games
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200 {array}  catalog.GameRecord
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse "Catalog unavailable"
// @Router       /games [get]
func (h *GameHandler) SearchGames(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	records, err := h.Catalog.Search(c.Request.Context(), term)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// TopRated godoc
// @Summary      Get top rated games
// @Description  Retrieves games ordered by rating, descending.
// @Tags         games
// @Produce      json
// @Param        limit query int false "Maximum results" default(10)
// @Success      200 {array}  catalog.GameRecord
// @Failure      502 {object} ErrorResponse "Catalog unavailable"
// @Router       /games/top [get]
func (h *GameHandler) TopRated(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 40 {
		limit = 40 // Upstream page size cap
	}

	records, err := h.Catalog.TopRated(c.Request.Context(), limit)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Trending godoc
// @Summary      Get trending games with trailers
// @Description  Retrieves recently released games that have a trailer. May return fewer than the limit.
// @Tags         games
// @Produce      json
// @Param        limit query int false "Maximum results" default(5)
// @Success      200 {array}  catalog.GameRecord
// @Failure      502 {object} ErrorResponse "Catalog unavailable"
// @Router       /games/trending [get]
func (h *GameHandler) Trending(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultTrendingLimit)))
	if err != nil || limit < 1 {
		limit = defaultTrendingLimit
	}

	records, err := h.Catalog.TrendingWithTrailer(c.Request.Context(), limit)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves the full catalog record for one game, including long-form description and trailer.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} catalog.GameRecord
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      502 {object} ErrorResponse "Catalog unavailable"
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	record, err := h.Catalog.Details(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetGameReviews godoc
// @Summary      Get reviews for a game
// @Description  Retrieves all reviews for a game, newest first.
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {array}  ReviewResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id}/reviews [get]
func (h *GameHandler) GetGameReviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	records, err := h.Reviews.ForGame(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	response := make([]ReviewResponse, len(records))
	for i, review := range records {
		response[i] = newReviewResponse(review)
	}

	c.JSON(http.StatusOK, response)
}

// CreateReview godoc
// @Summary      Submit a review for a game
// @Description  Appends an immutable review authored by the current user.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int         true "Game ID"
// @Param        input body ReviewInput true "Review text"
// @Success      201 {object} ReviewResponse
// @Failure      400 {object} ErrorResponse "Empty review text"
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id}/reviews [post]
func (h *GameHandler) CreateReview(c *gin.Context) {
	userID, _ := c.Get("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	review, err := h.Reviews.Submit(c.Request.Context(), id, user.ID, user.Email, input.Text)
	if err != nil {
		var validation *reviews.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	c.JSON(http.StatusCreated, newReviewResponse(review))
}

// respondCatalogError maps catalog client errors to HTTP statuses: missing
// games are 404, upstream failures are 502, anything else is 500.
func respondCatalogError(c *gin.Context, err error) {
	var notFound *catalog.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	var upstream *catalog.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Catalog request failed"})
}
