package handler

import (
	"context"
	"net/http"
	"sort"
	"strconv"

	"videogamehub/backend/internal/catalog"
	"videogamehub/backend/internal/lists"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ListsResponse is the user's full list state plus its sync status.
// Status "stale" means the data shown is the last good sync and the error
// field says why the latest one failed; "empty" means no data because the
// user has no active session.
type ListsResponse struct {
	Status string             `json:"status" example:"ready"`
	Error  string             `json:"error,omitempty"`
	Lists  map[string][]int64 `json:"lists"`
}

// MembershipResponse reports one game's membership after a mutation.
type MembershipResponse struct {
	Status string `json:"status" example:"ready"`
	Error  string `json:"error,omitempty"`
	InList bool   `json:"in_list"`
}

// ResolvedListsResponse carries each list resolved to full game records.
type ResolvedListsResponse struct {
	Status string                          `json:"status" example:"ready"`
	Lists  map[string][]catalog.GameRecord `json:"lists"`
}

func newListsResponse(snap lists.Snapshot) ListsResponse {
	resp := ListsResponse{
		Status: snap.State.String(),
		Lists:  make(map[string][]int64, len(lists.Labels)),
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	for _, label := range lists.Labels {
		ids := make([]int64, 0, len(snap.Sets[label]))
		for id := range snap.Sets[label] {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		resp.Lists[label.Short()] = ids
	}
	return resp
}

// endregion

type ListHandler struct {
	Lists   *lists.Store
	Catalog *catalog.Client
}

func NewListHandler(listStore *lists.Store, catalogClient *catalog.Client) *ListHandler {
	return &ListHandler{Lists: listStore, Catalog: catalogClient}
}

// GetLists godoc
// @Summary      Get the current user's game lists
// @Description  Returns the played/queued/wishlist game ids with the sync status of the in-memory state.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ListsResponse
// @Failure      401 {object} ErrorResponse
// @Router       /lists [get]
func (h *ListHandler) GetLists(c *gin.Context) {
	userID, _ := c.Get("userID")
	snap := h.Lists.Snapshot(userID.(uint))
	c.JSON(http.StatusOK, newListsResponse(snap))
}

// GetListGames godoc
// @Summary      Get the current user's lists resolved to games
// @Description  Resolves every list entry to its full catalog record. Games that fail to resolve are skipped.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ResolvedListsResponse
// @Failure      401 {object} ErrorResponse
// @Router       /lists/games [get]
func (h *ListHandler) GetListGames(c *gin.Context) {
	userID, _ := c.Get("userID")
	snap := h.Lists.Snapshot(userID.(uint))

	resp := ResolvedListsResponse{
		Status: snap.State.String(),
		Lists:  make(map[string][]catalog.GameRecord, len(lists.Labels)),
	}
	for _, label := range lists.Labels {
		ids := make([]int64, 0, len(snap.Sets[label]))
		for id := range snap.Sets[label] {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		records := make([]catalog.GameRecord, 0, len(ids))
		for _, id := range ids {
			record, err := h.Catalog.Details(c.Request.Context(), id)
			if err != nil {
				// A list entry whose game vanished upstream is not
				// worth failing the whole dashboard for.
				continue
			}
			records = append(records, record)
		}
		resp.Lists[label.Short()] = records
	}

	c.JSON(http.StatusOK, resp)
}

// AddToList godoc
// @Summary      Add a game to a list
// @Description  Adds the game id to the named list and re-syncs the in-memory state from storage. Idempotent.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        label  path string true "List label" Enums(played, queued, wishlist)
// @Param        gameID path int    true "Game ID"
// @Success      200 {object} MembershipResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /lists/{label}/games/{gameID} [post]
func (h *ListHandler) AddToList(c *gin.Context) {
	h.mutate(c, h.Lists.AddToList)
}

// RemoveFromList godoc
// @Summary      Remove a game from a list
// @Description  Removes the game id from the named list and re-syncs the in-memory state from storage.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        label  path string true "List label" Enums(played, queued, wishlist)
// @Param        gameID path int    true "Game ID"
// @Success      200 {object} MembershipResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /lists/{label}/games/{gameID} [delete]
func (h *ListHandler) RemoveFromList(c *gin.Context) {
	h.mutate(c, h.Lists.RemoveFromList)
}

// RefreshLists godoc
// @Summary      Re-sync the current user's lists
// @Description  Forces a full re-fetch of the user's list document into memory.
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ListsResponse
// @Failure      401 {object} ErrorResponse
// @Router       /lists/refresh [post]
func (h *ListHandler) RefreshLists(c *gin.Context) {
	userID, _ := c.Get("userID")
	// The refresh error is reflected in the snapshot status; the caller
	// still gets the last good data.
	_ = h.Lists.Refresh(c.Request.Context(), userID.(uint))
	c.JSON(http.StatusOK, newListsResponse(h.Lists.Snapshot(userID.(uint))))
}

func (h *ListHandler) mutate(c *gin.Context, op func(ctx context.Context, userID uint, label lists.Label, gameID int64) error) {
	userID, _ := c.Get("userID")

	label, err := lists.ParseLabel(c.Param("label"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown list label"})
		return
	}

	gameID, err := strconv.ParseInt(c.Param("gameID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	opErr := op(c.Request.Context(), userID.(uint), label, gameID)

	snap := h.Lists.Snapshot(userID.(uint))
	// The mutation may have been applied even when the follow-up sync
	// failed; the snapshot status tells those cases apart.
	if opErr != nil && snap.State != lists.StateStale {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update list"})
		return
	}

	resp := MembershipResponse{
		Status: snap.State.String(),
		InList: h.Lists.IsInList(userID.(uint), label, gameID),
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
