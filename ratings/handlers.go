package ratings

import (
	"encoding/json"
	"net/http"

	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

// Store is the process-wide rating log.
var Store = NewLog()

// POST /api/ratings
func RecordRating(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event models.RatingEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if event.Destination == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "destination is required")
		return
	}
	if event.Rating < 0 || event.Rating > 10 {
		utils.RespondWithError(w, http.StatusBadRequest, "rating must be between 0 and 10")
		return
	}

	stored := Store.Record(event)

	category := "unpreferred"
	if stored.Rating >= PreferredThreshold {
		category = "preferred"
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":     true,
		"category":    category,
		"destination": stored.Destination,
		"rating":      stored.Rating,
	})
}

// GET /api/ratings/preferred
func GetPreferred(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	preferred := Store.Preferred()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"count":        len(preferred),
		"destinations": preferred,
	})
}

// GET /api/ratings
func GetAllRatings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	preferred := Store.Preferred()
	unpreferred := Store.Unpreferred()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"preferred_count":   len(preferred),
		"unpreferred_count": len(unpreferred),
		"preferred":         preferred,
		"unpreferred":       unpreferred,
	})
}

// DELETE /api/ratings
func ClearRatings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	Store.Clear()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "All ratings cleared",
	})
}
