package itinerary

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetItineraries returns all saved itineraries, newest first.
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.ItinerariesCollection.Find(r.Context(), bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}
	defer cursor.Close(r.Context())

	itineraries := []map[string]interface{}{}
	if err := cursor.All(r.Context(), &itineraries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode itineraries")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "success", "itineraries": itineraries})
}

// SaveFlight persists an externally built flight selection payload and
// renders its PDF. This is the standalone save endpoint; session submits go
// through the planner.
func SaveFlight(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var sel models.FlightSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(sel.Origin) == "" || strings.TrimSpace(sel.Destination) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if sel.Travelers <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "travelers must be greater than zero")
		return
	}
	if sel.Budget <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "budget must be greater than zero")
		return
	}

	artifact, err := WriteFlightPDF(sel, publicBase(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	persistSelection(r.Context(), sel, artifact)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":       "success",
		"file":         artifact.File,
		"download_url": artifact.DownloadURL,
	})
}

// DownloadArtifact streams a previously generated flight document. Only
// bare filenames are accepted.
func DownloadArtifact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	filename := ps.ByName("filename")
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid filename")
		return
	}
	if !strings.HasSuffix(filename, ".pdf") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid filename")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	http.ServeFile(w, r, filepath.Join(ArtifactDir(), filename))
}

func publicBase(r *http.Request) string {
	if base := utils.GetEnv("PUBLIC_BASE_URL", ""); base != "" {
		return strings.TrimRight(base, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
