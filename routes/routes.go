package routes

import (
	"voyago/itinerary"
	"voyago/middleware"
	"voyago/planner"
	"voyago/ratelim"
	"voyago/ratings"

	"github.com/julienschmidt/httprouter"
)

func AddDestinationRoutes(router *httprouter.Router, h *planner.Handlers, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/destinations/search", rateLimiter.Limit(h.SearchDestinations))
}

func AddRatingRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/ratings", rateLimiter.Limit(ratings.RecordRating)) //Record one destination rating
	router.GET("/api/ratings", ratings.GetAllRatings)                    //Fetch all ratings split by category
	router.GET("/api/ratings/preferred", ratings.GetPreferred)           //Fetch preferred destinations
	router.DELETE("/api/ratings", ratings.ClearRatings)                  //Clear the rating log
}

func AddSessionRoutes(router *httprouter.Router, h *planner.Handlers, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/sessions", middleware.WithSessionID(h.CreateSession))
	router.GET("/api/sessions/:id", middleware.WithSessionID(h.GetSession))
	router.PUT("/api/sessions/:id", middleware.WithSessionID(h.UpdateSession))
	router.DELETE("/api/sessions/:id", middleware.WithSessionID(h.DeleteSession))

	router.POST("/api/sessions/:id/flights/search", rateLimiter.Limit(middleware.WithSessionID(h.SearchFlights)))
	router.POST("/api/sessions/:id/flights/select", middleware.WithSessionID(h.SelectFlight))
	router.POST("/api/sessions/:id/flights/reopen", middleware.WithSessionID(h.ReopenFlight))

	router.POST("/api/sessions/:id/hotels", rateLimiter.Limit(middleware.WithSessionID(h.AdvanceToHotels)))
	router.POST("/api/sessions/:id/hotels/select", middleware.WithSessionID(h.SelectHotel))

	router.POST("/api/sessions/:id/activities", middleware.WithSessionID(h.AdvanceToActivities))
	router.POST("/api/sessions/:id/activities/toggle", middleware.WithSessionID(h.ToggleActivity))

	router.POST("/api/sessions/:id/submit", rateLimiter.Limit(middleware.WithSessionID(h.Submit)))
	router.POST("/api/sessions/:id/back", middleware.WithSessionID(h.Back))
	router.POST("/api/sessions/:id/back/step", middleware.WithSessionID(h.StepBack))

	router.GET("/ws/sessions/:id", planner.HandleWS)
}

func AddItineraryRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/itineraries", itinerary.GetItineraries)                            //Fetch all saved itineraries
	router.POST("/api/itineraries/save-flight", rateLimiter.Limit(itinerary.SaveFlight)) //Persist a flight selection payload
	router.GET("/api/itineraries/files/:filename", itinerary.DownloadArtifact)          //Download a generated document
}
