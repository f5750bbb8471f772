package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// NewRouter wires every route onto an httprouter instance.
func NewRouter(events EventService, queries EventQueryService, catalog CatalogService) http.Handler {
	router := httprouter.New()

	router.POST("/events", HandleCreateEvent(events))
	router.GET("/events", HandleListEvents(events))
	router.GET("/events/:event_id", HandleGetEvent(events))
	router.PUT("/events/:event_id", HandleUpdateEvent(events))
	router.DELETE("/events/:event_id", HandleDeleteEvent(events))

	router.GET("/bars", HandleListBars(catalog))
	router.GET("/categories", HandleListCategories(catalog))

	router.GET("/event-stats", HandleEventStats(queries))
	router.GET("/filtered-events", HandleFilteredEvents(queries))

	router.HandlerFunc(http.MethodGet, "/health", HealthHandler)

	router.NotFound = NotFoundHandler()
	router.MethodNotAllowed = MethodNotAllowedHandler()
	router.HandleMethodNotAllowed = true

	return router
}
