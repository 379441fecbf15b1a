package handler

import (
	"net/http"
	"strconv"

	"github.com/veylan/EmberArmory_Go/internal/eventlog"
	"github.com/veylan/EmberArmory_Go/internal/logger"
)

// EventsResponse wraps a page of logged events
type EventsResponse struct {
	Events []eventlog.Event `json:"events"`
	Count  int              `json:"count"`
}

// HandleGetEvents queries the event log. Supports optional address, type and
// limit query parameters.
func HandleGetEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var filter eventlog.EventFilter
		if address := r.URL.Query().Get("address"); address != "" {
			filter.Address = &address
		}
		if eventType := r.URL.Query().Get("type"); eventType != "" {
			filter.EventType = &eventType
		}

		limitStr := GetOptionalQueryParam(r, "limit", "")
		if limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				log.Warn("Invalid limit query parameter", "value", limitStr)
				http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
				return
			}
			filter.Limit = limit
		}

		events, err := svc.GetEvents(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetEventsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, EventsResponse{Events: events, Count: len(events)})
	}
}
