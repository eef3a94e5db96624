package dto

// CreateEventRequest carries a new event. Title, Description and Date are
// required; ClubID, when supplied, must reference an existing club.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ClubID      *int64 `json:"clubId"`
}

// UpdateEventRequest is a partial update; omitted fields keep their stored
// values.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	ClubID      *int64  `json:"clubId"`
}

// EventResponse is the event shape for list and single reads, including the
// owning club's name when there is one.
type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	ClubID      *int64  `json:"club_id"`
	ClubName    *string `json:"club_name"`
}

// EventListResponse wraps the oldest-first event listing.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// EventDetailResponse wraps a single event.
type EventDetailResponse struct {
	Event EventResponse `json:"event"`
}

// EventCreatedResponse is the creation envelope (camelCase clubId, matching
// the create contract rather than the list contract).
type EventCreatedResponse struct {
	Event struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		ClubID      *int64 `json:"clubId"`
	} `json:"event"`
}
