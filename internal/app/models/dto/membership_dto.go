package dto

// MembershipPlanRequest carries the create-or-update payload for a club's
// membership program.
type MembershipPlanRequest struct {
	Name        string `json:"membership_name"`
	Number      string `json:"membership_number"`
	Description string `json:"membership_description"`
	Image       string `json:"membership_image"`
}

// MembershipPlanResponse is the stored plan. Absence of a plan is rendered as
// an empty JSON object by the controller, never a 404.
type MembershipPlanResponse struct {
	ID          int64  `json:"id"`
	ClubID      int64  `json:"club_id"`
	Name        string `json:"membership_name"`
	Number      string `json:"membership_number"`
	Description string `json:"membership_description"`
	Image       string `json:"membership_image"`
}
