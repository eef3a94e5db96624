package dto

// LoginRequest carries the credentials for identity resolution.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminIdentity is the resolved identity for an administrative account.
type AdminIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Type  string `json:"type"`
}

// MemberIdentity is the resolved identity for a club member. Role and Type
// report "Leader" when some club's leader_id references this member; LeaderOf
// carries that club's id.
type MemberIdentity struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	StudentID string  `json:"student_id"`
	Role      string  `json:"role"`
	Clubs     []int64 `json:"clubs"`
	LeaderOf  *int64  `json:"leaderOf"`
	Type      string  `json:"type"`
}

// LoginResponse wraps whichever identity was resolved.
type LoginResponse struct {
	User interface{} `json:"user"`
}

// RegisterRequest carries a member signup.
type RegisterRequest struct {
	Name      string `json:"name"`
	StudentID string `json:"studentID"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// MemberSummary holds the public fields returned after registration.
type MemberSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
	Role      string `json:"role"`
}

// RegisterResponse is the created-member envelope.
type RegisterResponse struct {
	Message string        `json:"message"`
	Member  MemberSummary `json:"member"`
}
