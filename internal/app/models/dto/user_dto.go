package dto

// UserResponse is the public shape of an administrative account.
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// UserListResponse wraps the user listing.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserDetailResponse wraps a single user.
type UserDetailResponse struct {
	User UserResponse `json:"user"`
}

// UpdateUserRequest is a partial update; Role, when supplied, must be one of
// Admin, Leader or Member.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
