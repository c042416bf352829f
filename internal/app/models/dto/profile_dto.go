package dto

// CreateProfileRequest is the input schema for profile creation.
type CreateProfileRequest struct {
	Bio     string `json:"bio"`
	Website string `json:"website"`
}

// UpdateProfileRequest is the input schema for a partial profile update.
// Bio and website are updated independently; nil fields are left unchanged.
type UpdateProfileRequest struct {
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
}

// ProfileResponse is a profile together with a denormalized view of its owner.
type ProfileResponse struct {
	ID      string      `json:"id"`
	User    UserSummary `json:"user"`
	Bio     string      `json:"bio"`
	Website string      `json:"website"`
}
