package identity

// Profile is the public slice of a provider user document
//
// Only the fields the feed needs are decoded; everything else the
// provider returns stays at this boundary
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
}

// session is the provider's token verification document
type session struct {
	Subject string `json:"subject"`
	Status  string `json:"status"`
}
