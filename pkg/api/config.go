package api

type ConfigResponse struct {
	AppTitle   string `json:"appTitle"`
	FooterText string `json:"footerText"`
}

type IdentityResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}
