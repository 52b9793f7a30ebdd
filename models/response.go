package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type GeneratePinResponse struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
	// Pin is echoed only in development setups without an out-of-band
	// delivery channel configured.
	Pin string `json:"pin,omitempty"`
}

type VerifyPinResponse struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
