package models

// OTPEmail is the event published for the notification worker that delivers
// one-time passcodes by email.
type OTPEmail struct {
	Email      string `json:"email"`       // Recipient address
	Code       string `json:"code"`        // 6-digit one-time passcode
	TTLMinutes int    `json:"ttl_minutes"` // Minutes until the code expires
	IssuedAt   int64  `json:"issued_at"`   // Unix timestamp of issuance
}
