package model

// BookingNotification is the relay input payload: the subset of booking
// fields forwarded to the operator after a successful insertion.
type BookingNotification struct {
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	PreferredPlan   string `json:"preferredPlan"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	QuestionConcern string `json:"questionConcern,omitempty"`
}

// NotificationResult reports what the relay attempted. The deep link is
// always present; email fields reflect the optional delivery attempt.
type NotificationResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
	EmailSent   bool   `json:"emailSent"`
	EmailTo     string `json:"emailTo,omitempty"`
}
