package logger

import "strings"

// MaskEmail hides the local part of an email for log output.
// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	return username[:1] + "***@" + domain
}

// MaskPhone keeps the country code and the last two digits of a phone number.
// Example: +994501234567 -> +994*******67
func MaskPhone(phone string) string {
	if len(phone) < 7 {
		return "***"
	}
	return phone[:4] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-2:]
}
