package models

type EmailNotificationRequest struct {
	To          string   `json:"to"`
	CC          []string `json:"cc,omitempty"`
	BCC         []string `json:"bcc,omitempty"`
	Subject     string   `json:"subject"`
	Content     string   `json:"content"`
	HTMLContent string   `json:"html_content"`
}
