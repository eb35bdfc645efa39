/**
 * @description
 * Domain model for support tickets submitted through the web shell.
 * Tickets are forwarded to the backend best-effort; the backend is the
 * record of truth, this service never stores them.
 */
package domain

import "time"

// SupportTicket is a support request submitted by a visitor.
type SupportTicket struct {
	ID        string    `json:"ticket_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IssueType string    `json:"issue_type"`
	Message   string    `json:"message"`
	Locale    string    `json:"locale,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupportTicketEvent is published to the event exchange when a ticket is
// received, so downstream consumers (notifications, analytics) can react.
type SupportTicketEvent struct {
	TicketID   string    `json:"ticket_id"`
	Email      string    `json:"email"`
	IssueType  string    `json:"issue_type"`
	ReceivedAt time.Time `json:"received_at"`
}
