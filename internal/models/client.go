package models

// Client is a customer the operator issues quotes and receipts to.
// Deleting a client does not cascade: historical records keep the id and
// readers fall back to a placeholder name.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Appointment is a scheduled service visit for a client.
type Appointment struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	ClientID  string `json:"clientId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes,omitempty"`
}
