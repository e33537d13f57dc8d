package entities

// Client is a customer of the business.
//
// Invoices reference clients by id only; deleting a client leaves its
// invoices in place with a dangling reference, which readers render as an
// unknown client rather than treating as an error.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}
