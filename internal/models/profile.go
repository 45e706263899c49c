package models

// CompanyProfile is the singleton branding record stamped on every
// generated document.
type CompanyProfile struct {
	Name      string `json:"name"`
	OwnerName string `json:"ownerName"`
	Document  string `json:"document"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Logo      string `json:"logo,omitempty"` // data URI
	Website   string `json:"website,omitempty"`
}

// DefaultProfile is used when no profile has been saved yet.
func DefaultProfile() CompanyProfile {
	return CompanyProfile{Name: "Meu Negócio"}
}
