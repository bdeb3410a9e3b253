package profile

// User is the account identity shown on the profile screen and committed to
// the session store after a successful sign-in confirmation.
type User struct {
	ID        int
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

type Address struct {
	ID             int
	Street         string
	ExteriorNumber string
	Neighborhood   string
	City           string
	State          string
	PostalCode     string
	Default        bool
}

// FiscalData holds the invoicing profile (RFC is the Mexican taxpayer id).
type FiscalData struct {
	RFC          string
	BusinessName string
	FiscalRegime string
	PostalCode   string
}

// Snapshot aggregates the profile screen's data.
type Snapshot struct {
	User      User
	Addresses []Address
}
