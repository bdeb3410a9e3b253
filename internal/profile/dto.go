package profile

type userDTO struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type addressDTO struct {
	ID             int     `json:"id"`
	Street         string  `json:"street"`
	ExteriorNumber *string `json:"exterior_number"`
	Neighborhood   *string `json:"neighborhood"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	PostalCode     string  `json:"postal_code"`
	Default        bool    `json:"is_default"`
}

type fiscalDataDTO struct {
	RFC          string  `json:"rfc"`
	BusinessName string  `json:"business_name"`
	FiscalRegime *string `json:"fiscal_regime"`
	PostalCode   *string `json:"postal_code"`
}

func mapUser(d userDTO) User {
	return User{
		ID:        d.ID,
		Email:     d.Email,
		FirstName: strOr(d.FirstName),
		LastName:  strOr(d.LastName),
		Phone:     strOr(d.Phone),
	}
}

func mapAddress(d addressDTO) Address {
	return Address{
		ID:             d.ID,
		Street:         d.Street,
		ExteriorNumber: strOr(d.ExteriorNumber),
		Neighborhood:   strOr(d.Neighborhood),
		City:           d.City,
		State:          d.State,
		PostalCode:     d.PostalCode,
		Default:        d.Default,
	}
}

func mapAddresses(dtos []addressDTO) []Address {
	out := make([]Address, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, mapAddress(d))
	}
	return out
}

func mapFiscalData(d fiscalDataDTO) FiscalData {
	return FiscalData{
		RFC:          d.RFC,
		BusinessName: d.BusinessName,
		FiscalRegime: strOr(d.FiscalRegime),
		PostalCode:   strOr(d.PostalCode),
	}
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
