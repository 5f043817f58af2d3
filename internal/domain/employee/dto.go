package employee

// CompanyProfileResponse is the normalized company/address view of an
// employee. Unset fields come back as empty strings; company name falls
// back to "first last", sub-district and district fall back to the legacy
// city/state columns.
type CompanyProfileResponse struct {
	ID            int64  `json:"id"`
	CompanyName   string `json:"companyName"`
	TaxID         string `json:"taxId"`
	AddressNumber string `json:"addressNumber"`
	Moo           string `json:"moo"`
	Village       string `json:"village"`
	Soi           string `json:"soi"`
	Road          string `json:"road"`
	SubDistrict   string `json:"subDistrict"`
	District      string `json:"district"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName   string `json:"companyName"`
	TaxID         string `json:"taxId"`
	AddressNumber string `json:"addressNumber"`
	Moo           string `json:"moo"`
	Village       string `json:"village"`
	Soi           string `json:"soi"`
	Road          string `json:"road"`
	SubDistrict   string `json:"subDistrict"`
	District      string `json:"district"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
}
