package domain

// Job is the canonical record returned to callers. Every field is always
// present; missing upstream data is replaced by the documented defaults at
// normalization time, never omitted.
type Job struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	PostedDate   string `json:"posted_date"`
	JobID        string `json:"job_id"`
	ApplyURL     string `json:"apply_url"`
	Salary       string `json:"salary"`
	ContractType string `json:"contract_type"`
	ContractTime string `json:"contract_time"`
	Remote       bool   `json:"remote"`
	Category     string `json:"category"`
	IsInternship bool   `json:"is_internship"`
	Source       string `json:"source"`
}

// Category is a passthrough of one upstream job category.
type Category struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// SearchRequest describes a plain keyword search.
type SearchRequest struct {
	Keywords string
	Location string
	Country  string
	Page     int
	PageSize int
}

// InternshipRequest describes an internship-biased search. Field narrows the
// industry; internship-ness is still decided per record by the title rule.
type InternshipRequest struct {
	Field    string
	Location string
	Country  string
	Page     int
	PageSize int
}

// CompanyRequest describes a company-filtered search.
type CompanyRequest struct {
	Company  string
	Location string
	Country  string
	Page     int
	PageSize int
}

// RemoteRequest describes a remote-only search. Location is forced upstream;
// the record-level remote flag is the authoritative filter.
type RemoteRequest struct {
	Keywords string
	Country  string
	Page     int
	PageSize int
}
