package adzuna

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client queries the Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	baseURL    string
	httpClient *http.Client
}

// Query describes a single-page search request
type Query struct {
	What           string
	Where          string
	Country        string
	Page           int
	ResultsPerPage int
}

// SearchResponse is the raw search payload
type SearchResponse struct {
	Count   int       `json:"count"`
	Results []Posting `json:"results"`
	Mean    float64   `json:"mean"`
}

// Posting is one raw search result. Company, location and category come back
// in more than one shape depending on the listing, so those fields decode
// through the tagged-union types below.
type Posting struct {
	ID           FlexibleID `json:"id"`
	Title        string     `json:"title"`
	Company      LabelField `json:"company"`
	Location     Location   `json:"location"`
	Description  string     `json:"description"`
	Created      string     `json:"created"`
	RedirectURL  string     `json:"redirect_url"`
	ContractType string     `json:"contract_type"`
	ContractTime string     `json:"contract_time"`
	Category     LabelField `json:"category"`
	SalaryMin    *float64   `json:"salary_min"`
	SalaryMax    *float64   `json:"salary_max"`
}

// Category is one entry from the categories endpoint
type Category struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

type categoriesResponse struct {
	Results []Category `json:"results"`
}

// FieldKind discriminates the shapes a flexible upstream field can take.
type FieldKind int

const (
	FieldAbsent FieldKind = iota
	FieldScalar
	FieldObject
)

// LabelField decodes an upstream value that is sometimes an object carrying a
// display string ("display_name" or "label"), sometimes a bare scalar, and
// sometimes missing entirely.
type LabelField struct {
	Kind  FieldKind
	Value string
}

func (f *LabelField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = LabelField{Kind: FieldAbsent}
		return nil
	}

	switch data[0] {
	case '{':
		var obj struct {
			DisplayName string `json:"display_name"`
			Label       string `json:"label"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		value := obj.DisplayName
		if value == "" {
			value = obj.Label
		}
		*f = LabelField{Kind: FieldObject, Value: value}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = LabelField{Kind: FieldScalar, Value: s}
	default:
		// numbers, booleans: keep the literal text
		*f = LabelField{Kind: FieldScalar, Value: string(data)}
	}

	return nil
}

// Location decodes the upstream location field, which carries an area
// hierarchy when it comes back as an object.
type Location struct {
	Kind        FieldKind
	DisplayName string
	Area        []string
}

func (l *Location) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = Location{Kind: FieldAbsent}
		return nil
	}

	switch data[0] {
	case '{':
		var obj struct {
			DisplayName string   `json:"display_name"`
			Area        []string `json:"area"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*l = Location{Kind: FieldObject, DisplayName: obj.DisplayName, Area: obj.Area}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Location{Kind: FieldScalar, DisplayName: s}
	default:
		*l = Location{Kind: FieldScalar, DisplayName: string(data)}
	}

	return nil
}

// Display resolves the location to its final display string: an area
// hierarchy with at least two entries wins over the raw display name,
// joined as "<last>, <second-to-last>".
func (l Location) Display() string {
	if len(l.Area) >= 2 {
		return l.Area[len(l.Area)-1] + ", " + l.Area[len(l.Area)-2]
	}
	return l.DisplayName
}

// FlexibleID tolerates numeric job IDs, which some Adzuna country feeds emit
// instead of strings.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		*id = FlexibleID(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*id = FlexibleID(string(data))
	return nil
}
