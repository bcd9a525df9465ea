package tools

// Defaults mirror the published tool signatures: omitted arguments behave as
// if the agent had passed these values.
const (
	defaultLocation = "India"
	defaultCountry  = "in"
	defaultPage     = 1
	defaultPageSize = 20
)

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
