package model

import "strings"

// Tristate is the explicit three-valued form of the loosely typed
// boolean-ish values that show up in analysis payloads ("yes", "true",
// actual booleans, or nothing at all).
type Tristate int

const (
	TristateUnknown Tristate = iota
	TristateTrue
	TristateFalse
)

func (t Tristate) String() string {
	switch t {
	case TristateTrue:
		return "true"
	case TristateFalse:
		return "false"
	default:
		return "unknown"
	}
}

// ToTristate coerces a raw payload value into a Tristate. Coercion happens
// once at the boundary; downstream logic only ever sees the Tristate.
func ToTristate(v any) Tristate {
	switch val := v.(type) {
	case bool:
		if val {
			return TristateTrue
		}
		return TristateFalse
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "yes", "1":
			return TristateTrue
		case "false", "no", "0":
			return TristateFalse
		}
	}
	return TristateUnknown
}

// AnalysisFields is the canonical field mapping extracted from a call
// analysis payload, after the two legacy wire shapes have been merged.
type AnalysisFields struct {
	CallerName          string
	CompanyName         string
	PhoneNumber         string
	Email               string
	Location            string
	InsuranceStatus     string
	CustomerStatus      string
	IncidentDescription string
	InquiryReason       string
	SecurityIncident    Tristate
}
