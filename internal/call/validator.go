package call

import (
	"strings"

	"callwatch.app/callwatch/internal/model"
)

// placeholderValue is technically present but semantically empty: some
// upstream analysis models fill unanswered fields with this literal.
const placeholderValue = "not provided"

// Missing-field descriptors, in the fixed order they are reported.
const (
	missingIncidentFlag = "security incident flag (must be explicitly true)"
	missingCallerName   = "caller name"
	missingCompanyName  = "company name"
	missingPhoneNumber  = "phone number"
	missingContactInfo  = "contact info (phone number or email)"

	inquiryFlagConflict = "security incident flag must not be true for an inquiry"
)

// Validate checks the minimum required field set for the given
// classification. Unclassified calls validate against the Incident policy:
// ambiguous calls default to the stricter path.
func Validate(classification model.Classification, fields model.AnalysisFields) model.ValidationResult {
	var missing []string

	switch classification {
	case model.ClassificationInquiry:
		if fields.SecurityIncident == model.TristateTrue {
			missing = append(missing, inquiryFlagConflict)
		}
		if !provided(fields.CallerName) {
			missing = append(missing, missingCallerName)
		}
		// Company name is explicitly optional for inquiries; one of phone
		// or email must carry contact info.
		if !provided(fields.PhoneNumber) && !provided(fields.Email) {
			missing = append(missing, missingContactInfo)
		}

	default: // Incident, and Unclassified treated as Incident
		if fields.SecurityIncident != model.TristateTrue {
			missing = append(missing, missingIncidentFlag)
		}
		if !provided(fields.CallerName) {
			missing = append(missing, missingCallerName)
		}
		if !provided(fields.CompanyName) {
			missing = append(missing, missingCompanyName)
		}
		if !provided(fields.PhoneNumber) {
			missing = append(missing, missingPhoneNumber)
		}
	}

	return model.ValidationResult{
		Valid:         len(missing) == 0,
		MissingFields: missing,
	}
}

// provided reports whether a field value is usable: non-empty after
// trimming and not the known placeholder.
func provided(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	return !strings.EqualFold(trimmed, placeholderValue)
}
