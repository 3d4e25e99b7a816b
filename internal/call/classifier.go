package call

import (
	"strings"

	"callwatch.app/callwatch/internal/model"
)

// Classify derives the call classification from the normalized analysis
// fields. It is a pure function: same fields, same answer.
//
// Precedence: an explicit security-incident flag or any incident text forces
// Incident; inquiry text alone yields Inquiry; anything else is
// Unclassified. The flag wins over inquiry text even when both are present.
func Classify(fields model.AnalysisFields) model.Classification {
	flagged := fields.SecurityIncident == model.TristateTrue

	if hasText(fields.IncidentDescription) || flagged {
		return model.ClassificationIncident
	}

	if hasText(fields.InquiryReason) {
		return model.ClassificationInquiry
	}

	return model.ClassificationUnclassified
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
