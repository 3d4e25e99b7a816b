package dto

import "callwatch.app/callwatch/internal/model"

// CallEventRequest is the wire shape of a call webhook delivery. Two legacy
// shapes may carry the analysis fields: the flat call.analysis object and
// the nested call.call_analysis.custom_analysis_data object. Normalization
// merges them into one canonical mapping so nothing downstream knows the
// two shapes exist.
type CallEventRequest struct {
	Event string `json:"event"`
	Call  struct {
		CallID       string         `json:"call_id"`
		Analysis     map[string]any `json:"analysis"`
		CallAnalysis struct {
			CustomAnalysisData map[string]any `json:"custom_analysis_data"`
		} `json:"call_analysis"`
	} `json:"call"`
}

func (r CallEventRequest) ToEvent() model.CallAnalysisEvent {
	return model.CallAnalysisEvent{
		Kind:   model.EventKind(r.Event),
		CallID: r.Call.CallID,
		Fields: NormalizeFields(r.Call.Analysis, r.Call.CallAnalysis.CustomAnalysisData),
	}
}

// NormalizeFields merges the legacy payload shapes into the canonical field
// set. Shapes are checked in the order given; for each field, the first
// shape that carries the key wins.
func NormalizeFields(shapes ...map[string]any) model.AnalysisFields {
	return model.AnalysisFields{
		CallerName:          firstString(shapes, "caller_name"),
		CompanyName:         firstString(shapes, "company_name"),
		PhoneNumber:         firstString(shapes, "phone_number", "phone"),
		Email:               firstString(shapes, "email"),
		Location:            firstString(shapes, "location"),
		InsuranceStatus:     firstString(shapes, "insurance_status"),
		CustomerStatus:      firstString(shapes, "customer_status"),
		IncidentDescription: firstString(shapes, "incident_description"),
		InquiryReason:       firstString(shapes, "inquiry_reason", "non_incident_description"),
		SecurityIncident:    firstTristate(shapes, "is_security_incident"),
	}
}

func firstString(shapes []map[string]any, keys ...string) string {
	for _, shape := range shapes {
		for _, key := range keys {
			if v, ok := shape[key]; ok {
				if s, ok := v.(string); ok {
					return s
				}
			}
		}
	}
	return ""
}

func firstTristate(shapes []map[string]any, keys ...string) model.Tristate {
	for _, shape := range shapes {
		for _, key := range keys {
			if v, ok := shape[key]; ok {
				return model.ToTristate(v)
			}
		}
	}
	return model.TristateUnknown
}
