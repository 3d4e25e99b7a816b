package model

// Classification is derived from AnalysisFields, never stored.
type Classification string

const (
	ClassificationIncident     Classification = "incident"
	ClassificationInquiry      Classification = "inquiry"
	ClassificationUnclassified Classification = "unclassified"
)

type ValidationResult struct {
	Valid         bool
	MissingFields []string
}
