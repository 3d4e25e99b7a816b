package call_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"callwatch.app/callwatch/internal/call"
	"callwatch.app/callwatch/internal/model"
)

func validIncidentFields() model.AnalysisFields {
	return model.AnalysisFields{
		SecurityIncident: model.TristateTrue,
		CallerName:       "Jane Doe",
		CompanyName:      "Acme",
		PhoneNumber:      "5551234567",
	}
}

var _ = Describe("Validate", func() {
	Describe("Incident classification", func() {
		It("passes with flag, caller, company, and phone", func() {
			result := call.Validate(model.ClassificationIncident, validIncidentFields())
			Expect(result.Valid).To(BeTrue())
			Expect(result.MissingFields).To(BeEmpty())
		})

		It("reports exactly the missing phone number", func() {
			fields := validIncidentFields()
			fields.PhoneNumber = ""
			result := call.Validate(model.ClassificationIncident, fields)
			Expect(result.Valid).To(BeFalse())
			Expect(result.MissingFields).To(HaveLen(1))
			Expect(result.MissingFields[0]).To(ContainSubstring("phone number"))
		})

		It("requires the flag to be explicitly true", func() {
			fields := validIncidentFields()
			fields.SecurityIncident = model.TristateUnknown
			result := call.Validate(model.ClassificationIncident, fields)
			Expect(result.Valid).To(BeFalse())
			Expect(result.MissingFields[0]).To(ContainSubstring("security incident flag"))
		})

		It("treats placeholder values as absent, case-insensitively", func() {
			fields := validIncidentFields()
			fields.CallerName = "Not Provided"
			fields.CompanyName = "  not provided  "
			result := call.Validate(model.ClassificationIncident, fields)
			Expect(result.Valid).To(BeFalse())
			Expect(result.MissingFields).To(HaveLen(2))
		})

		It("treats whitespace-only values as absent", func() {
			fields := validIncidentFields()
			fields.CompanyName = "   "
			result := call.Validate(model.ClassificationIncident, fields)
			Expect(result.Valid).To(BeFalse())
			Expect(result.MissingFields).To(ConsistOf(ContainSubstring("company name")))
		})

		It("reports missing fields in fixed order", func() {
			result := call.Validate(model.ClassificationIncident, model.AnalysisFields{})
			Expect(result.MissingFields).To(HaveLen(4))
			Expect(result.MissingFields[0]).To(ContainSubstring("security incident flag"))
			Expect(result.MissingFields[1]).To(ContainSubstring("caller name"))
			Expect(result.MissingFields[2]).To(ContainSubstring("company name"))
			Expect(result.MissingFields[3]).To(ContainSubstring("phone number"))
		})
	})

	Describe("Inquiry classification", func() {
		It("passes with caller name and email only, company omitted", func() {
			fields := model.AnalysisFields{
				CallerName: "Bob",
				Email:      "bob@x.com",
			}
			result := call.Validate(model.ClassificationInquiry, fields)
			Expect(result.Valid).To(BeTrue())
		})

		It("passes with caller name and phone only", func() {
			fields := model.AnalysisFields{
				CallerName:  "Bob",
				PhoneNumber: "5550001111",
			}
			result := call.Validate(model.ClassificationInquiry, fields)
			Expect(result.Valid).To(BeTrue())
		})

		It("fails when both phone and email are missing", func() {
			fields := model.AnalysisFields{CallerName: "Bob"}
			result := call.Validate(model.ClassificationInquiry, fields)
			Expect(result.Valid).To(BeFalse())
			Expect(result.MissingFields).To(ConsistOf(ContainSubstring("contact info")))
		})

		It("accepts an explicitly false flag", func() {
			fields := model.AnalysisFields{
				CallerName:       "Bob",
				Email:            "bob@x.com",
				SecurityIncident: model.TristateFalse,
			}
			result := call.Validate(model.ClassificationInquiry, fields)
			Expect(result.Valid).To(BeTrue())
		})

		It("rejects a true flag on the inquiry path", func() {
			fields := model.AnalysisFields{
				CallerName:       "Bob",
				Email:            "bob@x.com",
				SecurityIncident: model.TristateTrue,
			}
			result := call.Validate(model.ClassificationInquiry, fields)
			Expect(result.Valid).To(BeFalse())
		})
	})

	Describe("Unclassified classification", func() {
		It("applies the stricter incident policy", func() {
			fields := model.AnalysisFields{
				CallerName:  "Bob",
				Email:       "bob@x.com",
				PhoneNumber: "5550001111",
			}
			result := call.Validate(model.ClassificationUnclassified, fields)
			Expect(result.Valid).To(BeFalse())
			Expect(result.MissingFields).To(ContainElement(ContainSubstring("security incident flag")))
			Expect(result.MissingFields).To(ContainElement(ContainSubstring("company name")))
		})
	})

	It("is idempotent", func() {
		fields := validIncidentFields()
		fields.PhoneNumber = "not provided"
		first := call.Validate(model.ClassificationIncident, fields)
		second := call.Validate(model.ClassificationIncident, fields)
		Expect(second).To(Equal(first))
		Expect(first.Valid).To(Equal(len(first.MissingFields) == 0))
	})
})
