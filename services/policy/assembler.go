package policy

import (
	"fmt"
	"strings"
	"time"

	"policygen/models"
)

// MissingFieldError reports which required scalar field the answer set
// lacks. Only the always-emitted interpolated fields are required; every
// other field has a documented default.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// requiredFields lists the scalars interpolated into always-emitted
// sections, checked in a stable order so the first missing one is reported
// deterministically.
var requiredFields = []struct {
	name  string
	value func(models.QuestionnaireAnswers) string
}{
	{"website_name", func(a models.QuestionnaireAnswers) string { return a.WebsiteName }},
	{"website_url", func(a models.QuestionnaireAnswers) string { return a.WebsiteURL }},
	{"company_name", func(a models.QuestionnaireAnswers) string { return a.CompanyName }},
	{"contact_email", func(a models.QuestionnaireAnswers) string { return a.ContactEmail }},
}

// Assemble builds the policy document from the answers and the evaluator's
// verdict. Sections are concatenated in a fixed order regardless of which
// conditional sections are present, so identical answer sets always produce
// byte-identical documents. The generation timestamp is injected rather
// than read from the clock; given the same answers, result and timestamp
// the output is deterministic.
func Assemble(answers models.QuestionnaireAnswers, result models.ComplianceResult, generatedAt time.Time) (string, error) {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(answers)) == "" {
			return "", MissingFieldError{Field: f.name}
		}
	}

	var b strings.Builder

	// 1. Header and introduction.
	fmt.Fprintf(&b, sectionIntro,
		answers.WebsiteName,
		generatedAt.Format("January 2, 2006"),
		answers.WebsiteName,
		answers.CompanyName,
		answers.WebsiteURL,
	)

	// 2. Data-collected enumeration, or the no-collection fallback.
	if len(answers.DataCollected) == 0 {
		b.WriteString(sectionNoDataCollected)
	} else {
		b.WriteString(sectionDataCollectedHeader)
		for _, label := range answers.DataCollected {
			fmt.Fprintf(&b, "- %s\n", label)
		}
		b.WriteString("\n")
	}

	// 3. Conditional topical sections, in fixed order.
	if answers.CollectsCookies {
		b.WriteString(sectionCookies)
	}
	if answers.CollectsLocation {
		b.WriteString(sectionLocation)
	}
	if answers.UsesAnalytics {
		b.WriteString(sectionAnalytics)
	}
	if answers.SocialLogin {
		b.WriteString(sectionSocialLogin)
	}
	if answers.HasNewsletter {
		b.WriteString(sectionNewsletter)
	}
	if answers.UserAccounts {
		b.WriteString(sectionAccounts)
	}
	if answers.ProcessesPayments {
		b.WriteString(sectionPayments)
	}

	// 4. Sharing.
	if answers.SharesWithThirdParties() {
		b.WriteString(sectionSharingYes)
	} else {
		b.WriteString(sectionSharingNo)
	}

	// 5. User rights: baseline access and correction, then selected rights
	// in the fixed erasure -> portability -> restrict-processing order.
	b.WriteString(sectionRightsHeader)
	if answers.HasRight(models.RightErasure) {
		b.WriteString(rightLineErasure)
	}
	if answers.HasRight(models.RightPortability) {
		b.WriteString(rightLinePortability)
	}
	if answers.HasRight(models.RightRestrictProcessing) {
		b.WriteString(rightLineRestrict)
	}
	b.WriteString("\n")

	// 6. Data security, keyed by encryption coverage.
	switch answers.Encryption {
	case models.EncryptionAll:
		b.WriteString(sectionSecurityAll)
	case models.EncryptionPartial:
		b.WriteString(sectionSecurityPartial)
	default:
		b.WriteString(sectionSecurityOther)
	}

	// 7. Retention, keyed by the retention enum.
	switch answers.DataRetention {
	case models.RetentionSpecificPurpose:
		b.WriteString(sectionRetentionSpecific)
	case models.RetentionLimitedTime:
		b.WriteString(sectionRetentionLimited)
	default:
		b.WriteString(sectionRetentionIndefinite)
	}

	// 8. Children's privacy.
	if answers.CollectsChildrenData == models.AnswerYes {
		b.WriteString(sectionChildrenYes)
	} else {
		b.WriteString(sectionChildrenNo)
	}

	// 9. Regulatory compliance, driven by the evaluator's verdict only.
	b.WriteString(sectionComplianceHeader)
	if result.GDPRCompliant {
		b.WriteString(complianceGDPRYes)
	} else {
		b.WriteString(complianceGDPRNo)
	}
	if result.CCPACompliant {
		b.WriteString(complianceCCPAYes)
	} else {
		b.WriteString(complianceCCPANo)
	}
	if result.LGPDCompliant {
		b.WriteString(complianceLGPDYes)
	} else {
		b.WriteString(complianceLGPDNo)
	}

	// 10. Contact.
	fmt.Fprintf(&b, sectionContact,
		answers.ContactEmail,
		answers.WebsiteURL,
		answers.CompanyName,
	)

	return b.String(), nil
}
