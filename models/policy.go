package models

import "time"

// ComplianceResult is the evaluator's verdict for a single answer set.
// It is derived data: it is embedded in the policy it annotates and never
// stored on its own.
type ComplianceResult struct {
	GDPRCompliant      bool `bson:"gdpr_compliant" json:"gdpr_compliant"`
	CCPACompliant      bool `bson:"ccpa_compliant" json:"ccpa_compliant"`
	LGPDCompliant      bool `bson:"lgpd_compliant" json:"lgpd_compliant"`
	VulnerabilityScore int  `bson:"vulnerability_score" json:"vulnerability_score"`
}

// Policy is the persisted generated document plus its provenance fields.
// The submitted answers are stored alongside the document so the compliance
// flags and score can be recomputed from the record alone.
type Policy struct {
	ID                 string               `bson:"id" json:"id"`
	OwnerID            string               `bson:"owner_id" json:"owner_id"`
	WebsiteName        string               `bson:"website_name" json:"website_name"`
	WebsiteURL         string               `bson:"website_url" json:"website_url"`
	CompanyName        string               `bson:"company_name" json:"company_name"`
	ContactEmail       string               `bson:"contact_email" json:"contact_email"`
	DataCollected      []string             `bson:"data_collected" json:"data_collected"`
	ThirdPartySharing  bool                 `bson:"third_party_sharing" json:"third_party_sharing"`
	GDPRCompliant      bool                 `bson:"gdpr_compliant" json:"gdpr_compliant"`
	CCPACompliant      bool                 `bson:"ccpa_compliant" json:"ccpa_compliant"`
	LGPDCompliant      bool                 `bson:"lgpd_compliant" json:"lgpd_compliant"`
	VulnerabilityScore int                  `bson:"vulnerability_score" json:"vulnerability_score"`
	DocumentText       string               `bson:"document_text" json:"document_text"`
	Answers            QuestionnaireAnswers `bson:"answers" json:"answers"`
	CreatedAt          time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time            `bson:"updated_at" json:"updated_at"`
}

// Compliance returns the stored verdict fields as a ComplianceResult.
func (p Policy) Compliance() ComplianceResult {
	return ComplianceResult{
		GDPRCompliant:      p.GDPRCompliant,
		CCPACompliant:      p.CCPACompliant,
		LGPDCompliant:      p.LGPDCompliant,
		VulnerabilityScore: p.VulnerabilityScore,
	}
}
