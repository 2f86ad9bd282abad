package policy

import (
	"testing"

	"policygen/models"

	"github.com/stretchr/testify/assert"
)

func acmeAnswers() models.QuestionnaireAnswers {
	return models.QuestionnaireAnswers{
		WebsiteName:      "Acme",
		WebsiteURL:       "https://acme.io",
		CompanyName:      "Acme Inc",
		ContactEmail:     "legal@acme.io",
		CollectsCookies:  true,
		ConsentMechanism: models.ConsentExplicit,
		DataRetention:    models.RetentionLimitedTime,
		UserRights:       []string{models.RightErasure},
	}
}

func TestEvaluateGDPRCompliant(t *testing.T) {
	result := Evaluate(acmeAnswers())

	assert.True(t, result.GDPRCompliant)
	assert.Equal(t, 55, result.VulnerabilityScore)
}

func TestEvaluateGDPRRequiresAllConditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.QuestionnaireAnswers)
	}{
		{"implied consent", func(a *models.QuestionnaireAnswers) { a.ConsentMechanism = models.ConsentImplied }},
		{"missing consent", func(a *models.QuestionnaireAnswers) { a.ConsentMechanism = "" }},
		{"indefinite retention", func(a *models.QuestionnaireAnswers) { a.DataRetention = models.RetentionIndefinite }},
		{"missing retention", func(a *models.QuestionnaireAnswers) { a.DataRetention = "" }},
		{"no erasure right", func(a *models.QuestionnaireAnswers) { a.UserRights = []string{models.RightPortability} }},
		{"empty rights", func(a *models.QuestionnaireAnswers) { a.UserRights = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := acmeAnswers()
			tt.mutate(&answers)
			assert.False(t, Evaluate(answers).GDPRCompliant)
		})
	}
}

func TestEvaluateCCPA(t *testing.T) {
	tests := []struct {
		name    string
		optOut  string
		sale    string
		dns     string
		expects bool
	}{
		{"opt-out offered, no sale", models.AnswerYes, "", "", true},
		{"opt-out offered, sale with do-not-sell", models.AnswerYes, models.AnswerYes, models.AnswerYes, true},
		{"opt-out offered, sale without do-not-sell", models.AnswerYes, models.AnswerYes, "", false},
		{"no opt-out", "", "", "", false},
		{"opt-out answered no", models.AnswerNo, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := models.QuestionnaireAnswers{
				OptOutOption: tt.optOut,
				DataSale:     tt.sale,
				DoNotSell:    tt.dns,
			}
			assert.Equal(t, tt.expects, Evaluate(answers).CCPACompliant)
		})
	}
}

func TestEvaluateLGPDIgnoresConsentMechanism(t *testing.T) {
	answers := acmeAnswers()
	answers.ConsentMechanism = ""

	result := Evaluate(answers)
	assert.False(t, result.GDPRCompliant)
	assert.True(t, result.LGPDCompliant)
}

func TestVulnerabilityScoreBaseline(t *testing.T) {
	// All defaults: no bonus applies, including the "no"-rewarding ones.
	result := Evaluate(models.QuestionnaireAnswers{})
	assert.Equal(t, 50, result.VulnerabilityScore)
}

func TestVulnerabilityScoreClampsOnceAtEnd(t *testing.T) {
	answers := models.QuestionnaireAnswers{
		DataMinimization:     models.AnswerYes,     // +10
		Encryption:           models.EncryptionAll, // +15
		DataRetention:        models.RetentionSpecificPurpose,
		ThirdPartySharing:    models.AnswerNo,  // +15
		BreachProcedure:      models.AnswerYes, // +10
		CollectsChildrenData: models.AnswerNo,  // +10
	}
	// Raw sum is 50 + 70 = 120; the clamp caps it at exactly 100.
	assert.Equal(t, 100, Evaluate(answers).VulnerabilityScore)
}

func TestVulnerabilityScorePartialSignals(t *testing.T) {
	answers := models.QuestionnaireAnswers{
		Encryption:    models.EncryptionPartial, // +7
		DataRetention: models.RetentionLimitedTime,
	}
	assert.Equal(t, 62, Evaluate(answers).VulnerabilityScore)
}

func TestVulnerabilityScoreIgnoresUnansweredNoQuestions(t *testing.T) {
	// third_party_sharing and collects_children_data earn +15/+10 only on
	// an explicit "no"; leaving them blank must not award anything.
	blank := Evaluate(models.QuestionnaireAnswers{})
	explicit := Evaluate(models.QuestionnaireAnswers{
		ThirdPartySharing:    models.AnswerNo,
		CollectsChildrenData: models.AnswerNo,
	})

	assert.Equal(t, 50, blank.VulnerabilityScore)
	assert.Equal(t, 75, explicit.VulnerabilityScore)
}

func TestEvaluateIsPure(t *testing.T) {
	answers := acmeAnswers()
	assert.Equal(t, Evaluate(answers), Evaluate(answers))
}
