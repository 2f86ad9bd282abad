package policy

import "policygen/models"

// Evaluate derives the regulatory verdicts and the vulnerability score from
// a raw answer set. It is a total function: unanswered questions count as
// the least-favorable choice, so it never fails.
//
// The rule sets are documented product heuristics, not legal analysis. Do
// not extend or tighten them without a product decision; the output drives
// user-facing compliance claims.
func Evaluate(answers models.QuestionnaireAnswers) models.ComplianceResult {
	return models.ComplianceResult{
		GDPRCompliant:      evaluateGDPR(answers),
		CCPACompliant:      evaluateCCPA(answers),
		LGPDCompliant:      evaluateLGPD(answers),
		VulnerabilityScore: vulnerabilityScore(answers),
	}
}

// evaluateGDPR requires explicit consent, a bounded retention policy and the
// right to erasure. An unanswered retention question fails the check.
func evaluateGDPR(a models.QuestionnaireAnswers) bool {
	if a.ConsentMechanism != models.ConsentExplicit {
		return false
	}
	if !boundedRetention(a.DataRetention) {
		return false
	}
	return a.HasRight(models.RightErasure)
}

// evaluateCCPA requires an opt-out option, and a do-not-sell mechanism
// whenever data is sold.
func evaluateCCPA(a models.QuestionnaireAnswers) bool {
	if a.OptOutOption != models.AnswerYes {
		return false
	}
	if a.DataSale == models.AnswerYes && a.DoNotSell != models.AnswerYes {
		return false
	}
	return true
}

// evaluateLGPD mirrors the GDPR conditions minus the consent-mechanism
// check; LGPD recognizes more legal bases for processing than consent.
func evaluateLGPD(a models.QuestionnaireAnswers) bool {
	if !boundedRetention(a.DataRetention) {
		return false
	}
	return a.HasRight(models.RightErasure)
}

func boundedRetention(retention string) bool {
	return retention == models.RetentionLimitedTime || retention == models.RetentionSpecificPurpose
}

// vulnerabilityScore starts from a neutral baseline of 50 and applies
// additive adjustments for good-practice signals. The sum is clamped to
// [0,100] once, after all adjustments, so an intermediate dip below zero or
// spike above one hundred is not floored mid-computation.
//
// Higher means a stronger practice signal. Bonuses that reward a "no"
// require an explicit "no"; an unanswered question earns nothing.
func vulnerabilityScore(a models.QuestionnaireAnswers) int {
	score := 50

	if a.DataMinimization == models.AnswerYes {
		score += 10
	}
	switch a.Encryption {
	case models.EncryptionAll:
		score += 15
	case models.EncryptionPartial:
		score += 7
	}
	switch a.DataRetention {
	case models.RetentionSpecificPurpose:
		score += 10
	case models.RetentionLimitedTime:
		score += 5
	}
	if a.ThirdPartySharing == models.AnswerNo {
		score += 15
	}
	if a.BreachProcedure == models.AnswerYes {
		score += 10
	}
	if a.CollectsChildrenData == models.AnswerNo {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
