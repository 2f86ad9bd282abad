package models

// Answer values for the yes/no questionnaire fields. An empty string means
// the question was not answered, which is never treated as a "no" bonus.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Consent mechanism values.
const (
	ConsentExplicit = "explicit"
	ConsentImplied  = "implied"
)

// Encryption coverage values.
const (
	EncryptionNone    = "none"
	EncryptionPartial = "partial"
	EncryptionAll     = "all"
)

// Data retention values.
const (
	RetentionIndefinite      = "indefinite"
	RetentionLimitedTime     = "limited_time"
	RetentionSpecificPurpose = "specific_purpose"
)

// Recognized user-rights labels, in the order they appear in the document.
const (
	RightErasure            = "right_to_erasure"
	RightPortability        = "data_portability"
	RightRestrictProcessing = "restrict_processing"
)

// QuestionnaireAnswers is the raw answer set submitted for a website.
// Absent fields are their zero values; the evaluator treats those as the
// least-favorable choice and the assembler falls back to the documented
// default wording.
type QuestionnaireAnswers struct {
	WebsiteName  string `bson:"website_name" json:"website_name"`
	WebsiteURL   string `bson:"website_url" json:"website_url"`
	CompanyName  string `bson:"company_name" json:"company_name"`
	ContactEmail string `bson:"contact_email" json:"contact_email"`

	// Feature checkboxes gating the topical document sections.
	CollectsCookies   bool `bson:"collects_cookies" json:"collects_cookies"`
	CollectsLocation  bool `bson:"collects_location" json:"collects_location"`
	UsesAnalytics     bool `bson:"uses_analytics" json:"uses_analytics"`
	SocialLogin       bool `bson:"social_login" json:"social_login"`
	HasNewsletter     bool `bson:"has_newsletter" json:"has_newsletter"`
	UserAccounts      bool `bson:"user_accounts" json:"user_accounts"`
	ProcessesPayments bool `bson:"processes_payments" json:"processes_payments"`
	SharesData        bool `bson:"shares_data" json:"shares_data"`

	// Yes/no questions. These are strings rather than booleans because the
	// scoring rules distinguish an explicit "no" from an unanswered question.
	ThirdPartySharing    string `bson:"third_party_sharing" json:"third_party_sharing"`
	CollectsChildrenData string `bson:"collects_children_data" json:"collects_children_data"`
	DataMinimization     string `bson:"data_minimization" json:"data_minimization"`
	BreachProcedure      string `bson:"breach_procedure" json:"breach_procedure"`
	OptOutOption         string `bson:"opt_out_option" json:"opt_out_option"`
	DataSale             string `bson:"data_sale" json:"data_sale"`
	DoNotSell            string `bson:"do_not_sell" json:"do_not_sell"`

	// Enumerations.
	ConsentMechanism string `bson:"consent_mechanism" json:"consent_mechanism"`
	Encryption       string `bson:"encryption" json:"encryption"`
	DataRetention    string `bson:"data_retention" json:"data_retention"`

	// Selected labels.
	DataCollected []string `bson:"data_collected" json:"data_collected"`
	UserRights    []string `bson:"user_rights" json:"user_rights"`
}

// SharesWithThirdParties reports whether any sharing answer is affirmative.
func (a QuestionnaireAnswers) SharesWithThirdParties() bool {
	return a.SharesData || a.ThirdPartySharing == AnswerYes
}

// HasRight reports whether the given user-rights label was selected.
func (a QuestionnaireAnswers) HasRight(right string) bool {
	for _, r := range a.UserRights {
		if r == right {
			return true
		}
	}
	return false
}
