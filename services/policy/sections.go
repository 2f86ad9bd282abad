package policy

// Static wording for every document section. The business logic lives in
// the assembler (which sections are emitted and in what order); the prose
// below is fixed boilerplate interpolated with the questionnaire scalars.

const sectionIntro = `# Privacy Policy for %s

## Last Updated: %s

### Introduction

Welcome to %s. This Privacy Policy explains how %s ("we", "us", or "our") collects, uses, and discloses your information when you use our website %s (the "Service").

We respect your privacy and are committed to protecting your personal data. Please read this Privacy Policy carefully to understand how we handle your information.

### Information We Collect

`

const sectionNoDataCollected = `We do not collect personally identifiable information unless you voluntarily provide it to us.

`

const sectionDataCollectedHeader = `We may collect the following types of information that you provide directly to us:
`

const sectionCookies = `### Cookies and Tracking Technologies

We use cookies and similar tracking technologies to track activity on our Service and hold certain information. Cookies are files with a small amount of data which may include an anonymous unique identifier.

You can instruct your browser to refuse all cookies or to indicate when a cookie is being sent. However, if you do not accept cookies, you may not be able to use some portions of our Service.

`

const sectionLocation = `### Location Data

We may collect and process information about your approximate or precise location when you use our Service. Location data is used to provide location-dependent features and may be disabled at any time through your device settings.

`

const sectionAnalytics = `### Analytics

We may use third-party Service Providers to monitor and analyze the use of our Service, such as:
- Google Analytics
- Facebook Pixel
- Other analytics services

`

const sectionSocialLogin = `### Social Login

Our Service allows you to sign in using third-party social media accounts. When you do so, we may receive certain profile information from the social media provider, such as your name, email address, and profile picture, in accordance with the provider's own privacy policy.

`

const sectionNewsletter = `### Newsletter

If you subscribe to our newsletter, we use your email address to send you periodic updates and promotional material. You can unsubscribe at any time by following the link included in every message.

`

const sectionAccounts = `### User Accounts

When you create an account with us, you must provide information that is accurate and current. You are responsible for safeguarding your account credentials and for any activity under your account.

`

const sectionPayments = `### Payments

We may process payments through third-party payment processors. We do not store your full payment card details; payment information is handled by the processor in accordance with its own privacy policy and applicable payment-industry standards.

`

const sectionSharingYes = `### Sharing Your Information

We may share your personal information with:
- Service providers who perform services on our behalf
- Business partners with whom we jointly offer products or services
- As required by law or to comply with legal process
- To protect and defend our rights and property

`

const sectionSharingNo = `### Sharing Your Information

We do not share, sell, or rent your personal information to third parties, except as required by law or to comply with legal process.

`

const sectionRightsHeader = `### Your Rights

You have the following rights regarding your personal information:
- Right to access your personal data
- Right to correction if your data is inaccurate or incomplete
`

const (
	rightLineErasure     = "- Right to erasure (right to be forgotten)\n"
	rightLinePortability = "- Right to data portability\n"
	rightLineRestrict    = "- Right to restrict processing\n"
)

const sectionSecurityAll = `### Data Security

All data we collect is encrypted in transit and at rest using industry-standard encryption. While no method of transmission or storage is completely secure, we apply strong technical measures to protect your personal information.

`

const sectionSecurityPartial = `### Data Security

Sensitive data we collect is encrypted using industry-standard encryption. We strive to use commercially acceptable means to protect your personal information, but no method of transmission or storage is completely secure.

`

const sectionSecurityOther = `### Data Security

The security of your data is important to us. We strive to use commercially acceptable means to protect your personal information, but remember that no method of transmission over the Internet or method of electronic storage is 100% secure.

`

const sectionRetentionSpecific = `### Data Retention

We retain your personal information only for as long as necessary to fulfill the specific purposes for which it was collected. Once those purposes are met, your data is deleted or anonymized.

`

const sectionRetentionLimited = `### Data Retention

We retain your personal information for a limited period of time, after which it is deleted or anonymized unless a longer retention period is required by law.

`

const sectionRetentionIndefinite = `### Data Retention

We retain your personal information for as long as your account remains active or as needed to provide you the Service, comply with our legal obligations, resolve disputes, and enforce our agreements.

`

const sectionChildrenYes = `### Children's Privacy

Our Service may collect information from children. We collect personal information from children under 13 only with verifiable parental consent. Parents or guardians may review, request deletion of, or refuse further collection of their child's information by contacting us.

`

const sectionChildrenNo = `### Children's Privacy

Our Service is not directed at children under the age of 13, and we do not knowingly collect personal information from children. If you believe a child has provided us with personal information, please contact us and we will delete it.

`

const sectionComplianceHeader = `### Regulatory Compliance

`

const (
	complianceGDPRYes = "This website's practices are designed to comply with the General Data Protection Regulation (GDPR).\n"
	complianceGDPRNo  = "This website's current practices do not meet the requirements of the General Data Protection Regulation (GDPR).\n"
	complianceCCPAYes = "This website's practices are designed to comply with the California Consumer Privacy Act (CCPA).\n"
	complianceCCPANo  = "This website's current practices do not meet the requirements of the California Consumer Privacy Act (CCPA).\n"
	complianceLGPDYes = "This website's practices are designed to comply with the Lei Geral de Proteção de Dados (LGPD).\n"
	complianceLGPDNo  = "This website's current practices do not meet the requirements of the Lei Geral de Proteção de Dados (LGPD).\n"
)

const sectionContact = `
### Contact Us

If you have any questions about this Privacy Policy, please contact us at:
- Email: %s
- Website: %s
- Company: %s
`
