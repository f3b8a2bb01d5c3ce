package qualtrics

import "encoding/json"

// ExportFormat is the file format of a response export.
type ExportFormat string

// Export formats accepted by the v3 response-export endpoint.
const (
	ExportFormatCSV     ExportFormat = "csv"
	ExportFormatCSV2013 ExportFormat = "csv2013"
	ExportFormatJSON    ExportFormat = "json"
	ExportFormatXML     ExportFormat = "xml"
	ExportFormatSPSS    ExportFormat = "spss"
)

// ExportStatus is the state of an asynchronous response export.
// The only non-terminal state is ExportStatusInProgress; polling an export in
// a terminal state returns the same status again.
type ExportStatus string

// Export states reported by the progress endpoint.
const (
	ExportStatusInProgress ExportStatus = "in progress"
	ExportStatusComplete   ExportStatus = "complete"
	ExportStatusFailed     ExportStatus = "failed"
)

// IsTerminal reports whether the export has finished, successfully or not.
func (s ExportStatus) IsTerminal() bool {
	return s == ExportStatusComplete || s == ExportStatusFailed
}

// ExportProgress is the result of polling a response export.
type ExportProgress struct {
	// Status is the current export state.
	Status ExportStatus
	// PercentComplete is the server-reported completion percentage.
	PercentComplete float64
	// FileURL is the download location, set once Status is complete.
	FileURL string
}

// Contact is an individual entry within a panel or contact list.
type Contact struct {
	// RecipientID is the platform-assigned contact identifier.
	RecipientID string `json:"RecipientID,omitempty"`
	// Email is the contact's email address.
	Email string `json:"Email"`
	// FirstName is the contact's first name.
	FirstName string `json:"FirstName,omitempty"`
	// LastName is the contact's last name.
	LastName string `json:"LastName,omitempty"`
	// ExternalDataReference is the caller-assigned external reference ID.
	ExternalDataReference string `json:"ExternalDataReference,omitempty"`
	// Language is the contact's language code.
	Language string `json:"Language,omitempty"`
	// Unsubscribed is "1" if the contact opted out of mailings.
	Unsubscribed string `json:"Unsubscribed,omitempty"`
	// EmbeddedData holds custom key/value fields attached to the contact.
	EmbeddedData map[string]string `json:"EmbeddedData,omitempty"`
}

// Recipient is a contact together with the response history the
// getRecipient call returns.
type Recipient struct {
	Contact
	// ResponseHistory lists the recipient's survey responses.
	ResponseHistory []RecipientHistoryEntry `json:"RecipientResponseHistory,omitempty"`
	// EmailHistory lists the emails sent to the recipient.
	EmailHistory []RecipientHistoryEntry `json:"RecipientEmailHistory,omitempty"`
}

// RecipientHistoryEntry is one entry of a recipient's email or response history.
// The legacy API returns loosely shaped records, so fields stay raw.
type RecipientHistoryEntry map[string]json.RawMessage

// Survey is the metadata record the getSurveys call returns per survey.
type Survey struct {
	// ID is the survey identifier (SV_ prefixed).
	ID string `json:"SurveyID"`
	// Name is the survey's display name.
	Name string `json:"SurveyName"`
	// OwnerID identifies the owning account.
	OwnerID string `json:"SurveyOwnerID"`
	// Status is the survey's lifecycle state (e.g. Active, Inactive).
	Status string `json:"SurveyStatus"`
	// CreationDate is the server-formatted creation timestamp.
	CreationDate string `json:"SurveyCreationDate"`
}

// Panel is the metadata record the getPanels call returns per panel.
type Panel struct {
	// ID is the panel identifier (ML_ prefixed).
	ID string `json:"PanelID"`
	// Name is the panel's display name.
	Name string `json:"Name"`
	// LibraryID identifies the library holding the panel.
	LibraryID string `json:"LibraryID"`
	// Category is the optional panel category.
	Category string `json:"Category"`
	// NumberOfMembers is the member count, returned as a string by the API.
	NumberOfMembers string `json:"NumberOfMembers"`
}

// Distribution is a record of a survey being sent or linked to a panel.
type Distribution struct {
	// ID is the distribution identifier (EMD_ prefixed).
	ID string `json:"EmailDistributionID"`
	// SurveyID is the distributed survey.
	SurveyID string `json:"SurveyID"`
	// Description is the caller-supplied description.
	Description string `json:"Description"`
	// DistributionDate is the server-formatted send date.
	DistributionDate string `json:"DistributionDate"`
	// EmailsSent is the number of emails sent so far.
	EmailsSent json.Number `json:"EmailsSent"`
	// EmailsFailed is the number of emails that could not be delivered.
	EmailsFailed json.Number `json:"EmailsFailed"`
}

// Response is a single survey response in the legacy data format:
// a flat mapping of field names (StartDate, Finished, Q1, ...) to values.
type Response map[string]any

// GetPanelRequest holds the parameters of the getPanel call.
// Zero values mean "not sent".
type GetPanelRequest struct {
	// LibraryID is the library holding the panel. Required.
	LibraryID string
	// PanelID is the panel to export. Required.
	PanelID string
	// EmbeddedData is a comma-separated list of embedded data keys to export.
	EmbeddedData string
	// LastRecipientID makes the call return members after this recipient only.
	LastRecipientID string
	// NumberOfRecords caps the number of members returned.
	NumberOfRecords int
	// Unsubscribed, if true, returns only unsubscribed members.
	Unsubscribed bool
	// Subscribed, if true, returns only subscribed members.
	Subscribed bool
}

// ImportPanelRequest holds the parameters of the importPanel call.
type ImportPanelRequest struct {
	// LibraryID is the library to create the panel in. Required.
	LibraryID string
	// Name is the new panel's name. Required.
	Name string
	// CSV is the contents of the member file, comma separated, quoted with ".
	CSV string
	// ColumnHeaders indicates the first CSV row holds column names; when set,
	// the Email/FirstName/LastName/ExternalRef column positions are detected
	// from the header row automatically.
	ColumnHeaders bool
	// AllED, if true, imports every unrecognized column as embedded data.
	AllED bool
}

// AddRecipientRequest holds the parameters of the addRecipient call.
type AddRecipientRequest struct {
	// LibraryID is the library the panel belongs to. Required.
	LibraryID string
	// PanelID is the panel to add the recipient to. Required.
	PanelID string
	// FirstName is the recipient's first name.
	FirstName string
	// LastName is the recipient's last name.
	LastName string
	// Email is the recipient's email address. Required.
	Email string
	// ExternalDataRef is the caller-assigned external reference ID.
	ExternalDataRef string
	// Language is the recipient's language code.
	Language string
	// EmbeddedData holds custom key/value fields to attach.
	EmbeddedData map[string]string
}

// ImportSurveyRequest holds the parameters of the importSurvey call.
type ImportSurveyRequest struct {
	// ImportFormat is the format of the survey file: TXT, QSF, DOC or MSQ. Required.
	ImportFormat string
	// Name is the new survey's name. Required.
	Name string
	// Activate creates the survey in an active state when true.
	Activate bool
	// URL imports the survey file from a remote location instead of FileContents.
	URL string
	// FileContents is the survey definition posted as multipart/form-data.
	FileContents []byte
	// OwnerID optionally assigns the survey to another account.
	OwnerID string
}

// ResponseDataRequest holds the parameters of the getLegacyResponseData call.
// Zero values mean "not sent".
type ResponseDataRequest struct {
	// SurveyID is the survey to fetch responses for. Required.
	SurveyID string
	// LastResponseID makes the call return responses after this one only.
	LastResponseID string
	// Limit caps the number of responses returned.
	Limit int
	// ResponseID restricts the call to a single response.
	ResponseID string
	// ResponseSetID restricts the call to one response set.
	ResponseSetID string
	// SubgroupID restricts the call to one subgroup.
	SubgroupID string
	// StartDate only returns responses recorded after this date.
	StartDate string
	// EndDate only returns responses recorded before this date.
	EndDate string
	// Questions is a comma-separated list of question IDs to include.
	Questions string
	// Labels exports choice labels instead of numeric codes when true.
	Labels bool
	// ExportTags exports question tags when true.
	ExportTags bool
	// ExportQuestionIDs exports question IDs instead of labels when true.
	ExportQuestionIDs bool
	// LocalTime renders dates in the account's local timezone when true.
	LocalTime bool
	// UnansweredRecode recodes seen-but-unanswered questions with this value.
	UnansweredRecode string
	// PanelID restricts responses to one panel.
	PanelID string
	// ResponsesInProgress returns in-progress responses when true.
	ResponsesInProgress bool
	// LocationData includes respondent location data when true.
	LocationData bool
}

// ImportResponsesRequest holds the parameters of the importResponses call.
type ImportResponsesRequest struct {
	// SurveyID is the survey the responses attach to. Required.
	SurveyID string
	// ResponseSetID is the response set to place the responses in.
	ResponseSetID string
	// FileURL is a remote location of the CSV file; mutually exclusive with FileContents.
	FileURL string
	// Delimiter separates values; default is the comma.
	Delimiter string
	// Enclosure quotes values containing the delimiter; default is the double quote.
	Enclosure string
	// IgnoreValidation skips response validation during import when true.
	IgnoreValidation bool
	// DecimalFormat is the decimal separator, "," or ".".
	DecimalFormat string
	// FileContents is the CSV posted as multipart/form-data.
	FileContents []byte
}

// SendSurveyToIndividualRequest holds the parameters of the sendSurveyToIndividual call.
type SendSurveyToIndividualRequest struct {
	// SurveyID is the survey to send. Required.
	SurveyID string
	// SendDate is when the mailer should deliver the email. Required.
	SendDate string
	// FromEmail is the sender address.
	FromEmail string
	// FromName is the sender display name.
	FromName string
	// Subject is the email subject line.
	Subject string
	// MessageID is the library message to send.
	MessageID string
	// MessageLibraryID is the library holding the message.
	MessageLibraryID string
	// PanelID is the panel holding the recipient.
	PanelID string
	// PanelLibraryID is the library holding the panel.
	PanelLibraryID string
	// RecipientID is the individual to mail. Required.
	RecipientID string
}

// SendSurveyToPanelRequest holds the parameters of the sendSurveyToPanel call.
type SendSurveyToPanelRequest struct {
	// SurveyID is the survey to send. Required.
	SurveyID string
	// SendDate is when the mailer should deliver the emails. Required.
	SendDate string
	// SentFromAddress is the envelope sender address.
	SentFromAddress string
	// FromEmail is the sender address.
	FromEmail string
	// FromName is the sender display name.
	FromName string
	// Subject is the email subject line.
	Subject string
	// MessageID is the library message to send.
	MessageID string
	// MessageLibraryID is the library holding the message.
	MessageLibraryID string
	// PanelID is the panel to mail.
	PanelID string
	// PanelLibraryID is the library holding the panel.
	PanelLibraryID string
	// LinkType is Individual, Multiple, or Anonymous.
	LinkType string
}

// SendReminderRequest holds the parameters of the sendReminder call.
type SendReminderRequest struct {
	// ParentEmailDistributionID is the distribution being reminded. Required.
	ParentEmailDistributionID string
	// SendDate is when the mailer should deliver the reminder. Required.
	SendDate string
	// SentFromAddress is the envelope sender address.
	SentFromAddress string
	// FromEmail is the sender address.
	FromEmail string
	// FromName is the sender display name.
	FromName string
	// Subject is the email subject line.
	Subject string
	// MessageID is the library message to send.
	MessageID string
	// LibraryID is the library holding the message.
	LibraryID string
}

// CreateDistributionRequest holds the parameters of the createDistribution call.
// No emails are sent; links can be generated later against the distribution.
type CreateDistributionRequest struct {
	// SurveyID is the survey to distribute. Required.
	SurveyID string
	// PanelID is the target panel. Required.
	PanelID string
	// Description describes the distribution. Required.
	Description string
	// PanelLibraryID is the library holding the panel. Required.
	PanelLibraryID string
}

// GetDistributionsRequest holds the parameters of the getDistributions call.
// Zero values mean "not sent".
type GetDistributionsRequest struct {
	// SurveyID filters distributions by survey.
	SurveyID string
	// DistributionID fetches a single distribution.
	DistributionID string
}

// GetListContactsRequest holds the parameters of the getListContacts call
// (Contacts product). Zero values mean "not sent".
type GetListContactsRequest struct {
	// LibraryID is the library holding the list. Required.
	LibraryID string
	// ListID is the contact list to export. Required.
	ListID string
	// EmbeddedData is a comma-separated list of embedded data keys to export.
	EmbeddedData string
	// ContactHistory includes each contact's history when true.
	ContactHistory bool
	// LastRecipientID makes the call return contacts after this recipient only.
	LastRecipientID string
	// NumberOfRecords caps the number of contacts returned.
	NumberOfRecords int
	// Unsubscribed, if true, returns only unsubscribed contacts.
	Unsubscribed bool
	// Subscribed, if true, returns only subscribed contacts.
	Subscribed bool
}

// ImportContactsRequest holds the parameters of the importContacts call
// (Contacts product). The import runs asynchronously on the platform.
type ImportContactsRequest struct {
	// LibraryID is the library to import into. Required.
	LibraryID string
	// Name is the target list's name. Required.
	Name string
	// CSV is the contents of the contact file.
	CSV string
	// ColumnHeaders indicates the first CSV row holds column names.
	ColumnHeaders bool
}

// SubscribeRequest holds the parameters of the subscribe call, which registers
// a publication URL for platform events.
type SubscribeRequest struct {
	// Name labels the subscription. Required.
	Name string
	// PublicationURL receives event notifications. Required.
	PublicationURL string
	// Topics is a single event or a wildcard list (e.g. "surveyengine.*"). Required.
	Topics string
	// Encrypt requests encrypted notifications when true.
	Encrypt bool
	// SharedKey is the key used to sign notifications.
	SharedKey string
	// BrandID scopes the subscription to a brand.
	BrandID string
}

// CreateResponseExportRequest holds the parameters of the v3 response-export
// creation call.
type CreateResponseExportRequest struct {
	// SurveyID is the survey to export responses for. Required.
	SurveyID string
	// Format is the export file format. Required.
	Format ExportFormat
	// LastResponseID exports only responses received after this one.
	LastResponseID string
	// Limit caps the number of responses exported.
	Limit int
	// IncludedQuestionIDs exports only the listed questions (QID values).
	IncludedQuestionIDs []string
	// UseLabels exports question labels and choice text instead of IDs.
	UseLabels bool
}

// UniqueSurveyLinkRequest holds the inputs for generating a single-use survey
// link for one person.
type UniqueSurveyLinkRequest struct {
	// SurveyID is the survey the link opens. Required, SV_ prefixed.
	SurveyID string
	// LibraryID is the library holding the panel. Required.
	LibraryID string
	// PanelID is the panel the person is added to. Required.
	PanelID string
	// DistributionID is the distribution the link belongs to. Required, EMD_ prefixed.
	DistributionID string
	// FirstName is the person's first name.
	FirstName string
	// LastName is the person's last name.
	LastName string
	// Email is the person's email address. Required.
	Email string
	// ExternalDataRef is the caller-assigned external reference ID.
	ExternalDataRef string
	// Language is the person's language; defaults to English.
	Language string
	// EmbeddedData holds custom key/value fields to attach.
	EmbeddedData map[string]string
}
