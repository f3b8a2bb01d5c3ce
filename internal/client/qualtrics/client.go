package qualtrics

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/baguage/qualtrics-go/internal/config"
	http_transport "github.com/baguage/qualtrics-go/internal/transport/http"
	"github.com/baguage/qualtrics-go/internal/utils"
)

// Client defines the interface for interacting with the Qualtrics API.
// Each method maps to exactly one remote API action and issues exactly one
// outbound HTTP call; there are no retries and no caching.
type Client interface {
	// CreatePanel creates a new panel in the given library and returns its ID.
	CreatePanel(ctx context.Context, libraryID, name string) (string, error)
	// DeletePanel deletes the panel.
	DeletePanel(ctx context.Context, libraryID, panelID string) error
	// GetPanels returns all panels contained in the library.
	GetPanels(ctx context.Context, libraryID string) ([]Panel, error)
	// GetPanel returns the members of the panel. A panel with zero
	// participants yields an empty slice, not an error.
	GetPanel(ctx context.Context, req *GetPanelRequest) ([]Contact, error)
	// GetPanelMemberCount returns the number of panel members.
	GetPanelMemberCount(ctx context.Context, libraryID, panelID string) (int64, error)
	// ImportPanel imports a CSV file as a new panel and returns the panel ID.
	ImportPanel(ctx context.Context, req *ImportPanelRequest) (string, error)
	// ImportJSONPanel builds a CSV from the contacts and imports it as a new
	// panel. The generated CSV is deterministic for the same input.
	ImportJSONPanel(ctx context.Context, libraryID, name string, contacts []Contact) (string, error)

	// AddRecipient adds a new recipient to a panel and returns the recipient ID.
	AddRecipient(ctx context.Context, req *AddRecipientRequest) (string, error)
	// GetRecipient returns a representation of the recipient and their history.
	GetRecipient(ctx context.Context, libraryID, recipientID string) (*Recipient, error)
	// RemoveRecipient removes the recipient from the panel.
	RemoveRecipient(ctx context.Context, libraryID, panelID, recipientID string) error

	// GetSurveys returns the metadata of all surveys owned by the user.
	GetSurveys(ctx context.Context) ([]Survey, error)
	// GetSurvey returns the survey definition as raw XML. When the token is
	// invalid it returns ok=false and no error; this legacy behavior is relied
	// upon by existing callers.
	GetSurvey(ctx context.Context, surveyID string) (definition string, ok bool, err error)
	// ImportSurvey imports a survey definition and returns the new survey ID.
	// If the file contents are not valid, the platform still creates an empty
	// survey and reports an error; handling that is up to the caller.
	ImportSurvey(ctx context.Context, req *ImportSurveyRequest) (string, error)
	// DeleteSurvey deletes the survey.
	DeleteSurvey(ctx context.Context, surveyID string) error
	// ActivateSurvey activates the survey.
	ActivateSurvey(ctx context.Context, surveyID string) error
	// DeactivateSurvey deactivates the survey.
	DeactivateSurvey(ctx context.Context, surveyID string) error

	// GetLegacyResponseData returns response data in the legacy format,
	// keyed by response ID.
	GetLegacyResponseData(ctx context.Context, req *ResponseDataRequest) (map[string]Response, error)
	// GetResponse returns a single response. A deleted response yields an
	// APIError with ErrorCodeResponseDeleted.
	GetResponse(ctx context.Context, surveyID, responseID string) (Response, error)
	// ImportResponses imports responses from a CSV file or URL into the survey.
	ImportResponses(ctx context.Context, req *ImportResponsesRequest) error
	// ImportResponseRecords renders the records as CSV and imports them.
	ImportResponseRecords(ctx context.Context, surveyID string, records []Response) error
	// UpdateResponseEmbeddedData updates the embedded data of a response.
	UpdateResponseEmbeddedData(ctx context.Context, surveyID, responseID string, embeddedData map[string]string) error
	// GetSingleResponseHTML returns the response rendered as HTML by the platform.
	GetSingleResponseHTML(ctx context.Context, surveyID, responseID string) (string, error)

	// SendSurveyToIndividual queues a survey email to a single recipient and
	// returns the distribution ID. Delivery is asynchronous on the platform.
	SendSurveyToIndividual(ctx context.Context, req *SendSurveyToIndividualRequest) (string, error)
	// SendSurveyToPanel queues a survey mailing to a panel and returns the
	// distribution ID.
	SendSurveyToPanel(ctx context.Context, req *SendSurveyToPanelRequest) (string, error)
	// SendReminder queues a reminder for an earlier distribution and returns
	// the new distribution ID.
	SendReminder(ctx context.Context, req *SendReminderRequest) (string, error)
	// CreateDistribution creates a distribution without sending emails and
	// returns the distribution ID.
	CreateDistribution(ctx context.Context, req *CreateDistributionRequest) (string, error)
	// GetDistributions returns distribution records, including delivery counts.
	GetDistributions(ctx context.Context, req *GetDistributionsRequest) ([]Distribution, error)

	// GetListContacts returns the members of a contact list (Contacts product).
	GetListContacts(ctx context.Context, req *GetListContactsRequest) ([]Contact, error)
	// ImportContacts asynchronously imports a CSV into a contact list and
	// returns the list ID.
	ImportContacts(ctx context.Context, req *ImportContactsRequest) (string, error)
	// RemoveContact removes a contact from the list (Contacts product).
	RemoveContact(ctx context.Context, libraryID, listID, recipientID string) error

	// GetAllSubscriptions returns the status of all event subscriptions.
	GetAllSubscriptions(ctx context.Context) (json.RawMessage, error)
	// Subscribe registers a publication URL for platform events.
	Subscribe(ctx context.Context, req *SubscribeRequest) (json.RawMessage, error)

	// CreateResponseExport starts an asynchronous response export (v3 API)
	// and returns the export ID used by the progress and file calls.
	CreateResponseExport(ctx context.Context, req *CreateResponseExportRequest) (string, error)
	// GetResponseExportProgress polls the export once and returns its state.
	// Polling is idempotent; the client never loops internally.
	GetResponseExportProgress(ctx context.Context, exportID string) (*ExportProgress, error)
	// GetResponseExportFile downloads the finished export and returns the
	// contents of the file inside the returned zip archive. The argument is
	// the export ID or the file URL reported by the progress call.
	GetResponseExportFile(ctx context.Context, exportIDOrURL string) ([]byte, error)
	// DownloadResponseExportFile downloads the finished export archive to the
	// local file system as-is (still zipped).
	DownloadResponseExportFile(ctx context.Context, exportIDOrURL, filename string) error
}

// ClientImpl implements the Client interface against a live Qualtrics account.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// NewClient creates and returns a new instance of ClientImpl.
// The credentials and endpoints are taken from the validated configuration
// and are immutable for the lifetime of the client.
func NewClient(cfg *config.Config) (Client, error) {
	if err := validateEndpoints(cfg); err != nil {
		return nil, err
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: timeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		httpClient: httpClient,
	}, nil
}
