package qualtrics

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baguage/qualtrics-go/internal/config"
)

const (
	testUser     = "test_user"
	testToken    = "test_token"
	invalidToken = "invalid_token"

	testLibraryID = "GR_8wL9dI2TGRWvy1T"
	testPanelID   = "ML_5yIfnZuEHef4ZBG"
	testSurveyID  = "SV_8pqqcl4sy2316ZM"

	completeExportID   = "ES_complete1234567"
	inProgressExportID = "ES_inprogress12345"
	failedExportID     = "ES_failed123456789"

	exportFileContents = "ResponseID,Finished\nR_1,1\n"
)

// newTestConfig points every endpoint at the mock server.
func newTestConfig(serverURL string) *config.Config {
	return &config.Config{
		User:            testUser,
		Token:           testToken,
		APIVersion:      config.DefaultAPIVersion,
		ControlPanelURL: serverURL + "/WRAPI/ControlPanel/api.php",
		ContactsURL:     serverURL + "/WRAPI/Contacts/api.php",
		V3BaseURL:       serverURL + "/API/v3",
	}
}

func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()

	client, err := NewClient(newTestConfig(serverURL))
	require.NoError(t, err)

	return client
}

// mockHandler dispatches requests the way the live platform routes them:
// legacy calls by the Request query parameter, v3 calls by path.
func mockHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/API/v3/") {
		handleV3Request(w, r)
		return
	}

	query := r.URL.Query()

	if query.Get("Token") == invalidToken {
		if query.Get("Request") == "getSurvey" {
			w.WriteHeader(http.StatusUnauthorized)
		} else {
			w.WriteHeader(http.StatusForbidden)
		}

		return
	}

	switch query.Get("Request") {
	case "createPanel":
		writeLegacySuccess(w, map[string]any{"PanelID": testPanelID})
	case "deletePanel", "removeRecipient", "deleteSurvey", "activateSurvey",
		"deactivateSurvey", "updateResponseEmbeddedData", "importResponses", "removeContact":
		writeLegacySuccess(w, map[string]any{"Success": true})
	case "getPanels":
		writeLegacySuccess(w, map[string]any{
			"Panels": []map[string]any{
				{"PanelID": testPanelID, "Name": "Test Panel", "LibraryID": testLibraryID, "NumberOfMembers": "2"},
			},
		})
	case "getPanel":
		handleGetPanelRequest(w, query)
	case "getPanelMemberCount":
		writeLegacySuccess(w, map[string]any{"Count": "42"})
	case "importPanel":
		handleImportPanelRequest(w, r)
	case "addRecipient":
		handleAddRecipientRequest(w, query)
	case "getRecipient":
		writeLegacySuccess(w, map[string]any{
			"Recipient": map[string]any{"Email": "subject@example.com", "FirstName": "Test"},
		})
	case "getSurveys":
		writeLegacySuccess(w, map[string]any{
			"Surveys": []map[string]any{
				{"SurveyID": testSurveyID, "SurveyName": "Test Survey", "SurveyStatus": "Active"},
			},
		})
	case "getSurvey":
		// A bad SurveyID comes back as a JSON error envelope, not XML.
		if query.Get("SurveyID") != testSurveyID {
			writeLegacyError(w, "Invalid surveyID")
			return
		}

		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><SurveyDefinition/>`)) //nolint:errcheck // Test mock handler.
	case "importSurvey":
		writeLegacySuccess(w, map[string]any{"SurveyID": testSurveyID})
	case "getLegacyResponseData":
		handleResponseDataRequest(w, query)
	case "getSingleResponseHTML":
		writeLegacySuccess(w, "<html><body>Response</body></html>")
	case "sendSurveyToIndividual", "sendSurveyToPanel", "sendReminder", "createDistribution":
		writeLegacySuccess(w, map[string]any{
			"Success":             true,
			"EmailDistributionID": "EMD_0DQNoLbdDMeGvK5",
			"DistributionQueueID": "EMD_0DQNoLbdDMeGvK5",
		})
	case "getDistributions":
		writeLegacySuccess(w, map[string]any{
			"Distributions": []map[string]any{
				{"EmailDistributionID": "EMD_0DQNoLbdDMeGvK5", "SurveyID": testSurveyID, "EmailsSent": 5, "EmailsFailed": 0},
			},
		})
	case "getListContacts":
		writeJSON(w, []map[string]any{
			{"RecipientID": "MLRP_123", "Email": "contact@example.com"},
		})
	case "importContacts":
		writeLegacySuccess(w, map[string]any{"ListID": "ML_contactlist1234"})
	case "getAllSubscriptions":
		writeLegacySuccess(w, map[string]any{"Subscriptions": []any{}})
	case "subscribe":
		writeLegacySuccess(w, map[string]any{"SubscriptionID": "SUB_123"})
	default:
		writeLegacyError(w, "API Error: invalid request "+query.Get("Request"))
	}
}

func handleGetPanelRequest(w http.ResponseWriter, query url.Values) {
	if query.Get("PanelID") == "ML_empty0000000000" {
		writeJSON(w, []any{})
		return
	}

	writeJSON(w, []map[string]any{
		{"RecipientID": "MLRP_1", "Email": "one@example.com", "FirstName": "One"},
		{"RecipientID": "MLRP_2", "Email": "two@example.com", "FirstName": "Two"},
	})
}

func handleImportPanelRequest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Header positions must be detected from the CSV before the upload.
	if query.Get("ColumnHeaders") == "1" && query.Get("Email") == "" {
		writeLegacyError(w, "Email column position is missing")
		return
	}

	writeLegacySuccess(w, map[string]any{"PanelID": testPanelID})
}

func handleAddRecipientRequest(w http.ResponseWriter, query url.Values) {
	if query.Get("Email") == "" {
		writeLegacyError(w, "Missing Parameter: Email")
		return
	}

	writeLegacySuccess(w, map[string]any{"RecipientID": "MLRP_6ighOZ1technqpT"})
}

func handleResponseDataRequest(w http.ResponseWriter, query url.Values) {
	responseID := query.Get("ResponseID")
	if responseID == "R_deleted" {
		// The platform silently omits deleted responses from the result.
		writeJSON(w, map[string]any{})
		return
	}

	if responseID == "" {
		responseID = "R_1"
	}

	writeJSON(w, map[string]any{
		responseID: map[string]any{
			"Finished":     "1",
			"EmailAddress": "subject@example.com",
			"Q1":           2,
		},
	})
}

func handleV3Request(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-API-TOKEN") != testToken {
		writeV3Error(w, http.StatusUnauthorized, "Invalid API token")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/API/v3/")

	switch {
	case path == "responseexports" && r.Method == http.MethodPost:
		handleCreateExportRequest(w, r)
	case strings.HasSuffix(path, "/file"):
		handleExportFileRequest(w)
	case strings.HasPrefix(path, "responseexports/"):
		handleExportProgressRequest(w, r, strings.TrimPrefix(path, "responseexports/"))
	default:
		writeV3Error(w, http.StatusNotFound, "no such endpoint")
	}
}

func handleCreateExportRequest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Format   string `json:"format"`
		SurveyID string `json:"surveyId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SurveyID == "" || payload.Format == "" {
		writeV3Error(w, http.StatusBadRequest, "format and surveyId are required")
		return
	}

	writeJSON(w, map[string]any{
		"result": map[string]any{"id": completeExportID},
		"meta":   map[string]any{"httpStatus": "200 - OK"},
	})
}

func handleExportProgressRequest(w http.ResponseWriter, r *http.Request, exportID string) {
	var result map[string]any

	switch exportID {
	case inProgressExportID:
		result = map[string]any{"status": "in progress", "percentComplete": 33.5}
	case failedExportID:
		result = map[string]any{"status": "failed", "percentComplete": 0.0}
	case completeExportID:
		fileURL := "http://" + r.Host + "/API/v3/responseexports/" + completeExportID + "/file"
		result = map[string]any{"status": "complete", "percentComplete": 100.0, "file": fileURL}
	default:
		writeV3Error(w, http.StatusNotFound, "Export not found")
		return
	}

	writeJSON(w, map[string]any{
		"result": result,
		"meta":   map[string]any{"httpStatus": "200 - OK"},
	})
}

func handleExportFileRequest(w http.ResponseWriter) {
	var buffer bytes.Buffer

	writer := zip.NewWriter(&buffer)

	file, _ := writer.Create("responses.csv")
	file.Write([]byte(exportFileContents)) //nolint:errcheck // Test mock handler.
	writer.Close()                         //nolint:errcheck // Test mock handler.

	w.Header().Set("Content-Type", "application/zip")
	w.Write(buffer.Bytes()) //nolint:errcheck // Test mock handler.
}

func writeLegacySuccess(w http.ResponseWriter, result any) {
	writeJSON(w, map[string]any{
		"Meta":   map[string]any{"Status": "Success", "Debug": ""},
		"Result": result,
	})
}

func writeLegacyError(w http.ResponseWriter, message string) {
	writeJSON(w, map[string]any{
		"Meta": map[string]any{"Status": "Error", "ErrorMessage": message},
	})
}

func writeV3Error(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck,errchkjson // Test mock handler.
		"meta": map[string]any{
			"httpStatus": http.StatusText(status),
			"error":      map[string]any{"errorMessage": message, "errorCode": "QX_1"},
		},
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload) //nolint:errcheck,errchkjson // Test mock handler.
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
	}{
		{
			name: "valid config",
			config: &config.Config{
				User:            testUser,
				Token:           testToken,
				APIVersion:      config.DefaultAPIVersion,
				ControlPanelURL: config.DefaultControlPanelURL,
				ContactsURL:     config.DefaultContactsURL,
				V3BaseURL:       config.DefaultV3BaseURL,
			},
			expectError: false,
		},
		{
			name: "invalid endpoint URL",
			config: &config.Config{
				User:            testUser,
				Token:           testToken,
				APIVersion:      config.DefaultAPIVersion,
				ControlPanelURL: "://invalid-url",
				ContactsURL:     config.DefaultContactsURL,
				V3BaseURL:       config.DefaultV3BaseURL,
			},
			expectError: true,
		},
		{
			name: "endpoint without host",
			config: &config.Config{
				User:            testUser,
				Token:           testToken,
				APIVersion:      config.DefaultAPIVersion,
				ControlPanelURL: config.DefaultControlPanelURL,
				ContactsURL:     "not-a-url",
				V3BaseURL:       config.DefaultV3BaseURL,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewClient(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestClientImpl_ConnectionError(t *testing.T) {
	t.Parallel()

	// Nothing listens on this address, so the dial fails.
	client, err := NewClient(newTestConfig("http://127.0.0.1:1"))
	require.NoError(t, err)

	_, err = client.GetSurveys(context.Background())
	require.Error(t, err)

	var connErr *ConnectionError

	require.ErrorAs(t, err, &connErr)
	assert.NotNil(t, connErr.Unwrap())
}

func TestClientImpl_AuthError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.Token = invalidToken

	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.GetSurveys(context.Background())

	var authErr *AuthError

	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusForbidden, authErr.StatusCode)
}

func TestClientImpl_ProtocolError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>maintenance page</html>")) //nolint:errcheck // Test mock handler.
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetSurveys(context.Background())

	var protocolErr *ProtocolError

	require.ErrorAs(t, err, &protocolErr)
	assert.Contains(t, string(protocolErr.RawBody), "maintenance")
}

func TestClientImpl_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeLegacyError(w, "Incorrect Library ID")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetPanels(context.Background(), "GR_bogus")

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Incorrect Library ID")
}

func TestClientImpl_CreatePanel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	panelID, err := client.CreatePanel(context.Background(), testLibraryID, "Test Panel")
	require.NoError(t, err)
	assert.Equal(t, testPanelID, panelID)
}

func TestClientImpl_GetPanels(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	panels, err := client.GetPanels(context.Background(), testLibraryID)
	require.NoError(t, err)
	require.Len(t, panels, 1)
	assert.Equal(t, testPanelID, panels[0].ID)
	assert.Equal(t, "Test Panel", panels[0].Name)
}

func TestClientImpl_GetPanel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	contacts, err := client.GetPanel(context.Background(), &GetPanelRequest{
		LibraryID: testLibraryID,
		PanelID:   testPanelID,
	})
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "one@example.com", contacts[0].Email)
}

func TestClientImpl_GetPanel_Empty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	contacts, err := client.GetPanel(context.Background(), &GetPanelRequest{
		LibraryID: testLibraryID,
		PanelID:   "ML_empty0000000000",
	})
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestClientImpl_GetPanelMemberCount(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	count, err := client.GetPanelMemberCount(context.Background(), testLibraryID, testPanelID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestClientImpl_ImportPanel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	panelID, err := client.ImportPanel(context.Background(), &ImportPanelRequest{
		LibraryID:     testLibraryID,
		Name:          "Imported Panel",
		CSV:           "Email,FirstName,LastName\none@example.com,One,Subject\n",
		ColumnHeaders: true,
	})
	require.NoError(t, err)
	assert.Equal(t, testPanelID, panelID)
}

func TestClientImpl_ImportJSONPanel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	panelID, err := client.ImportJSONPanel(context.Background(), testLibraryID, "JSON Panel", []Contact{
		{Email: "one@example.com", FirstName: "One"},
		{Email: "two@example.com", FirstName: "Two", LastName: "Subject"},
	})
	require.NoError(t, err)
	assert.Equal(t, testPanelID, panelID)
}

func TestRenderPanelCSV_Deterministic(t *testing.T) {
	t.Parallel()

	contacts := []Contact{
		{Email: "one@example.com", FirstName: "One", LastName: "Subject", ExternalDataReference: "EXT1"},
		{Email: "two@example.com"},
	}

	first, err := renderPanelCSV(contacts)
	require.NoError(t, err)

	second, err := renderPanelCSV(contacts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t,
		"Email,FirstName,LastName,ExternalRef\n"+
			"one@example.com,One,Subject,EXT1\n"+
			"two@example.com,,,\n",
		first)
}

func TestClientImpl_AddRecipient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	recipientID, err := client.AddRecipient(context.Background(), &AddRecipientRequest{
		LibraryID:    testLibraryID,
		PanelID:      testPanelID,
		Email:        "subject@example.com",
		FirstName:    "Test",
		EmbeddedData: map[string]string{"SubjectID": "CLE10235"},
	})
	require.NoError(t, err)
	assert.Equal(t, "MLRP_6ighOZ1technqpT", recipientID)
}

func TestClientImpl_GetRecipient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	recipient, err := client.GetRecipient(context.Background(), testLibraryID, "MLRP_6ighOZ1technqpT")
	require.NoError(t, err)
	assert.Equal(t, "subject@example.com", recipient.Email)
}

func TestClientImpl_GetSurveys(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	surveys, err := client.GetSurveys(context.Background())
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, testSurveyID, surveys[0].ID)
	assert.Equal(t, "Active", surveys[0].Status)
}

func TestClientImpl_GetSurvey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	definition, ok, err := client.GetSurvey(context.Background(), testSurveyID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, definition, "<SurveyDefinition/>")
}

func TestClientImpl_GetSurvey_InvalidToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.Token = invalidToken

	client, err := NewClient(cfg)
	require.NoError(t, err)

	// The legacy API answers getSurvey with 401 on a bad token; callers get
	// the empty result, not an error.
	definition, ok, err := client.GetSurvey(context.Background(), testSurveyID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, definition)
}

func TestClientImpl_GetSurvey_BadSurveyID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// A JSON error envelope on the raw XML path must surface as an APIError,
	// never as the survey definition.
	definition, ok, err := client.GetSurvey(context.Background(), "SV_doesNotExist123")

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid surveyID", apiErr.Message)
	assert.False(t, ok)
	assert.Empty(t, definition)
}

func TestClientImpl_GetLegacyResponseData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	responses, err := client.GetLegacyResponseData(context.Background(), &ResponseDataRequest{
		SurveyID: testSurveyID,
	})
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "1", responses["R_1"]["Finished"])
}

func TestClientImpl_GetResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	response, err := client.GetResponse(context.Background(), testSurveyID, "R_1")
	require.NoError(t, err)
	assert.Equal(t, "subject@example.com", response["EmailAddress"])
}

func TestClientImpl_GetResponse_Deleted(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetResponse(context.Background(), testSurveyID, "R_deleted")

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrorCodeResponseDeleted, apiErr.Code)
	// A deleted response must not look like an entity that never existed.
	assert.NotEqual(t, ErrorCodeNotFound, apiErr.Code)
}

func TestClientImpl_ImportResponseRecords(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.ImportResponseRecords(context.Background(), testSurveyID, []Response{
		{"ResponseID": "R_1", "Finished": "1"},
		{"ResponseID": "R_2", "Finished": "0"},
	})
	require.NoError(t, err)
}

func TestRenderResponseCSV_SortedColumns(t *testing.T) {
	t.Parallel()

	contents, err := renderResponseCSV([]Response{
		{"Q1": 2, "ResponseID": "R_1", "Finished": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Finished,Q1,ResponseID\n1,2,R_1\n", contents)
}

func TestClientImpl_SendSurveyToIndividual(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	distributionID, err := client.SendSurveyToIndividual(context.Background(), &SendSurveyToIndividualRequest{
		SurveyID:    testSurveyID,
		SendDate:    "2026-09-01 10:00:00",
		RecipientID: "MLRP_6ighOZ1technqpT",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMD_0DQNoLbdDMeGvK5", distributionID)
}

func TestClientImpl_GetDistributions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	distributions, err := client.GetDistributions(context.Background(), &GetDistributionsRequest{
		SurveyID: testSurveyID,
	})
	require.NoError(t, err)
	require.Len(t, distributions, 1)

	sent, err := distributions[0].EmailsSent.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(5), sent)
}

func TestClientImpl_GetListContacts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	contacts, err := client.GetListContacts(context.Background(), &GetListContactsRequest{
		LibraryID: testLibraryID,
		ListID:    "ML_contactlist1234",
	})
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "contact@example.com", contacts[0].Email)
}

func TestClientImpl_ImportContacts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	listID, err := client.ImportContacts(context.Background(), &ImportContactsRequest{
		LibraryID:     testLibraryID,
		Name:          "Contact List",
		CSV:           "Email,FirstName\ncontact@example.com,Contact\n",
		ColumnHeaders: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ML_contactlist1234", listID)
}

func TestClientImpl_Subscriptions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	subscriptions, err := client.GetAllSubscriptions(context.Background())
	require.NoError(t, err)
	assert.True(t, json.Valid(subscriptions))

	result, err := client.Subscribe(context.Background(), &SubscribeRequest{
		Name:           "response events",
		PublicationURL: "https://example.com/qualtrics/events",
		Topics:         "controlpanel.activateSurvey",
	})
	require.NoError(t, err)
	assert.Contains(t, string(result), "SUB_123")
}

func TestClientImpl_CreateResponseExport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	exportID, err := client.CreateResponseExport(context.Background(), &CreateResponseExportRequest{
		SurveyID: testSurveyID,
		Format:   ExportFormatCSV,
	})
	require.NoError(t, err)
	assert.Equal(t, completeExportID, exportID)
}

func TestClientImpl_GetResponseExportProgress(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	progress, err := client.GetResponseExportProgress(context.Background(), inProgressExportID)
	require.NoError(t, err)
	assert.Equal(t, ExportStatusInProgress, progress.Status)
	assert.False(t, progress.Status.IsTerminal())
	assert.InDelta(t, 33.5, progress.PercentComplete, 0.01)
	assert.Empty(t, progress.FileURL)
}

func TestClientImpl_GetResponseExportProgress_TerminalIsIdempotent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	first, err := client.GetResponseExportProgress(context.Background(), completeExportID)
	require.NoError(t, err)
	assert.Equal(t, ExportStatusComplete, first.Status)
	assert.True(t, first.Status.IsTerminal())
	assert.NotEmpty(t, first.FileURL)

	// Polling a finished export again reports the same terminal state.
	second, err := client.GetResponseExportProgress(context.Background(), completeExportID)
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.FileURL, second.FileURL)
}

func TestClientImpl_GetResponseExportProgress_Failed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	progress, err := client.GetResponseExportProgress(context.Background(), failedExportID)
	require.NoError(t, err)
	assert.Equal(t, ExportStatusFailed, progress.Status)
	assert.True(t, progress.Status.IsTerminal())
}

func TestClientImpl_GetResponseExportFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// By export ID.
	contents, err := client.GetResponseExportFile(context.Background(), completeExportID)
	require.NoError(t, err)
	assert.Equal(t, exportFileContents, string(contents))

	// By the file URL the progress call reports.
	progress, err := client.GetResponseExportProgress(context.Background(), completeExportID)
	require.NoError(t, err)
	require.NotEmpty(t, progress.FileURL)

	contents, err = client.GetResponseExportFile(context.Background(), progress.FileURL)
	require.NoError(t, err)
	assert.Equal(t, exportFileContents, string(contents))
}

func TestClientImpl_DownloadResponseExportFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	client := newTestClient(t, server.URL)

	filename := t.TempDir() + "/export.zip"

	err := client.DownloadResponseExportFile(context.Background(), completeExportID, filename)
	require.NoError(t, err)

	reader, err := zip.OpenReader(filename)
	require.NoError(t, err)

	defer reader.Close() //nolint:errcheck // Test cleanup.

	require.Len(t, reader.File, 1)
	assert.Equal(t, "responses.csv", reader.File[0].Name)
}

func TestClientImpl_V3AuthError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(mockHandler))
	defer server.Close()

	cfg := newTestConfig(server.URL)
	cfg.Token = invalidToken

	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.CreateResponseExport(context.Background(), &CreateResponseExportRequest{
		SurveyID: testSurveyID,
		Format:   ExportFormatCSV,
	})

	var authErr *AuthError

	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.Contains(t, authErr.Message, "Invalid API token")
}
