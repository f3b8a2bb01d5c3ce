package qualtrics

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/baguage/qualtrics-go/internal/client/qualtrics"
	mock_qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics/mocks"
	"github.com/baguage/qualtrics-go/internal/config"
)

const (
	testLibraryID = "GR_8wL9dI2TGRWvy1T"
	testPanelID   = "ML_5yIfnZuEHef4ZBG"
	testSurveyID  = "SV_8pqqcl4sy2316ZM"
	testExportID  = "ES_complete1234567"
	testListID    = "ML_contactlist1234"
)

// testServiceSetup encapsulates common test dependencies and configuration.
type testServiceSetup struct {
	ctrl       *gomock.Controller
	mockClient *mock_qualtrics_client.MockClient
	service    Service
	config     *config.Config
	tempDir    string
}

// newTestServiceSetup creates a standard test setup with optional config overrides.
func newTestServiceSetup(t *testing.T, configOverrides ...func(*config.Config)) *testServiceSetup {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := mock_qualtrics_client.NewMockClient(ctrl)
	tempDir := t.TempDir()

	cfg := &config.Config{
		User:                     "test_user",
		Token:                    "test_token",
		APIVersion:               config.DefaultAPIVersion,
		OutputPath:               tempDir,
		ParsedExportPollInterval: time.Millisecond,
		ExportPollMaxAttempts:    3,
	}

	for _, override := range configOverrides {
		override(cfg)
	}

	return &testServiceSetup{
		ctrl:       ctrl,
		mockClient: mockClient,
		service:    NewService(cfg, mockClient),
		config:     cfg,
		tempDir:    tempDir,
	}
}

func TestServiceImpl_WaitForResponseExport(t *testing.T) {
	setup := newTestServiceSetup(t)

	inProgress := &qualtrics.ExportProgress{
		Status:          qualtrics.ExportStatusInProgress,
		PercentComplete: 50,
	}
	complete := &qualtrics.ExportProgress{
		Status:          qualtrics.ExportStatusComplete,
		PercentComplete: 100,
		FileURL:         "https://survey.qualtrics.com/API/v3/responseexports/" + testExportID + "/file",
	}

	gomock.InOrder(
		setup.mockClient.EXPECT().
			GetResponseExportProgress(gomock.Any(), testExportID).
			Return(inProgress, nil),
		setup.mockClient.EXPECT().
			GetResponseExportProgress(gomock.Any(), testExportID).
			Return(complete, nil),
	)

	progress, err := setup.service.WaitForResponseExport(context.Background(), testExportID)
	require.NoError(t, err)
	assert.Equal(t, qualtrics.ExportStatusComplete, progress.Status)
	assert.Equal(t, complete.FileURL, progress.FileURL)
}

func TestServiceImpl_WaitForResponseExport_Timeout(t *testing.T) {
	setup := newTestServiceSetup(t)

	inProgress := &qualtrics.ExportProgress{
		Status:          qualtrics.ExportStatusInProgress,
		PercentComplete: 10,
	}

	setup.mockClient.EXPECT().
		GetResponseExportProgress(gomock.Any(), testExportID).
		Return(inProgress, nil).
		Times(3)

	_, err := setup.service.WaitForResponseExport(context.Background(), testExportID)
	require.ErrorIs(t, err, ErrExportTimedOut)
}

func TestServiceImpl_WaitForResponseExport_ContextCanceled(t *testing.T) {
	setup := newTestServiceSetup(t, func(cfg *config.Config) {
		cfg.ParsedExportPollInterval = time.Hour
	})

	inProgress := &qualtrics.ExportProgress{
		Status: qualtrics.ExportStatusInProgress,
	}

	setup.mockClient.EXPECT().
		GetResponseExportProgress(gomock.Any(), testExportID).
		Return(inProgress, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := setup.service.WaitForResponseExport(ctx, testExportID)
	require.ErrorIs(t, err, context.Canceled)
}

func TestServiceImpl_ExportResponses(t *testing.T) {
	setup := newTestServiceSetup(t)

	fileURL := "https://survey.qualtrics.com/API/v3/responseexports/" + testExportID + "/file"
	complete := &qualtrics.ExportProgress{
		Status:          qualtrics.ExportStatusComplete,
		PercentComplete: 100,
		FileURL:         fileURL,
	}

	setup.mockClient.EXPECT().
		CreateResponseExport(gomock.Any(), &qualtrics.CreateResponseExportRequest{
			SurveyID: testSurveyID,
			Format:   qualtrics.ExportFormatCSV,
		}).
		Return(testExportID, nil)
	setup.mockClient.EXPECT().
		GetResponseExportProgress(gomock.Any(), testExportID).
		Return(complete, nil)
	setup.mockClient.EXPECT().
		DownloadResponseExportFile(gomock.Any(), fileURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, filename string) error {
			return os.WriteFile(filename, buildTestArchive(t), 0o644)
		})

	filename, err := setup.service.ExportResponses(context.Background(), &ExportResponsesRequest{
		SurveyID: testSurveyID,
	})
	require.NoError(t, err)
	assert.Equal(t, setup.tempDir, filepath.Dir(filename))
	assert.Contains(t, filepath.Base(filename), testSurveyID)
	assert.FileExists(t, filename)
}

func TestServiceImpl_ExportResponses_Failed(t *testing.T) {
	setup := newTestServiceSetup(t)

	failed := &qualtrics.ExportProgress{
		Status: qualtrics.ExportStatusFailed,
	}

	setup.mockClient.EXPECT().
		CreateResponseExport(gomock.Any(), gomock.Any()).
		Return(testExportID, nil)
	setup.mockClient.EXPECT().
		GetResponseExportProgress(gomock.Any(), testExportID).
		Return(failed, nil)

	_, err := setup.service.ExportResponses(context.Background(), &ExportResponsesRequest{
		SurveyID: testSurveyID,
	})
	require.ErrorIs(t, err, ErrExportFailed)
}

func TestServiceImpl_GenerateUniqueSurveyLink(t *testing.T) {
	setup := newTestServiceSetup(t)

	setup.mockClient.EXPECT().
		AddRecipient(gomock.Any(), &qualtrics.AddRecipientRequest{
			LibraryID: testLibraryID,
			PanelID:   testPanelID,
			FirstName: "Test",
			LastName:  "Subject",
			Email:     "subject@example.com",
			Language:  "English",
		}).
		Return("MLRP_6ighOZ1technqpT", nil)

	link, err := setup.service.GenerateUniqueSurveyLink(context.Background(), &qualtrics.UniqueSurveyLinkRequest{
		SurveyID:       testSurveyID,
		LibraryID:      testLibraryID,
		PanelID:        testPanelID,
		DistributionID: "EMD_0DQNoLbdDMeGvK5",
		FirstName:      "Test",
		LastName:       "Subject",
		Email:          "subject@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"http://new.qualtrics.com/SE?Q_DL=0DQNoLbdDMeGvK5_8pqqcl4sy2316ZM_MLRP_6ighOZ1technqpT",
		link)
}

func TestServiceImpl_GenerateUniqueSurveyLink_InvalidIDs(t *testing.T) {
	setup := newTestServiceSetup(t)

	_, err := setup.service.GenerateUniqueSurveyLink(context.Background(), &qualtrics.UniqueSurveyLinkRequest{
		SurveyID:       "bogus",
		DistributionID: "EMD_0DQNoLbdDMeGvK5",
	})
	require.ErrorIs(t, err, qualtrics.ErrInvalidSurveyIDFormat)

	_, err = setup.service.GenerateUniqueSurveyLink(context.Background(), &qualtrics.UniqueSurveyLinkRequest{
		SurveyID:       testSurveyID,
		DistributionID: "bogus",
	})
	require.ErrorIs(t, err, qualtrics.ErrInvalidDistributionIDFormat)
}

func TestServiceImpl_TruncateContactList(t *testing.T) {
	setup := newTestServiceSetup(t)

	contacts := []qualtrics.Contact{
		{RecipientID: "MLRP_1", Email: "one@example.com"},
		{RecipientID: "MLRP_2", Email: "two@example.com"},
		{RecipientID: "MLRP_3", Email: "three@example.com"},
	}

	setup.mockClient.EXPECT().
		GetListContacts(gomock.Any(), &qualtrics.GetListContactsRequest{
			LibraryID: testLibraryID,
			ListID:    testListID,
		}).
		Return(contacts, nil)
	setup.mockClient.EXPECT().
		RemoveContact(gomock.Any(), testLibraryID, testListID, "MLRP_1").
		Return(nil)
	setup.mockClient.EXPECT().
		RemoveContact(gomock.Any(), testLibraryID, testListID, "MLRP_2").
		Return(errors.New("remove failed"))
	setup.mockClient.EXPECT().
		RemoveContact(gomock.Any(), testLibraryID, testListID, "MLRP_3").
		Return(nil)

	failures, err := setup.service.TruncateContactList(context.Background(), testLibraryID, testListID)
	require.NoError(t, err)
	assert.Equal(t, []string{"MLRP_2"}, failures)
}

func TestServiceImpl_TruncateContactList_EmptyList(t *testing.T) {
	setup := newTestServiceSetup(t)

	setup.mockClient.EXPECT().
		GetListContacts(gomock.Any(), gomock.Any()).
		Return([]qualtrics.Contact{}, nil)

	failures, err := setup.service.TruncateContactList(context.Background(), testLibraryID, testListID)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

// buildTestArchive returns a zip archive with one CSV file inside, matching
// what the export endpoint serves.
func buildTestArchive(t *testing.T) []byte {
	t.Helper()

	var buffer bytes.Buffer

	writer := zip.NewWriter(&buffer)

	file, err := writer.Create("responses.csv")
	require.NoError(t, err)

	_, err = file.Write([]byte("ResponseID,Finished\nR_1,1\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buffer.Bytes()
}
