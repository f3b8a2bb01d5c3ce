package qualtrics

import (
	"context"
	"net/url"
)

// distributionIDResult is the Result payload of the mailer calls
// (sendSurveyToIndividual, sendSurveyToPanel, sendReminder, createDistribution).
type distributionIDResult struct {
	// EmailDistributionID identifies the queued distribution.
	EmailDistributionID string `json:"EmailDistributionID"`
	// DistributionQueueID mirrors EmailDistributionID.
	DistributionQueueID string `json:"DistributionQueueID"`
	// Success reports whether the mailing was queued.
	Success bool `json:"Success"`
}

// distributionListResult is the Result payload of getDistributions.
type distributionListResult struct {
	// Distributions lists the matching distribution records.
	Distributions []Distribution `json:"Distributions"`
}

// SendSurveyToIndividual queues a survey email to a single recipient and
// returns the distribution ID. Mailings are queued, not delivered
// immediately; use GetDistributions to check delivery counts.
func (c *ClientImpl) SendSurveyToIndividual(
	ctx context.Context,
	req *SendSurveyToIndividualRequest,
) (string, error) {
	if req.SurveyID == "" {
		return "", ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", req.SurveyID)
	query.Set("SendDate", req.SendDate)
	query.Set("RecipientID", req.RecipientID)

	setIfNotEmpty(query, "FromEmail", req.FromEmail)
	setIfNotEmpty(query, "FromName", req.FromName)
	setIfNotEmpty(query, "Subject", req.Subject)
	setIfNotEmpty(query, "MessageID", req.MessageID)
	setIfNotEmpty(query, "MessageLibraryID", req.MessageLibraryID)
	setIfNotEmpty(query, "PanelID", req.PanelID)
	setIfNotEmpty(query, "PanelLibraryID", req.PanelLibraryID)

	return c.queueDistribution(ctx, "sendSurveyToIndividual", query)
}

// SendSurveyToPanel queues a survey mailing to a panel and returns the
// distribution ID.
func (c *ClientImpl) SendSurveyToPanel(ctx context.Context, req *SendSurveyToPanelRequest) (string, error) {
	if req.SurveyID == "" {
		return "", ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", req.SurveyID)
	query.Set("SendDate", req.SendDate)

	setIfNotEmpty(query, "SentFromAddress", req.SentFromAddress)
	setIfNotEmpty(query, "FromEmail", req.FromEmail)
	setIfNotEmpty(query, "FromName", req.FromName)
	setIfNotEmpty(query, "Subject", req.Subject)
	setIfNotEmpty(query, "MessageID", req.MessageID)
	setIfNotEmpty(query, "MessageLibraryID", req.MessageLibraryID)
	setIfNotEmpty(query, "PanelID", req.PanelID)
	setIfNotEmpty(query, "PanelLibraryID", req.PanelLibraryID)
	setIfNotEmpty(query, "LinkType", req.LinkType)

	return c.queueDistribution(ctx, "sendSurveyToPanel", query)
}

// SendReminder queues a reminder for an earlier distribution and returns the
// new distribution ID.
func (c *ClientImpl) SendReminder(ctx context.Context, req *SendReminderRequest) (string, error) {
	query := url.Values{}
	query.Set("ParentEmailDistributionID", req.ParentEmailDistributionID)
	query.Set("SendDate", req.SendDate)

	setIfNotEmpty(query, "SentFromAddress", req.SentFromAddress)
	setIfNotEmpty(query, "FromEmail", req.FromEmail)
	setIfNotEmpty(query, "FromName", req.FromName)
	setIfNotEmpty(query, "Subject", req.Subject)
	setIfNotEmpty(query, "MessageID", req.MessageID)
	setIfNotEmpty(query, "LibraryID", req.LibraryID)

	return c.queueDistribution(ctx, "sendReminder", query)
}

// CreateDistribution creates a distribution without sending any emails and
// returns the distribution ID. Survey links can be generated against it later.
func (c *ClientImpl) CreateDistribution(ctx context.Context, req *CreateDistributionRequest) (string, error) {
	if req.SurveyID == "" {
		return "", ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", req.SurveyID)
	query.Set("PanelID", req.PanelID)
	query.Set("Description", req.Description)
	query.Set("PanelLibraryID", req.PanelLibraryID)

	return c.queueDistribution(ctx, "createDistribution", query)
}

// GetDistributions returns distribution records, including delivery counts.
func (c *ClientImpl) GetDistributions(ctx context.Context, req *GetDistributionsRequest) ([]Distribution, error) {
	query := url.Values{}

	setIfNotEmpty(query, "SurveyID", req.SurveyID)
	setIfNotEmpty(query, "DistributionID", req.DistributionID)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getDistributions",
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return nil, err
	}

	payload, err := decodeResult[distributionListResult](result.result)
	if err != nil {
		return nil, err
	}

	return payload.Distributions, nil
}

// queueDistribution issues one of the mailer calls and extracts the
// distribution ID from the result.
func (c *ClientImpl) queueDistribution(ctx context.Context, request string, query url.Values) (string, error) {
	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: request,
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return "", err
	}

	payload, err := decodeResult[distributionIDResult](result.result)
	if err != nil {
		return "", err
	}

	return payload.EmailDistributionID, nil
}
