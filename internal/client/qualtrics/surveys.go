package qualtrics

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// surveyListResult is the Result payload of getSurveys.
type surveyListResult struct {
	// Surveys lists the account's surveys.
	Surveys []Survey `json:"Surveys"`
}

// surveyIDResult is the Result payload of importSurvey.
type surveyIDResult struct {
	// SurveyID is the identifier of the imported survey.
	SurveyID string `json:"SurveyID"`
}

// GetSurveys returns the metadata of all surveys owned by the user, in the
// order the platform reports them.
func (c *ClientImpl) GetSurveys(ctx context.Context) ([]Survey, error) {
	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getSurveys",
		format:  formatJSON,
	})
	if err != nil {
		return nil, err
	}

	payload, err := decodeResult[surveyListResult](result.result)
	if err != nil {
		return nil, err
	}

	return payload.Surveys, nil
}

// GetSurvey returns the survey definition as raw XML. This is the one call the
// legacy API answers without a JSON envelope, and the one call where an
// invalid token produces HTTP 401: that case reports ok=false with no error.
func (c *ClientImpl) GetSurvey(ctx context.Context, surveyID string) (string, bool, error) {
	if surveyID == "" {
		return "", false, ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", surveyID)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getSurvey",
		format:  formatRaw,
		query:   query,
	})
	if err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) && authErr.StatusCode == http.StatusUnauthorized {
			return "", false, nil
		}

		return "", false, err
	}

	return string(result.result), true, nil
}

// ImportSurvey imports a survey definition and returns the new survey ID.
// If the file contents are not valid the platform still creates an empty
// survey and reports an error; the caller decides how to handle that.
func (c *ClientImpl) ImportSurvey(ctx context.Context, req *ImportSurveyRequest) (string, error) {
	query := url.Values{}
	query.Set("ImportFormat", req.ImportFormat)
	query.Set("Name", req.Name)

	if req.Activate {
		query.Set("Activate", "1")
	}

	if req.URL != "" {
		query.Set("URL", req.URL)
	}

	if req.OwnerID != "" {
		query.Set("OwnerID", req.OwnerID)
	}

	params := &legacyParams{
		product: productControlPanel,
		request: "importSurvey",
		format:  formatJSON,
		query:   query,
	}

	if len(req.FileContents) > 0 {
		params.files = map[string][]byte{"FileContents": req.FileContents}
	}

	result, err := c.requestLegacy(ctx, params)
	if err != nil {
		return "", err
	}

	payload, err := decodeResult[surveyIDResult](result.result)
	if err != nil {
		return "", err
	}

	return payload.SurveyID, nil
}

// DeleteSurvey deletes the survey.
func (c *ClientImpl) DeleteSurvey(ctx context.Context, surveyID string) error {
	return c.surveyAction(ctx, "deleteSurvey", surveyID)
}

// ActivateSurvey activates the survey.
func (c *ClientImpl) ActivateSurvey(ctx context.Context, surveyID string) error {
	return c.surveyAction(ctx, "activateSurvey", surveyID)
}

// DeactivateSurvey deactivates the survey.
func (c *ClientImpl) DeactivateSurvey(ctx context.Context, surveyID string) error {
	return c.surveyAction(ctx, "deactivateSurvey", surveyID)
}

// surveyAction issues one of the legacy calls that take only a SurveyID and
// report nothing beyond success.
func (c *ClientImpl) surveyAction(ctx context.Context, request, surveyID string) error {
	if surveyID == "" {
		return ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", surveyID)

	_, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: request,
		format:  formatJSON,
		query:   query,
	})

	return err
}
