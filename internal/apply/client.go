package apply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hazwanhalim/suaraform/internal/metrics"
	"github.com/hazwanhalim/suaraform/internal/model"
)

// SubmissionResult is the portal's response to a prepared application.
type SubmissionResult struct {
	Success         bool   `json:"success"`
	ReferenceNumber string `json:"reference_number"`
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
}

// Client talks to the aid portal backend for submission and profile
// pre-population.
type Client struct {
	URL    string
	Locale model.Locale
	Client *http.Client
}

// Submit sends the whole record to the portal's application endpoint.
// The record is frozen on success; on failure the review step stays
// editable and resubmission is allowed.
func (c *Client) Submit(ctx context.Context, record *model.ApplicationRecord) (SubmissionResult, error) {
	if record.Submitted {
		return SubmissionResult{}, fmt.Errorf("application %s was already submitted", record.ReferenceNumber)
	}

	if errs := Validate(record); len(errs) > 0 {
		return SubmissionResult{}, &ValidationFailedError{Errors: errs}
	}

	body, err := json.Marshal(record)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("marshal application: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/str/prepare-application?lang=%s", c.URL, url.QueryEscape(string(c.Locale)))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		metrics.ApplicationsSubmitted.WithLabelValues("error").Inc()
		return SubmissionResult{}, fmt.Errorf("submit application: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ApplicationsSubmitted.WithLabelValues("error").Inc()
		return SubmissionResult{}, fmt.Errorf("submission server responded with status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("read submission response: %w", err)
	}

	var result SubmissionResult
	err = json.Unmarshal(b, &result)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("unmarshal submission response: %w", err)
	}

	if !result.Success {
		metrics.ApplicationsSubmitted.WithLabelValues("rejected").Inc()
		return result, fmt.Errorf("submission rejected: %s", result.Message)
	}

	record.Submitted = true
	record.ReferenceNumber = result.ReferenceNumber
	metrics.ApplicationsSubmitted.WithLabelValues("ok").Inc()

	return result, nil
}

// FetchProfile pre-populates a record from a previously registered
// applicant profile. A missing profile is not an error: the
// conversation then simply starts from an empty record.
func (c *Client) FetchProfile(ctx context.Context, icNumber string) (*model.ApplicationRecord, error) {
	endpoint := fmt.Sprintf("%s/api/users/%s", c.URL, url.PathEscape(icNumber))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &model.ApplicationRecord{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile server responded with status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read profile response: %w", err)
	}

	var record model.ApplicationRecord
	err = json.Unmarshal(b, &record)
	if err != nil {
		return nil, fmt.Errorf("unmarshal profile response: %w", err)
	}

	return &record, nil
}

// ValidationFailedError carries per-field validation errors so callers
// can surface localized messages.
type ValidationFailedError struct {
	Errors []ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("application data is invalid: %d field error(s)", len(e.Errors))
}
