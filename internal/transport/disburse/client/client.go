package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/kursusin/affiliate-backend/internal/domain"
)

const RouteDisbursements = "/api/v1/disbursements"

// Bounds on the Retry-After header value, in seconds.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

const defaultRetryMax = 3

type StatusType string

const (
	// StatusAccepted means the gateway took the order but has not settled it
	// yet. The payout stays in processing and is retried on a later poll.
	StatusAccepted  StatusType = "ACCEPTED"
	StatusCompleted StatusType = "COMPLETED"
	StatusFailed    StatusType = "FAILED"
)

// Request is the disbursement order sent to the gateway. Reference doubles as
// the idempotency key, so resending after a network error is safe.
type Request struct {
	Reference     uuid.UUID               `json:"reference"`
	Amount        decimal.Decimal         `json:"amount"`
	Currency      string                  `json:"currency"`
	Method        domain.PayoutMethodType `json:"method"`
	AccountName   string                  `json:"account_name"`
	AccountNumber string                  `json:"account_number"`
}

type Response struct {
	Reference     uuid.UUID  `json:"reference"`
	Status        StatusType `json:"status"`
	FailureReason string     `json:"failure_reason,omitempty"`
}

// HTTPClient implements the Client interface over HTTP with transport-level
// retries.
type HTTPClient struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

func New(baseURL string) HTTPClient {
	rc := retryablehttp.NewClient()
	rc.RetryMax = defaultRetryMax
	rc.Logger = nil
	// Only transport failures are retried here. Status codes, 429 included,
	// are handled by the caller so Retry-After stays visible.
	rc.CheckRetry = func(ctx context.Context, _ *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return err != nil, nil
	}
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: rc,
	}
}

// Disburse sends one payout to the gateway. Returns TooManyRequestError when
// the gateway keeps answering 429 past the transport retries, or
// StatusCodeError on any other non-200 status.
//
//nolint:nonamedreturns
func (c HTTPClient) Disburse(
	ctx context.Context,
	disbursement domain.PayoutDisbursement,
) (response *Response, err error) {
	body, marshalErr := json.Marshal(Request{
		Reference:     disbursement.Payout.Reference,
		Amount:        disbursement.Payout.Amount,
		Currency:      "IDR",
		Method:        disbursement.Method,
		AccountName:   disbursement.AccountName,
		AccountNumber: disbursement.AccountNumber,
	})
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	req, reqErr := retryablehttp.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+RouteDisbursements, bytes.NewReader(body))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	if jsonErr := json.Unmarshal(respBody, &response); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	return response, nil
}

func parseRetryAfter(raw string) time.Duration {
	retryAfter, parseErr := decimal.NewFromString(raw)
	if parseErr != nil ||
		retryAfter.LessThan(decimal.NewFromInt(minRetryAfter)) ||
		retryAfter.GreaterThan(decimal.NewFromInt(maxRetryAfter)) {
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}
