package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// FormatPolicyQuestion serializes a single-policy question into the textual
// protocol the model service expects: `<company>, <policy>, "<question>"`.
// This is a string contract with the remote model, not structured JSON;
// the exact shape matters.
func FormatPolicyQuestion(company, policy, question string) string {
	return company + ", " + policy + ", \"" + question + "\""
}

// AskQuestion sends a policy question to the model service and returns the
// answer text (markdown). The question for a single policy should be
// pre-formatted with FormatPolicyQuestion.
func (c *Client) AskQuestion(ctx context.Context, question string) (string, error) {
	body, err := c.doJSON(ctx, http.MethodPost, "/chatbot/question", map[string]string{"question": question})
	if err != nil {
		return "", &QuestionError{Message: "Error asking question: " + describeFailure(err), Err: err}
	}
	answer, err := decodeAnswer(body)
	if err != nil {
		return "", &QuestionError{Message: "Error asking question: " + err.Error(), Err: err}
	}
	return answer, nil
}

// ComparePolicies asks the model service to compare two policy documents
// (each referenced as "<company>/<filename>") with respect to query.
func (c *Client) ComparePolicies(ctx context.Context, policy1, policy2, query string) (string, error) {
	payload := map[string]string{
		"policy1": policy1,
		"policy2": policy2,
		"query":   query,
	}
	body, err := c.doJSON(ctx, http.MethodPost, "/chatbot/compare-policies", payload)
	if err != nil {
		return "", &CompareError{Message: "Error comparing policies: " + describeFailure(err), Err: err}
	}
	answer, err := decodeAnswer(body)
	if err != nil {
		return "", &CompareError{Message: "Error comparing policies: " + err.Error(), Err: err}
	}
	return answer, nil
}

func decodeAnswer(body []byte) (string, error) {
	var payload struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("malformed answer payload: %w", err)
	}
	return payload.Answer, nil
}

// describeFailure renders a chatbot failure for the user-facing message:
// the server detail when present, else the HTTP status, else the transport
// error.
func describeFailure(err error) string {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.detailOr(fmt.Sprintf("HTTP %d", apiErr.StatusCode))
	}
	return err.Error()
}
