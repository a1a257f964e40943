package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
)

// FetchPolicyCatalog retrieves the per-company policy document listing
// visible to the current session.
func (c *Client) FetchPolicyCatalog(ctx context.Context) (PolicyCatalog, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/policies/policies", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Policies PolicyCatalog `json:"policies"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return payload.Policies, nil
}

// The four mutating catalog operations below share the result convention:
// they never return a Go error. Every failure, transport-level included,
// becomes {Success: false, Message: ...}; success triggers a
// CheckAuthStatus refresh to re-sync the policy catalog before returning.

// UploadPolicy uploads a policy document for a company. The multipart
// fields are fixed by the API: file, insurance_name, policy_name.
func (s *Session) UploadPolicy(ctx context.Context, filename string, file io.Reader, policyName, companyName string) OperationResult {
	fields := map[string]string{
		"insurance_name": companyName,
		"policy_name":    policyName,
	}
	body, err := s.client.doMultipart(ctx, "/policies/upload-policy", fields, "file", filename, file)
	if err != nil {
		s.logger.Debug("policy upload failed", "company", companyName, "error", err)
		return OperationResult{Success: false, Message: "An error occurred while uploading the Policy"}
	}
	result := OperationResult{Success: true, Message: serverMessageOr(body, "Policy uploaded successfully")}
	s.CheckAuthStatus(ctx)
	return result
}

// DeletePolicy removes one policy document from a company.
func (s *Session) DeletePolicy(ctx context.Context, companyName, filename string) OperationResult {
	path := "/policies/delete-policy/" + url.PathEscape(companyName) + "/" + url.PathEscape(filename)
	body, err := s.client.doJSON(ctx, http.MethodDelete, path, nil)
	if err != nil {
		s.logger.Debug("policy delete failed", "company", companyName, "filename", filename, "error", err)
		return OperationResult{Success: false, Message: "An error occurred while deleting the Policy"}
	}
	result := OperationResult{Success: true, Message: serverMessageOr(body, "Policy deleted successfully")}
	s.CheckAuthStatus(ctx)
	return result
}

// AddCompany registers a new insurance company. Unlike the other result
// operations this one surfaces the server's detail message on failure
// (duplicate names are the common case and worth telling apart).
func (s *Session) AddCompany(ctx context.Context, name string) OperationResult {
	body, err := s.client.doJSON(ctx, http.MethodPost, "/insurance/insurance-companies", map[string]string{"name": name})
	if err != nil {
		message := "An error occurred while adding the insurance company"
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			message = apiErr.detailOr(message)
		}
		s.logger.Debug("add company failed", "name", name, "error", err)
		return OperationResult{Success: false, Message: message}
	}
	result := OperationResult{Success: true, Message: serverMessageOr(body, "Insurance company added successfully")}
	s.CheckAuthStatus(ctx)
	return result
}

// DeleteCompany removes an insurance company and its policy documents.
func (s *Session) DeleteCompany(ctx context.Context, name string) OperationResult {
	body, err := s.client.doJSON(ctx, http.MethodDelete, "/insurance/insurance-companies/"+url.PathEscape(name), nil)
	if err != nil {
		s.logger.Debug("delete company failed", "name", name, "error", err)
		return OperationResult{Success: false, Message: "An error occurred while deleting the insurance company"}
	}
	result := OperationResult{Success: true, Message: serverMessageOr(body, "Insurance company deleted successfully")}
	s.CheckAuthStatus(ctx)
	return result
}

// serverMessageOr returns the {"message": ...} field of a success body, or
// fallback when the body has none.
func serverMessageOr(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}
