package httpapi

import (
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// issue describes one validation failure. Validation errors return the whole
// list at once under the standard error key.
type issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Error []issue `json:"error"`
}

// writeValidationIssues reports the collected issues as a 400. Returns true
// when there was anything to report.
func writeValidationIssues(w http.ResponseWriter, issues []issue) bool {
	if len(issues) == 0 {
		return false
	}
	writeJSON(w, http.StatusBadRequest, validationResponse{Error: issues})
	return true
}

func checkMinLen(issues []issue, field, value string, min int) []issue {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		return append(issues, issue{Field: field, Message: "must be at least " + strconv.Itoa(min) + " characters"})
	}
	return issues
}

func checkEmail(issues []issue, field, value string) []issue {
	if _, err := mail.ParseAddress(value); err != nil {
		return append(issues, issue{Field: field, Message: "must be a valid email address"})
	}
	return issues
}

func checkRequired(issues []issue, field, value string) []issue {
	if strings.TrimSpace(value) == "" {
		return append(issues, issue{Field: field, Message: "is required"})
	}
	return issues
}

func checkURL(issues []issue, field, value string) []issue {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return append(issues, issue{Field: field, Message: "must be a valid http(s) URL"})
	}
	return issues
}

func checkOneOf(issues []issue, field, value string, allowed ...string) []issue {
	for _, candidate := range allowed {
		if value == candidate {
			return issues
		}
	}
	return append(issues, issue{Field: field, Message: "must be one of: " + strings.Join(allowed, ", ")})
}
