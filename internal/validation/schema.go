// Package validation checks docgen project configuration documents against an
// embedded JSON schema before they are decoded into runtime configuration.
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrDocumentInvalid indicates a configuration document failing schema validation.
var ErrDocumentInvalid = errors.New("docgen config: document validation failed")

//go:embed project_schema.json
var projectSchemaJSON []byte

var (
	projectSchemaOnce sync.Once
	projectSchema     *jsonschema.Schema
	projectSchemaErr  error
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateProjectDocument validates raw docgen.json bytes against the
// embedded project schema.
func ValidateProjectDocument(data []byte) error {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Message: fmt.Sprintf("document is not valid JSON: %v", err)}},
			Cause:  err,
		}
	}
	return ValidateProjectPayload(payload)
}

// ValidateProjectPayload validates a decoded configuration payload.
func ValidateProjectPayload(payload any) error {
	schema, err := compiledProjectSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func compiledProjectSchema() (*jsonschema.Schema, error) {
	projectSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("project_schema.json", bytes.NewReader(projectSchemaJSON)); err != nil {
			projectSchemaErr = err
			return
		}
		projectSchema, projectSchemaErr = compiler.Compile("project_schema.json")
	})
	return projectSchema, projectSchemaErr
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
