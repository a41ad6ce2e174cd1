package insight

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// credCodes are API error codes that mean the daemon's AWS setup is broken,
// not that the request was bad.
var credCodes = map[string]struct{}{
	"UnrecognizedClientException": {},
	"InvalidSignatureException":   {},
	"AccessDeniedException":       {},
	"ExpiredTokenException":       {},
}

// notFoundCodes are Glue/Athena codes raised for missing catalog entities.
var notFoundCodes = map[string]struct{}{
	"EntityNotFoundException": {},
	"MetadataException":       {},
}

// classifyAWS maps SDK failures onto the service error taxonomy. kind and
// name describe the addressed entity for not-found translation; an empty
// kind skips that mapping. Unrecognized errors pass through for 500.
func classifyAWS(err error, kind, name string) error {
	if err == nil {
		return nil
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		if _, ok := credCodes[ae.ErrorCode()]; ok {
			return dependencyUnavailableError{msg: "aws: " + ae.ErrorMessage()}
		}
		if kind != "" {
			if _, ok := notFoundCodes[ae.ErrorCode()]; ok {
				return notFoundError{kind: kind, name: name}
			}
		}
	}
	// Athena reports missing schemas and tables only through the state
	// change reason of a failed execution.
	if kind != "" {
		msg := err.Error()
		if strings.Contains(msg, "SCHEMA_NOT_FOUND") || strings.Contains(msg, "TABLE_NOT_FOUND") {
			return notFoundError{kind: kind, name: name}
		}
	}
	return err
}
