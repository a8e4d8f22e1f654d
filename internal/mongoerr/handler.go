package mongoerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/employee-service/internal/errs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// generateErrorCode builds "<ENTITY>_<ACTION>" codes such as
// EMPLOYEE_ALREADY_EXISTS from the collection name.
func generateErrorCode(collection string, code Code) string {
	domain := strings.ToUpper(singular(collection))
	if domain == "" {
		domain = "RECORD"
	}

	action := "ERROR"
	switch code {
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	case DocumentValidationFailure:
		action = "INVALID"
	case NoDocuments:
		action = "NOT_FOUND"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(mongoErr *Error) string {
	entity := getEntityName(mongoErr.Collection)

	switch mongoErr.Code {
	case DuplicateKey:
		return fmt.Sprintf("%s %s with this identifier already exists", article(entity), strings.ToLower(entity))
	case DocumentValidationFailure:
		return fmt.Sprintf("The %s does not meet required conditions", strings.ToLower(entity))
	case NoDocuments:
		return fmt.Sprintf("%s not found", entity)
	default:
		return errs.InternalServerErrorMessage
	}
}

// getEntityName turns a collection name into a title-cased singular
// entity name: "employees" -> "Employee".
func getEntityName(collection string) string {
	entity := singular(collection)
	if entity == "" {
		return "Record"
	}
	return humanizeText(entity)
}

func singular(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

func article(word string) string {
	if word != "" && strings.ContainsRune("AEIOUaeiou", rune(word[0])) {
		return "An"
	}
	return "A"
}

// HandleError converts a low-level database error into an application error.
//
//   - *errs.HTTPError is returned unchanged
//   - duplicate keys and document validation failures become 400
//   - missing documents become 404
//   - everything else becomes a generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var mongoErr *Error
	if !errors.As(err, &mongoErr) {
		mongoErr = Convert(err, "")
	}

	errorCode := generateErrorCode(mongoErr.Collection, mongoErr.Code)
	userMessage := formatUserFriendlyMessage(mongoErr)

	switch mongoErr.Code {
	case DuplicateKey, DocumentValidationFailure:
		return errs.NewBadRequestError(userMessage, &errorCode, nil)
	case NoDocuments:
		return errs.NewNotFoundError(userMessage, nil)
	default:
		return errs.NewInternalServerError()
	}
}
