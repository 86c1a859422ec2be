package cli

import (
	"errors"
	"log"
	"net/http"

	"github.com/dmitrijs2005/finkeeper/internal/client/api"
)

// genericFailure is shown when nothing better is known about an error.
const genericFailure = "The operation could not be completed."

// userMessage maps an SDK failure to a user-facing notification.
//
// Expired-session 401s never reach this mapper: the refresh path owns them
// and surfaces only ErrReauthRequired.
func userMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrReauthRequired):
		return "Your session has expired. Please log in again."
	case errors.Is(err, api.ErrUnavailable):
		return "Cannot reach the server. Check your connection and try again."
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusForbidden:
			return "You do not have permission to perform this action."
		case apiErr.Status == http.StatusNotFound:
			return "The requested item was not found."
		case apiErr.Status >= 500:
			return "The server encountered a problem. Please try again later."
		case apiErr.Message != "":
			return apiErr.Message
		default:
			return genericFailure
		}
	}

	return genericFailure
}

// reportFailure prints the user-facing message for err.
func reportFailure(err error) {
	log.Println(userMessage(err))
}

// reportEnvelope prints a failed envelope: its message plus any
// field-level validation errors.
func reportEnvelope(message string, errs map[string][]string) {
	if message == "" {
		message = genericFailure
	}
	log.Println(message)
	for field, msgs := range errs {
		for _, m := range msgs {
			log.Printf("  %s: %s", field, m)
		}
	}
}
