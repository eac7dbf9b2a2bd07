package api

import (
	"fmt"

	"github.com/wastezero/wastezero-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "invalid token",
		1003: "invalid email or password",
		1004: "this account has been suspended",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: "only requesters can create pickup requests",
		1103: "only volunteers can accept pickups",
		1104: "only volunteers or admins can complete pickups",
		1105: "volunteers cannot cancel pickups",
		1106: "admin access required",
		1107: "unsupported account role",

		1200: store.ErrPickupNotFound.Error(),
		1201: store.ErrPickupTaken.Error(),
		1202: store.ErrPickupNotAccepted.Error(),
		1203: store.ErrPickupClosed.Error(),
		1204: store.ErrNotAssignedVolunteer.Error(),
		1205: store.ErrNotPickupOwner.Error(),

		1300: "receiver not found",
		1301: store.ErrEmptyMessageContent.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1002)
	errorInvalidCredentials         = errorJSON(1003)
	errorAccountSuspended           = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
	errorOnlyRequesters  = errorJSON(1102)
	errorOnlyVolunteers  = errorJSON(1103)
	errorOnlyCompleters  = errorJSON(1104)
	errorVolunteerCancel = errorJSON(1105)
	errorAdminRequired   = errorJSON(1106)
	errorUnsupportedRole = errorJSON(1107)

	errorPickupNotFound       = errorJSON(1200)
	errorPickupTaken          = errorJSON(1201)
	errorPickupNotAccepted    = errorJSON(1202)
	errorPickupClosed         = errorJSON(1203)
	errorNotAssignedVolunteer = errorJSON(1204)
	errorNotPickupOwner       = errorJSON(1205)

	errorReceiverNotFound    = errorJSON(1300)
	errorEmptyMessageContent = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorMessageID is the i18n message key of an error code.
func errorMessageID(code int64) string {
	return fmt.Sprintf("errors.%d", code)
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
