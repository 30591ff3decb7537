package dto

import (
	"net/url"

	"restate/shared/constant"
	"restate/shared/failure"
)

// Callback is the typed result of parsing the terminal OAuth redirect
// URL.
type Callback struct {
	UserID string
	Secret string
}

// ParseCallback extracts the one-time token parameters from the terminal
// redirect URL. An unparsable URL and missing parameters are distinct
// failures so the login flow can report them apart.
func ParseCallback(rawURL string) (Callback, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Callback{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	params := parsed.Query()

	callback := Callback{
		UserID: params.Get(constant.CallbackParamUserID),
		Secret: params.Get(constant.CallbackParamSecret),
	}

	if callback.UserID == "" || callback.Secret == "" {
		return Callback{}, failure.MissingCallbackParams
	}

	return callback, nil
}
