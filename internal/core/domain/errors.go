package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyTitle is returned when the text of a title is empty after normalisation.
	ErrEmptyTitle = zerr.New("title is empty")

	// ErrIllegalCharacters is returned when a title contains characters that may not appear in page names.
	ErrIllegalCharacters = zerr.New("title contains illegal characters")

	// ErrTitleTooLong is returned when the text of a title exceeds MaxTitleBytes.
	ErrTitleTooLong = zerr.New("title is too long")

	// ErrLeadingColon is returned when a title still starts with a colon after the first one is stripped.
	ErrLeadingColon = zerr.New("title has more than one leading colon")

	// ErrRelativeTitle is returned for "." and ".." style titles.
	ErrRelativeTitle = zerr.New("title is a relative path")

	// ErrUnresolvableValue is returned by Format when a value cannot be turned into a title.
	ErrUnresolvableValue = zerr.New("could not resolve value to a title")

	// ErrInvalidOption is returned when a parameter option has the wrong type.
	ErrInvalidOption = zerr.New("invalid parameter option")

	// ErrUnsupportedParamType is returned when a manifest declares a parameter type other than "title".
	ErrUnsupportedParamType = zerr.New("unsupported parameter type")

	// ErrUnknownParam is returned when an argument names a parameter that is not declared.
	ErrUnknownParam = zerr.New("unknown parameter")

	// ErrMissingParam is returned when a parameter without a default is not supplied.
	ErrMissingParam = zerr.New("missing required parameter")

	// ErrInvalidArgument is returned when an argument is not in name=value form.
	ErrInvalidArgument = zerr.New("argument must be in name=value form")

	// ErrValidationFailed is returned by the app when a supplied value does not validate.
	ErrValidationFailed = zerr.New("parameter value is not valid")

	// ErrConfigReadFailed is returned when the manifest file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the manifest file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrIndexReadFailed is returned when the page index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read page index")

	// ErrIndexWriteFailed is returned when the page index cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write page index")
)
