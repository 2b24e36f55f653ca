package tagid

const (
	errorCodeUnknownKind  = "tagid.unknown_kind"
	errorCodeSourceFailed = "tagid.source_failed"
	errorCodeInvalidRange = "tagid.invalid_range"
)

const (
	errorMessageUnknownKind  = "unknown tag kind"
	errorMessageSourceFailed = "random source failed"
	errorMessageInvalidRange = "range width must be positive"
)
