package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOTFOUND          = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_UNAUTHORIZED      = "error.unauthorized"
	ERROR_FORBIDDEN         = "error.forbidden"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"
	ERROR_EXIST             = "error.exist"

	ERROR_INVALID_TOKEN   = "error.invalid.token"
	ERROR_INVALID_ACCOUNT = "error.invalid.account"

	ERROR_ENTRY_EXISTS_TODAY = "error.journal.entry_exists_today"
)
