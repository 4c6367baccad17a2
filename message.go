package syserr

// successMessage is the description of code 0 on platforms whose message
// tables have no entry for it.
const successMessage = "Success"

// lookupConfig holds the settings applied to a single Lookup call.
type lookupConfig struct {
	langID uint32
}

// LookupOption configures Lookup.
type LookupOption func(*lookupConfig)

// WithLanguage selects the Windows language identifier (LANGID) used to
// render the message. Zero means the system default search order. When the
// requested language has no message table the default is used instead.
// Platforms without localized message tables ignore the option.
func WithLanguage(langID uint32) LookupOption {
	return func(c *lookupConfig) {
		c.langID = langID
	}
}

// Lookup returns the platform's human-readable description of code.
// It always returns a non-empty string: codes the platform cannot resolve
// produce "Unknown error (0x<hex>)".
//
// Example:
//
//	msg := syserr.Lookup(2) // "The system cannot find the file specified." on Windows
func Lookup(code Code, opts ...LookupOption) string {
	var cfg lookupConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if msg, ok := platformMessage(code, cfg.langID); ok && msg != "" {
		return msg
	}
	return unknownMessage(code)
}

// unknownMessage is the generic fallback for codes without a description.
func unknownMessage(code Code) string {
	return "Unknown error (" + code.Hex() + ")"
}
