// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorMessages = func(err error) []string {
		entries := collectErrorEntries(err)
		if entries == nil {
			return nil
		}
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.message
		}
		return out
	}
	FormatError = func(err error) string {
		return formatErrorEntries(collectErrorEntries(err))
	}
)
