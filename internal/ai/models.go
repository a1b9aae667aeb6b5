package ai

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// DecodingConfig is the fixed set of generation parameters sent with every request.
type DecodingConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
	// ResponseMIMEType asks the service for structured output.
	ResponseMIMEType string
}

var defaultDecoding = DecodingConfig{
	Temperature:      1,
	TopP:             0.95,
	TopK:             40,
	MaxOutputTokens:  8192,
	ResponseMIMEType: "application/json",
}

// DefaultDecoding returns a copy of the process-wide decoding configuration.
func DefaultDecoding() DecodingConfig {
	return defaultDecoding
}
