package config

const (
	// MaxPromptNameLength is the maximum length for prompt names.
	// Names are shown in a table column, so they stay short.
	MaxPromptNameLength = 255

	// MaxBusinessNameLength is the maximum length for business names.
	MaxBusinessNameLength = 255

	// MaxLocationIDLength is the maximum length for location identifiers.
	MaxLocationIDLength = 255

	// MaxRequestBodyBytes caps JSON request bodies. Knowledgebase and
	// inventory payloads can be large, so this is generous.
	MaxRequestBodyBytes = 10 << 20
)
