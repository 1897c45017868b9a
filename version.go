package lipsum

// Version is the semantic version of the generation engine.
const Version = "0.4.0"

// EngineVersion returns Version. It exists for callers that consume the
// engine through a function table, such as the HTTP module.
func EngineVersion() string {
	return Version
}
