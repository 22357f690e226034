package dialect

// Built-in dialects. The Java dialect doubles as the fallback for any
// extension no dialect claims, matching the engine's own default.

func init() {
	Register(&Dialect{
		ID:         "java",
		Extensions: []string{"java"},
		VersionKey: "java",
	})
	Register(&Dialect{
		ID:         "kotlin",
		Extensions: []string{"kt", "kts"},
		VersionKey: "kotlin",
	})
}
