package domain

// Language identifies a supported submission language. The mapping from a
// language to the execution backend's versioned runtime id is owned by
// configuration, not by the domain.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCpp        Language = "cpp"
	LanguageGo         Language = "go"
)

// Supported reports whether the language is one the platform judges.
func (l Language) Supported() bool {
	switch l {
	case LanguagePython, LanguageJavaScript, LanguageJava, LanguageCpp, LanguageGo:
		return true
	}
	return false
}
