package settings

// Hint bounds for QuestionsPerTest. They are surfaced to clients but not enforced.
const (
	MinQuestionsPerTest     = 5
	MaxQuestionsPerTest     = 50
	DefaultQuestionsPerTest = 10
)

// AppSettings is the single teacher-editable configuration record.
type AppSettings struct {
	QuestionsPerTest int `json:"questionsPerTest"`
}

func Default() AppSettings {
	return AppSettings{QuestionsPerTest: DefaultQuestionsPerTest}
}

// WithinHint reports whether the value sits inside the recommended range.
func (s AppSettings) WithinHint() bool {
	return s.QuestionsPerTest >= MinQuestionsPerTest && s.QuestionsPerTest <= MaxQuestionsPerTest
}
