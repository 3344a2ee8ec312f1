package testsession

import (
	"math/rand"
	"time"

	"github.com/englishk12/backend/internal/domain/settings"
)

// SessionConfig holds the inputs read when a test starts.
type SessionConfig struct {
	QuestionsPerTest int              // upper bound on sampled questions
	Rand             *rand.Rand       // nil = shared math/rand source
	Now              func() time.Time // nil = time.Now
}

// ConfigFrom takes the question count from the saved settings, with
// wall-clock randomness and time.
func ConfigFrom(st settings.AppSettings) SessionConfig {
	return SessionConfig{QuestionsPerTest: st.QuestionsPerTest}
}
