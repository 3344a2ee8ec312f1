package result

// Rank is the presentation tier for a finished test. It is derived from the
// score and never stored.
type Rank string

const (
	RankExcellent        Rank = "excellent"
	RankGood             Rank = "good"
	RankNeedsImprovement Rank = "needs_improvement"
	RankNeedsPractice    Rank = "needs_practice"
)

var rankLabels = map[Rank]string{
	RankExcellent:        "Xuất sắc",
	RankGood:             "Tốt",
	RankNeedsImprovement: "Cần cố gắng",
	RankNeedsPractice:    "Cần luyện tập thêm",
}

// Label is the Vietnamese text shown to the student.
func (r Rank) Label() string {
	return rankLabels[r]
}

// RankFor maps score/total to a tier. Each tier includes its lower bound,
// so 9/10 is excellent.
func RankFor(score, total int) Rank {
	if total <= 0 {
		return RankNeedsPractice
	}
	// integer comparisons keep the boundaries exact
	switch {
	case score*10 >= total*9:
		return RankExcellent
	case score*10 >= total*7:
		return RankGood
	case score*10 >= total*5:
		return RankNeedsImprovement
	default:
		return RankNeedsPractice
	}
}
