package risk

const (
	conservativeMax = 8
	moderateMax     = 12
)

type Result struct {
	Score    int         `json:"score"`
	MaxScore int         `json:"max_score"`
	Profile  Profile     `json:"profile"`
	Data     ProfileData `json:"data"`
}

// Score sums the option scores of answers. An answer that matches no option,
// or a missing answer, contributes zero.
func Score(answers AnswerSet) int {
	total := 0
	for _, q := range Questions {
		if o, ok := q.Option(answers[q.ID]); ok {
			total += o.Score
		}
	}
	return total
}

// Classify maps a total score to a profile: <=8 Conservative, 9..12
// Moderate, >=13 Aggressive.
func Classify(total int) Profile {
	switch {
	case total <= conservativeMax:
		return Conservative
	case total <= moderateMax:
		return Moderate
	default:
		return Aggressive
	}
}

// Assess scores a complete answer set. Callers gate on Missing first.
func Assess(answers AnswerSet) Result {
	total := Score(answers)
	p := Classify(total)
	_, highest := ScoreRange()
	return Result{Score: total, MaxScore: highest, Profile: p, Data: DataFor(p)}
}

// Missing returns the ids of unanswered questions in presentation order.
func Missing(answers AnswerSet) []string {
	var missing []string
	for _, q := range Questions {
		if answers[q.ID] == "" {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Invalid returns the ids of questions whose answer is not one of the options.
func Invalid(answers AnswerSet) []string {
	var invalid []string
	for _, q := range Questions {
		v, ok := answers[q.ID]
		if !ok || v == "" {
			continue
		}
		if _, ok := q.Option(v); !ok {
			invalid = append(invalid, q.ID)
		}
	}
	return invalid
}

// ScoreRange reports the lowest and highest achievable totals.
func ScoreRange() (lowest, highest int) {
	for _, q := range Questions {
		lo, hi := q.Options[0].Score, q.Options[0].Score
		for _, o := range q.Options[1:] {
			if o.Score < lo {
				lo = o.Score
			}
			if o.Score > hi {
				hi = o.Score
			}
		}
		lowest += lo
		highest += hi
	}
	return lowest, highest
}
