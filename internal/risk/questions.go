// Package risk scores the risk-tolerance questionnaire and maps the total to
// an investor profile.
package risk

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// AnswerSet maps a question id to the chosen option value.
type AnswerSet map[string]string

// Questions is the fixed questionnaire, in presentation order.
var Questions = []Question{
	{
		ID:     "experience",
		Prompt: "How familiar are you with investing?",
		Options: []Option{
			{Value: "beginner", Label: "Beginner", Score: 1},
			{Value: "some", Label: "Some Experience", Score: 2},
			{Value: "experienced", Label: "Very Experienced", Score: 3},
		},
	},
	{
		ID:     "risk",
		Prompt: "How would you react if your portfolio lost 20% in a short time?",
		Options: []Option{
			{Value: "sell", Label: "Sell everything", Score: 1},
			{Value: "wait", Label: "Wait it out", Score: 2},
			{Value: "buy", Label: "Buy more while it's low", Score: 3},
		},
	},
	{
		ID:     "goal",
		Prompt: "What is your primary goal for investing?",
		Options: []Option{
			{Value: "preserve", Label: "Capital preservation", Score: 1},
			{Value: "balanced", Label: "Balanced growth", Score: 2},
			{Value: "aggressive", Label: "Aggressive growth", Score: 3},
		},
	},
	{
		ID:     "timeHorizon",
		Prompt: "When do you plan to use this money?",
		Options: []Option{
			{Value: "short", Label: "Within 3 years", Score: 1},
			{Value: "medium", Label: "3 to 10 years", Score: 2},
			{Value: "long", Label: "More than 10 years", Score: 3},
		},
	},
	{
		ID:     "volatility",
		Prompt: "Would you accept more short-term ups and downs for the chance of higher returns?",
		Options: []Option{
			{Value: "no", Label: "No", Score: 1},
			{Value: "maybe", Label: "Maybe", Score: 2},
			{Value: "yes", Label: "Yes", Score: 3},
		},
	},
}

// Option returns the option of q whose value is v.
func (q Question) Option(v string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == v {
			return o, true
		}
	}
	return Option{}, false
}

func questionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
