package risk

import (
	"errors"
	"sync"
)

var (
	ErrUnanswered    = errors.New("current question is unanswered")
	ErrUnknownOption = errors.New("answer is not an option of the current question")
	ErrFirstQuestion = errors.New("already at the first question")
	ErrCompleted     = errors.New("questionnaire is completed")
)

// Questionnaire walks the questions one at a time. It sits either on
// Question(i) or in Completed; Next never skips a question and only scores
// once every question has an answer. Safe for concurrent use.
type Questionnaire struct {
	mu          sync.Mutex
	step        int
	answers     AnswerSet
	result      *Result
	onCompleted func(Result)
}

// NewQuestionnaire starts at the first question. onCompleted, when non-nil,
// is called with the result each time the questionnaire completes; it runs
// after the internal lock is released.
func NewQuestionnaire(onCompleted func(Result)) *Questionnaire {
	return &Questionnaire{
		answers:     AnswerSet{},
		onCompleted: onCompleted,
	}
}

// State is a point-in-time copy of a questionnaire.
type State struct {
	Step      int       `json:"step"`
	Total     int       `json:"total"`
	Progress  int       `json:"progress"`
	Question  *Question `json:"question,omitempty"`
	Answer    string    `json:"answer,omitempty"`
	Answers   AnswerSet `json:"answers"`
	CanNext   bool      `json:"can_next"`
	CanBack   bool      `json:"can_back"`
	Completed bool      `json:"completed"`
	Result    *Result   `json:"result,omitempty"`
}

func (q *Questionnaire) Snapshot() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot()
}

func (q *Questionnaire) snapshot() State {
	answers := make(AnswerSet, len(q.answers))
	for k, v := range q.answers {
		answers[k] = v
	}

	s := State{
		Step:      q.step,
		Total:     len(Questions),
		Progress:  (q.step + 1) * 100 / len(Questions),
		Answers:   answers,
		Completed: q.result != nil,
	}
	if q.result != nil {
		r := *q.result
		r.Data = DataFor(r.Profile)
		s.Result = &r
		s.Progress = 100
		return s
	}

	cur := Questions[q.step]
	s.Question = &cur
	s.Answer = q.answers[cur.ID]
	s.CanNext = s.Answer != ""
	s.CanBack = q.step > 0
	return s
}

// Answer records value for the current question, replacing any earlier choice.
func (q *Questionnaire) Answer(value string) (State, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.result != nil {
		return q.snapshot(), ErrCompleted
	}
	cur := Questions[q.step]
	if _, ok := cur.Option(value); !ok {
		return q.snapshot(), ErrUnknownOption
	}
	q.answers[cur.ID] = value
	return q.snapshot(), nil
}

// Next advances to the following question, or completes and scores the
// questionnaire when called on the last one.
func (q *Questionnaire) Next() (State, error) {
	q.mu.Lock()

	if q.result != nil {
		s := q.snapshot()
		q.mu.Unlock()
		return s, ErrCompleted
	}
	if q.answers[Questions[q.step].ID] == "" {
		s := q.snapshot()
		q.mu.Unlock()
		return s, ErrUnanswered
	}

	if q.step < len(Questions)-1 {
		q.step++
		s := q.snapshot()
		q.mu.Unlock()
		return s, nil
	}

	result := Assess(q.answers)
	q.result = &result
	s := q.snapshot()
	notify := q.onCompleted
	q.mu.Unlock()

	if notify != nil {
		notify(result)
	}
	return s, nil
}

func (q *Questionnaire) Back() (State, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.result != nil {
		return q.snapshot(), ErrCompleted
	}
	if q.step == 0 {
		return q.snapshot(), ErrFirstQuestion
	}
	q.step--
	return q.snapshot(), nil
}

// Reset clears every answer and returns to the first question.
func (q *Questionnaire) Reset() State {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.step = 0
	q.answers = AnswerSet{}
	q.result = nil
	return q.snapshot()
}
