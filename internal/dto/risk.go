package dto

type AssessRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type AnswerRequest struct {
	Value string `json:"value" validate:"required"`
}

type SessionParam struct {
	ID string `param:"id" validate:"required,uuid"`
}
