package models

import "time"

// Question is Open while Advice is empty and Answered once it is set.
type Question struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"questionText" json:"questionText"`
	Category  string    `bson:"category" json:"category"`
	City      string    `bson:"city" json:"city"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	AskedBy   string    `bson:"askedBy" json:"askedBy"`
	Advice    string    `bson:"advice,omitempty" json:"advice,omitempty"`
}

func (q *Question) Answered() bool {
	return q.Advice != ""
}

// Advice answers exactly one question.
type Advice struct {
	ID         string    `bson:"id" json:"id"`
	Text       string    `bson:"adviceText" json:"adviceText"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	AnsweredBy string    `bson:"answeredBy" json:"answeredBy"`
	QuestionID string    `bson:"questionId" json:"questionId"`
}

// QuestionInput is what a client submits.
type QuestionInput struct {
	Text     string
	Category string
	City     string
}

// QuestionView is a question with its references resolved for rendering.
type QuestionView struct {
	Question     Question `json:"question"`
	AskerName    string   `json:"askerName"`
	Advice       *Advice  `json:"advice,omitempty"`
	AnswererName string   `json:"answererName,omitempty"`
}
