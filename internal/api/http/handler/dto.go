package handler

import (
	"time"

	"github.com/mindcare/mindcare_backend/internal/repo"
)

// Response DTOs pin the wire format to the table columns. The generated
// entities also marshal their Edges struct, which is not part of the API.

type disorderResponse struct {
	ID          int       `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Symptoms    string    `json:"symptoms"`
}

func newDisorderResponse(d *repo.Disorder) disorderResponse {
	return disorderResponse{
		ID:          d.ID,
		CreatedAt:   d.CreatedAt,
		Name:        d.Name,
		Description: d.Description,
		Symptoms:    d.Symptoms,
	}
}

func newDisorderList(ds []*repo.Disorder) []disorderResponse {
	out := make([]disorderResponse, len(ds))
	for i, d := range ds {
		out[i] = newDisorderResponse(d)
	}
	return out
}

type assessmentResponse struct {
	ID            int       `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	SessionID     string    `json:"session_id"`
	Answers       string    `json:"answers"`
	Result        string    `json:"result"`
	SeverityScore float64   `json:"severity_score"`
	DisorderID    *int      `json:"disorder_id"`
}

func newAssessmentResponse(a *repo.Assessment) assessmentResponse {
	return assessmentResponse{
		ID:            a.ID,
		CreatedAt:     a.CreatedAt,
		SessionID:     a.SessionID,
		Answers:       a.Answers,
		Result:        a.Result,
		SeverityScore: a.SeverityScore,
		DisorderID:    a.DisorderID,
	}
}

func newAssessmentList(as []*repo.Assessment) []assessmentResponse {
	out := make([]assessmentResponse, len(as))
	for i, a := range as {
		out[i] = newAssessmentResponse(a)
	}
	return out
}

type remedyResponse struct {
	ID          int       `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	DisorderID  int       `json:"disorder_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
}

func newRemedyResponse(r *repo.Remedy) remedyResponse {
	return remedyResponse{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		DisorderID:  r.DisorderID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
}

func newRemedyList(rs []*repo.Remedy) []remedyResponse {
	out := make([]remedyResponse, len(rs))
	for i, r := range rs {
		out[i] = newRemedyResponse(r)
	}
	return out
}

type questionResponse struct {
	ID         int       `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	Weight     int       `json:"weight"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
}

func newQuestionResponse(q *repo.Question) questionResponse {
	return questionResponse{
		ID:         q.ID,
		CreatedAt:  q.CreatedAt,
		Text:       q.Text,
		Category:   q.Category,
		Weight:     q.Weight,
		OrderIndex: q.OrderIndex,
		IsActive:   q.IsActive,
	}
}

func newQuestionList(qs []*repo.Question) []questionResponse {
	out := make([]questionResponse, len(qs))
	for i, q := range qs {
		out[i] = newQuestionResponse(q)
	}
	return out
}
