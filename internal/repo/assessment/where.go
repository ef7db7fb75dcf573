// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mindcare/mindcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSessionID, v))
}

// Answers applies equality check predicate on the "answers" field. It's identical to AnswersEQ.
func Answers(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAnswers, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldResult, v))
}

// SeverityScore applies equality check predicate on the "severity_score" field. It's identical to SeverityScoreEQ.
func SeverityScore(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSeverityScore, v))
}

// DisorderID applies equality check predicate on the "disorder_id" field. It's identical to DisorderIDEQ.
func DisorderID(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldDisorderID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldSessionID, v))
}

// AnswersEQ applies the EQ predicate on the "answers" field.
func AnswersEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAnswers, v))
}

// AnswersNEQ applies the NEQ predicate on the "answers" field.
func AnswersNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldAnswers, v))
}

// AnswersIn applies the In predicate on the "answers" field.
func AnswersIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldAnswers, vs...))
}

// AnswersNotIn applies the NotIn predicate on the "answers" field.
func AnswersNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldAnswers, vs...))
}

// AnswersGT applies the GT predicate on the "answers" field.
func AnswersGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldAnswers, v))
}

// AnswersGTE applies the GTE predicate on the "answers" field.
func AnswersGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldAnswers, v))
}

// AnswersLT applies the LT predicate on the "answers" field.
func AnswersLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldAnswers, v))
}

// AnswersLTE applies the LTE predicate on the "answers" field.
func AnswersLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldAnswers, v))
}

// AnswersContains applies the Contains predicate on the "answers" field.
func AnswersContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldAnswers, v))
}

// AnswersHasPrefix applies the HasPrefix predicate on the "answers" field.
func AnswersHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldAnswers, v))
}

// AnswersHasSuffix applies the HasSuffix predicate on the "answers" field.
func AnswersHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldAnswers, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldAnswers))
}

// AnswersEqualFold applies the EqualFold predicate on the "answers" field.
func AnswersEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldAnswers, v))
}

// AnswersContainsFold applies the ContainsFold predicate on the "answers" field.
func AnswersContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldAnswers, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldResult, v))
}

// SeverityScoreEQ applies the EQ predicate on the "severity_score" field.
func SeverityScoreEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSeverityScore, v))
}

// SeverityScoreNEQ applies the NEQ predicate on the "severity_score" field.
func SeverityScoreNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldSeverityScore, v))
}

// SeverityScoreIn applies the In predicate on the "severity_score" field.
func SeverityScoreIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldSeverityScore, vs...))
}

// SeverityScoreNotIn applies the NotIn predicate on the "severity_score" field.
func SeverityScoreNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldSeverityScore, vs...))
}

// SeverityScoreGT applies the GT predicate on the "severity_score" field.
func SeverityScoreGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldSeverityScore, v))
}

// SeverityScoreGTE applies the GTE predicate on the "severity_score" field.
func SeverityScoreGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldSeverityScore, v))
}

// SeverityScoreLT applies the LT predicate on the "severity_score" field.
func SeverityScoreLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldSeverityScore, v))
}

// SeverityScoreLTE applies the LTE predicate on the "severity_score" field.
func SeverityScoreLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldSeverityScore, v))
}

// DisorderIDEQ applies the EQ predicate on the "disorder_id" field.
func DisorderIDEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldDisorderID, v))
}

// DisorderIDNEQ applies the NEQ predicate on the "disorder_id" field.
func DisorderIDNEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldDisorderID, v))
}

// DisorderIDIn applies the In predicate on the "disorder_id" field.
func DisorderIDIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldDisorderID, vs...))
}

// DisorderIDNotIn applies the NotIn predicate on the "disorder_id" field.
func DisorderIDNotIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldDisorderID, vs...))
}

// DisorderIDIsNil applies the IsNil predicate on the "disorder_id" field.
func DisorderIDIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldDisorderID))
}

// DisorderIDNotNil applies the NotNil predicate on the "disorder_id" field.
func DisorderIDNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldDisorderID))
}

// HasDisorder applies the HasEdge predicate on the "disorder" edge.
func HasDisorder() predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DisorderTable, DisorderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDisorderWith applies the HasEdge predicate on the "disorder" edge with a given conditions (other predicates).
func HasDisorderWith(preds ...predicate.Disorder) predicate.Assessment {
	return predicate.Assessment(func(s *sql.Selector) {
		step := newDisorderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
