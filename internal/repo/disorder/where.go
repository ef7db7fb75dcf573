// Code generated by ent, DO NOT EDIT.

package disorder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mindcare/mindcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Disorder {
	return predicate.Disorder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Disorder {
	return predicate.Disorder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Disorder {
	return predicate.Disorder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Disorder {
	return predicate.Disorder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Disorder {
	return predicate.Disorder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Disorder {
	return predicate.Disorder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Disorder {
	return predicate.Disorder(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldCreatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldDescription, v))
}

// Symptoms applies equality check predicate on the "symptoms" field. It's identical to SymptomsEQ.
func Symptoms(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldSymptoms, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Disorder {
	return predicate.Disorder(sql.FieldLTE(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Disorder {
	return predicate.Disorder(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Disorder {
	return predicate.Disorder(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Disorder {
	return predicate.Disorder(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Disorder {
	return predicate.Disorder(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Disorder {
	return predicate.Disorder(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Disorder {
	return predicate.Disorder(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldContainsFold(FieldDescription, v))
}

// SymptomsEQ applies the EQ predicate on the "symptoms" field.
func SymptomsEQ(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEQ(FieldSymptoms, v))
}

// SymptomsNEQ applies the NEQ predicate on the "symptoms" field.
func SymptomsNEQ(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldNEQ(FieldSymptoms, v))
}

// SymptomsIn applies the In predicate on the "symptoms" field.
func SymptomsIn(vs ...string) predicate.Disorder {
	return predicate.Disorder(sql.FieldIn(FieldSymptoms, vs...))
}

// SymptomsNotIn applies the NotIn predicate on the "symptoms" field.
func SymptomsNotIn(vs ...string) predicate.Disorder {
	return predicate.Disorder(sql.FieldNotIn(FieldSymptoms, vs...))
}

// SymptomsGT applies the GT predicate on the "symptoms" field.
func SymptomsGT(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldGT(FieldSymptoms, v))
}

// SymptomsGTE applies the GTE predicate on the "symptoms" field.
func SymptomsGTE(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldGTE(FieldSymptoms, v))
}

// SymptomsLT applies the LT predicate on the "symptoms" field.
func SymptomsLT(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldLT(FieldSymptoms, v))
}

// SymptomsLTE applies the LTE predicate on the "symptoms" field.
func SymptomsLTE(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldLTE(FieldSymptoms, v))
}

// SymptomsContains applies the Contains predicate on the "symptoms" field.
func SymptomsContains(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldContains(FieldSymptoms, v))
}

// SymptomsHasPrefix applies the HasPrefix predicate on the "symptoms" field.
func SymptomsHasPrefix(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldHasPrefix(FieldSymptoms, v))
}

// SymptomsHasSuffix applies the HasSuffix predicate on the "symptoms" field.
func SymptomsHasSuffix(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldHasSuffix(FieldSymptoms, v))
}

// SymptomsIsNil applies the IsNil predicate on the "symptoms" field.
func SymptomsIsNil() predicate.Disorder {
	return predicate.Disorder(sql.FieldIsNull(FieldSymptoms))
}

// SymptomsNotNil applies the NotNil predicate on the "symptoms" field.
func SymptomsNotNil() predicate.Disorder {
	return predicate.Disorder(sql.FieldNotNull(FieldSymptoms))
}

// SymptomsEqualFold applies the EqualFold predicate on the "symptoms" field.
func SymptomsEqualFold(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldEqualFold(FieldSymptoms, v))
}

// SymptomsContainsFold applies the ContainsFold predicate on the "symptoms" field.
func SymptomsContainsFold(v string) predicate.Disorder {
	return predicate.Disorder(sql.FieldContainsFold(FieldSymptoms, v))
}

// HasRemedies applies the HasEdge predicate on the "remedies" edge.
func HasRemedies() predicate.Disorder {
	return predicate.Disorder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RemediesTable, RemediesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRemediesWith applies the HasEdge predicate on the "remedies" edge with a given conditions (other predicates).
func HasRemediesWith(preds ...predicate.Remedy) predicate.Disorder {
	return predicate.Disorder(func(s *sql.Selector) {
		step := newRemediesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssessments applies the HasEdge predicate on the "assessments" edge.
func HasAssessments() predicate.Disorder {
	return predicate.Disorder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssessmentsTable, AssessmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssessmentsWith applies the HasEdge predicate on the "assessments" edge with a given conditions (other predicates).
func HasAssessmentsWith(preds ...predicate.Assessment) predicate.Disorder {
	return predicate.Disorder(func(s *sql.Selector) {
		step := newAssessmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Disorder) predicate.Disorder {
	return predicate.Disorder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Disorder) predicate.Disorder {
	return predicate.Disorder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Disorder) predicate.Disorder {
	return predicate.Disorder(sql.NotPredicates(p))
}
