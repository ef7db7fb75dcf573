// Code generated by ent, DO NOT EDIT.

package disorder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the disorder type in the database.
	Label = "disorder"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSymptoms holds the string denoting the symptoms field in the database.
	FieldSymptoms = "symptoms"
	// EdgeRemedies holds the string denoting the remedies edge name in mutations.
	EdgeRemedies = "remedies"
	// EdgeAssessments holds the string denoting the assessments edge name in mutations.
	EdgeAssessments = "assessments"
	// Table holds the table name of the disorder in the database.
	Table = "disorders"
	// RemediesTable is the table that holds the remedies relation/edge.
	RemediesTable = "remedies"
	// RemediesInverseTable is the table name for the Remedy entity.
	// It exists in this package in order to avoid circular dependency with the "remedy" package.
	RemediesInverseTable = "remedies"
	// RemediesColumn is the table column denoting the remedies relation/edge.
	RemediesColumn = "disorder_id"
	// AssessmentsTable is the table that holds the assessments relation/edge.
	AssessmentsTable = "assessments"
	// AssessmentsInverseTable is the table name for the Assessment entity.
	// It exists in this package in order to avoid circular dependency with the "assessment" package.
	AssessmentsInverseTable = "assessments"
	// AssessmentsColumn is the table column denoting the assessments relation/edge.
	AssessmentsColumn = "disorder_id"
)

// Columns holds all SQL columns for disorder fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldName,
	FieldDescription,
	FieldSymptoms,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
)

// OrderOption defines the ordering options for the Disorder queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySymptoms orders the results by the symptoms field.
func BySymptoms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymptoms, opts...).ToFunc()
}

// ByRemediesCount orders the results by remedies count.
func ByRemediesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRemediesStep(), opts...)
	}
}

// ByRemedies orders the results by remedies terms.
func ByRemedies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRemediesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssessmentsCount orders the results by assessments count.
func ByAssessmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssessmentsStep(), opts...)
	}
}

// ByAssessments orders the results by assessments terms.
func ByAssessments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssessmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRemediesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RemediesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RemediesTable, RemediesColumn),
	)
}
func newAssessmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssessmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssessmentsTable, AssessmentsColumn),
	)
}
