// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the assessment type in the database.
	Label = "assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldSeverityScore holds the string denoting the severity_score field in the database.
	FieldSeverityScore = "severity_score"
	// FieldDisorderID holds the string denoting the disorder_id field in the database.
	FieldDisorderID = "disorder_id"
	// EdgeDisorder holds the string denoting the disorder edge name in mutations.
	EdgeDisorder = "disorder"
	// Table holds the table name of the assessment in the database.
	Table = "assessments"
	// DisorderTable is the table that holds the disorder relation/edge.
	DisorderTable = "assessments"
	// DisorderInverseTable is the table name for the Disorder entity.
	// It exists in this package in order to avoid circular dependency with the "disorder" package.
	DisorderInverseTable = "disorders"
	// DisorderColumn is the table column denoting the disorder relation/edge.
	DisorderColumn = "disorder_id"
)

// Columns holds all SQL columns for assessment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSessionID,
	FieldAnswers,
	FieldResult,
	FieldSeverityScore,
	FieldDisorderID,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ResultValidator is a validator for the "result" field. It is called by the builders before save.
	ResultValidator func(string) error
	// DefaultSeverityScore holds the default value on creation for the "severity_score" field.
	DefaultSeverityScore float64
)

// OrderOption defines the ordering options for the Assessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAnswers orders the results by the answers field.
func ByAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswers, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// BySeverityScore orders the results by the severity_score field.
func BySeverityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityScore, opts...).ToFunc()
}

// ByDisorderID orders the results by the disorder_id field.
func ByDisorderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisorderID, opts...).ToFunc()
}

// ByDisorderField orders the results by disorder field.
func ByDisorderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDisorderStep(), sql.OrderByField(field, opts...))
	}
}
func newDisorderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DisorderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DisorderTable, DisorderColumn),
	)
}
