// Code generated by ent, DO NOT EDIT.

package remedy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the remedy type in the database.
	Label = "remedy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDisorderID holds the string denoting the disorder_id field in the database.
	FieldDisorderID = "disorder_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// EdgeDisorder holds the string denoting the disorder edge name in mutations.
	EdgeDisorder = "disorder"
	// Table holds the table name of the remedy in the database.
	Table = "remedies"
	// DisorderTable is the table that holds the disorder relation/edge.
	DisorderTable = "remedies"
	// DisorderInverseTable is the table name for the Disorder entity.
	// It exists in this package in order to avoid circular dependency with the "disorder" package.
	DisorderInverseTable = "disorders"
	// DisorderColumn is the table column denoting the disorder relation/edge.
	DisorderColumn = "disorder_id"
)

// Columns holds all SQL columns for remedy fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDisorderID,
	FieldTitle,
	FieldDescription,
	FieldCategory,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
)

// OrderOption defines the ordering options for the Remedy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDisorderID orders the results by the disorder_id field.
func ByDisorderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisorderID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
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
