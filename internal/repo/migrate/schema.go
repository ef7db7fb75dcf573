// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Size: 255},
		{Name: "answers", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "severity_score", Type: field.TypeFloat64, Default: 0},
		{Name: "disorder_id", Type: field.TypeInt, Nullable: true},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assessments_disorders_assessments",
				Columns:    []*schema.Column{AssessmentsColumns[6]},
				RefColumns: []*schema.Column{DisordersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// DisordersColumns holds the columns for the "disorders" table.
	DisordersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "symptoms", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// DisordersTable holds the schema information for the "disorders" table.
	DisordersTable = &schema.Table{
		Name:       "disorders",
		Columns:    DisordersColumns,
		PrimaryKey: []*schema.Column{DisordersColumns[0]},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "weight", Type: field.TypeInt, Default: 1},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
	}
	// RemediesColumns holds the columns for the "remedies" table.
	RemediesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "disorder_id", Type: field.TypeInt},
	}
	// RemediesTable holds the schema information for the "remedies" table.
	RemediesTable = &schema.Table{
		Name:       "remedies",
		Columns:    RemediesColumns,
		PrimaryKey: []*schema.Column{RemediesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "remedies_disorders_remedies",
				Columns:    []*schema.Column{RemediesColumns[5]},
				RefColumns: []*schema.Column{DisordersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		DisordersTable,
		QuestionsTable,
		RemediesTable,
	}
)

func init() {
	AssessmentsTable.ForeignKeys[0].RefTable = DisordersTable
	RemediesTable.ForeignKeys[0].RefTable = DisordersTable
}
