// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mindcare/mindcare_backend/internal/repo/assessment"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
)

// Assessment is the model entity for the Assessment schema.
type Assessment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Anonymous session tracking
	SessionID string `json:"session_id,omitempty"`
	// Serialized raw responses
	Answers string `json:"answers,omitempty"`
	// Outcome label, e.g. 'low', 'medium', 'high'
	Result string `json:"result,omitempty"`
	// 0-5 scale
	SeverityScore float64 `json:"severity_score,omitempty"`
	// FK → disorders.id, NULL when no disorder is suggested
	DisorderID *int `json:"disorder_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentQuery when eager-loading is set.
	Edges        AssessmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentEdges holds the relations/edges for other nodes in the graph.
type AssessmentEdges struct {
	// Disorder holds the value of the disorder edge.
	Disorder *Disorder `json:"disorder,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DisorderOrErr returns the Disorder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentEdges) DisorderOrErr() (*Disorder, error) {
	if e.Disorder != nil {
		return e.Disorder, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: disorder.Label}
	}
	return nil, &NotLoadedError{edge: "disorder"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessment.FieldSeverityScore:
			values[i] = new(sql.NullFloat64)
		case assessment.FieldID, assessment.FieldDisorderID:
			values[i] = new(sql.NullInt64)
		case assessment.FieldSessionID, assessment.FieldAnswers, assessment.FieldResult:
			values[i] = new(sql.NullString)
		case assessment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assessment fields.
func (_m *Assessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assessment.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case assessment.FieldAnswers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value.Valid {
				_m.Answers = value.String
			}
		case assessment.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		case assessment.FieldSeverityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field severity_score", values[i])
			} else if value.Valid {
				_m.SeverityScore = value.Float64
			}
		case assessment.FieldDisorderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field disorder_id", values[i])
			} else if value.Valid {
				_m.DisorderID = new(int)
				*_m.DisorderID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assessment.
// This includes values selected through modifiers, order, etc.
func (_m *Assessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDisorder queries the "disorder" edge of the Assessment entity.
func (_m *Assessment) QueryDisorder() *DisorderQuery {
	return NewAssessmentClient(_m.config).QueryDisorder(_m)
}

// Update returns a builder for updating this Assessment.
// Note that you need to call Assessment.Unwrap() before calling this method if this Assessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assessment) Update() *AssessmentUpdateOne {
	return NewAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assessment) Unwrap() *Assessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Assessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assessment) String() string {
	var builder strings.Builder
	builder.WriteString("Assessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(_m.Answers)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteString(", ")
	builder.WriteString("severity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityScore))
	builder.WriteString(", ")
	if v := _m.DisorderID; v != nil {
		builder.WriteString("disorder_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Assessments is a parsable slice of Assessment.
type Assessments []*Assessment
