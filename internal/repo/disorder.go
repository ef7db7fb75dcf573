// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
)

// Disorder is the model entity for the Disorder schema.
type Disorder struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Free-text symptom list
	Symptoms string `json:"symptoms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DisorderQuery when eager-loading is set.
	Edges        DisorderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DisorderEdges holds the relations/edges for other nodes in the graph.
type DisorderEdges struct {
	// Remedies holds the value of the remedies edge.
	Remedies []*Remedy `json:"remedies,omitempty"`
	// Assessments holds the value of the assessments edge.
	Assessments []*Assessment `json:"assessments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RemediesOrErr returns the Remedies value or an error if the edge
// was not loaded in eager-loading.
func (e DisorderEdges) RemediesOrErr() ([]*Remedy, error) {
	if e.loadedTypes[0] {
		return e.Remedies, nil
	}
	return nil, &NotLoadedError{edge: "remedies"}
}

// AssessmentsOrErr returns the Assessments value or an error if the edge
// was not loaded in eager-loading.
func (e DisorderEdges) AssessmentsOrErr() ([]*Assessment, error) {
	if e.loadedTypes[1] {
		return e.Assessments, nil
	}
	return nil, &NotLoadedError{edge: "assessments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Disorder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case disorder.FieldID:
			values[i] = new(sql.NullInt64)
		case disorder.FieldName, disorder.FieldDescription, disorder.FieldSymptoms:
			values[i] = new(sql.NullString)
		case disorder.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Disorder fields.
func (_m *Disorder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case disorder.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case disorder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case disorder.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case disorder.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case disorder.FieldSymptoms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symptoms", values[i])
			} else if value.Valid {
				_m.Symptoms = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Disorder.
// This includes values selected through modifiers, order, etc.
func (_m *Disorder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRemedies queries the "remedies" edge of the Disorder entity.
func (_m *Disorder) QueryRemedies() *RemedyQuery {
	return NewDisorderClient(_m.config).QueryRemedies(_m)
}

// QueryAssessments queries the "assessments" edge of the Disorder entity.
func (_m *Disorder) QueryAssessments() *AssessmentQuery {
	return NewDisorderClient(_m.config).QueryAssessments(_m)
}

// Update returns a builder for updating this Disorder.
// Note that you need to call Disorder.Unwrap() before calling this method if this Disorder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Disorder) Update() *DisorderUpdateOne {
	return NewDisorderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Disorder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Disorder) Unwrap() *Disorder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Disorder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Disorder) String() string {
	var builder strings.Builder
	builder.WriteString("Disorder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("symptoms=")
	builder.WriteString(_m.Symptoms)
	builder.WriteByte(')')
	return builder.String()
}

// Disorders is a parsable slice of Disorder.
type Disorders []*Disorder
