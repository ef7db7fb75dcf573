// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

// Remedy is the model entity for the Remedy schema.
type Remedy struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → disorders.id
	DisorderID int `json:"disorder_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// e.g. 'therapy', 'medication', 'lifestyle'
	Category string `json:"category,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RemedyQuery when eager-loading is set.
	Edges        RemedyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RemedyEdges holds the relations/edges for other nodes in the graph.
type RemedyEdges struct {
	// Disorder holds the value of the disorder edge.
	Disorder *Disorder `json:"disorder,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DisorderOrErr returns the Disorder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RemedyEdges) DisorderOrErr() (*Disorder, error) {
	if e.Disorder != nil {
		return e.Disorder, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: disorder.Label}
	}
	return nil, &NotLoadedError{edge: "disorder"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Remedy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case remedy.FieldID, remedy.FieldDisorderID:
			values[i] = new(sql.NullInt64)
		case remedy.FieldTitle, remedy.FieldDescription, remedy.FieldCategory:
			values[i] = new(sql.NullString)
		case remedy.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Remedy fields.
func (_m *Remedy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case remedy.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case remedy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case remedy.FieldDisorderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field disorder_id", values[i])
			} else if value.Valid {
				_m.DisorderID = int(value.Int64)
			}
		case remedy.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case remedy.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case remedy.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Remedy.
// This includes values selected through modifiers, order, etc.
func (_m *Remedy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDisorder queries the "disorder" edge of the Remedy entity.
func (_m *Remedy) QueryDisorder() *DisorderQuery {
	return NewRemedyClient(_m.config).QueryDisorder(_m)
}

// Update returns a builder for updating this Remedy.
// Note that you need to call Remedy.Unwrap() before calling this method if this Remedy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Remedy) Update() *RemedyUpdateOne {
	return NewRemedyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Remedy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Remedy) Unwrap() *Remedy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Remedy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Remedy) String() string {
	var builder strings.Builder
	builder.WriteString("Remedy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("disorder_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisorderID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteByte(')')
	return builder.String()
}

// Remedies is a parsable slice of Remedy.
type Remedies []*Remedy
