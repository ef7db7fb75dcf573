// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mindcare/mindcare_backend/internal/repo/assessment"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentUpdate) SetSessionID(v string) *AssessmentUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableSessionID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentUpdate) SetAnswers(v string) *AssessmentUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetNillableAnswers sets the "answers" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableAnswers(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetAnswers(*v)
	}
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *AssessmentUpdate) ClearAnswers() *AssessmentUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetResult sets the "result" field.
func (_u *AssessmentUpdate) SetResult(v string) *AssessmentUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableResult(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AssessmentUpdate) ClearResult() *AssessmentUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *AssessmentUpdate) SetSeverityScore(v float64) *AssessmentUpdate {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableSeverityScore(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *AssessmentUpdate) AddSeverityScore(v float64) *AssessmentUpdate {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// SetDisorderID sets the "disorder_id" field.
func (_u *AssessmentUpdate) SetDisorderID(v int) *AssessmentUpdate {
	_u.mutation.SetDisorderID(v)
	return _u
}

// SetNillableDisorderID sets the "disorder_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableDisorderID(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetDisorderID(*v)
	}
	return _u
}

// ClearDisorderID clears the value of the "disorder_id" field.
func (_u *AssessmentUpdate) ClearDisorderID() *AssessmentUpdate {
	_u.mutation.ClearDisorderID()
	return _u
}

// SetDisorder sets the "disorder" edge to the Disorder entity.
func (_u *AssessmentUpdate) SetDisorder(v *Disorder) *AssessmentUpdate {
	return _u.SetDisorderID(v.ID)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// ClearDisorder clears the "disorder" edge to the Disorder entity.
func (_u *AssessmentUpdate) ClearDisorder() *AssessmentUpdate {
	_u.mutation.ClearDisorder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`repo: validator failed for field "Assessment.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := assessment.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Assessment.result": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessment.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessment.FieldAnswers, field.TypeString, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(assessment.FieldAnswers, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(assessment.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(assessment.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(assessment.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(assessment.FieldSeverityScore, field.TypeFloat64, value)
	}
	if _u.mutation.DisorderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessment.DisorderTable,
			Columns: []string{assessment.DisorderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DisorderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessment.DisorderTable,
			Columns: []string{assessment.DisorderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentUpdateOne) SetSessionID(v string) *AssessmentUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableSessionID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentUpdateOne) SetAnswers(v string) *AssessmentUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetNillableAnswers sets the "answers" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableAnswers(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetAnswers(*v)
	}
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *AssessmentUpdateOne) ClearAnswers() *AssessmentUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetResult sets the "result" field.
func (_u *AssessmentUpdateOne) SetResult(v string) *AssessmentUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableResult(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AssessmentUpdateOne) ClearResult() *AssessmentUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *AssessmentUpdateOne) SetSeverityScore(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableSeverityScore(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *AssessmentUpdateOne) AddSeverityScore(v float64) *AssessmentUpdateOne {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// SetDisorderID sets the "disorder_id" field.
func (_u *AssessmentUpdateOne) SetDisorderID(v int) *AssessmentUpdateOne {
	_u.mutation.SetDisorderID(v)
	return _u
}

// SetNillableDisorderID sets the "disorder_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableDisorderID(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetDisorderID(*v)
	}
	return _u
}

// ClearDisorderID clears the value of the "disorder_id" field.
func (_u *AssessmentUpdateOne) ClearDisorderID() *AssessmentUpdateOne {
	_u.mutation.ClearDisorderID()
	return _u
}

// SetDisorder sets the "disorder" edge to the Disorder entity.
func (_u *AssessmentUpdateOne) SetDisorder(v *Disorder) *AssessmentUpdateOne {
	return _u.SetDisorderID(v.ID)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// ClearDisorder clears the "disorder" edge to the Disorder entity.
func (_u *AssessmentUpdateOne) ClearDisorder() *AssessmentUpdateOne {
	_u.mutation.ClearDisorder()
	return _u
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`repo: validator failed for field "Assessment.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := assessment.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Assessment.result": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessment.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessment.FieldAnswers, field.TypeString, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(assessment.FieldAnswers, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(assessment.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(assessment.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(assessment.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(assessment.FieldSeverityScore, field.TypeFloat64, value)
	}
	if _u.mutation.DisorderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessment.DisorderTable,
			Columns: []string{assessment.DisorderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DisorderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessment.DisorderTable,
			Columns: []string{assessment.DisorderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
