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
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

// DisorderUpdate is the builder for updating Disorder entities.
type DisorderUpdate struct {
	config
	hooks    []Hook
	mutation *DisorderMutation
}

// Where appends a list predicates to the DisorderUpdate builder.
func (_u *DisorderUpdate) Where(ps ...predicate.Disorder) *DisorderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DisorderUpdate) SetName(v string) *DisorderUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DisorderUpdate) SetNillableName(v *string) *DisorderUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DisorderUpdate) SetDescription(v string) *DisorderUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DisorderUpdate) SetNillableDescription(v *string) *DisorderUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DisorderUpdate) ClearDescription() *DisorderUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *DisorderUpdate) SetSymptoms(v string) *DisorderUpdate {
	_u.mutation.SetSymptoms(v)
	return _u
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_u *DisorderUpdate) SetNillableSymptoms(v *string) *DisorderUpdate {
	if v != nil {
		_u.SetSymptoms(*v)
	}
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *DisorderUpdate) ClearSymptoms() *DisorderUpdate {
	_u.mutation.ClearSymptoms()
	return _u
}

// AddRemedyIDs adds the "remedies" edge to the Remedy entity by IDs.
func (_u *DisorderUpdate) AddRemedyIDs(ids ...int) *DisorderUpdate {
	_u.mutation.AddRemedyIDs(ids...)
	return _u
}

// AddRemedies adds the "remedies" edges to the Remedy entity.
func (_u *DisorderUpdate) AddRemedies(v ...*Remedy) *DisorderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRemedyIDs(ids...)
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by IDs.
func (_u *DisorderUpdate) AddAssessmentIDs(ids ...int) *DisorderUpdate {
	_u.mutation.AddAssessmentIDs(ids...)
	return _u
}

// AddAssessments adds the "assessments" edges to the Assessment entity.
func (_u *DisorderUpdate) AddAssessments(v ...*Assessment) *DisorderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentIDs(ids...)
}

// Mutation returns the DisorderMutation object of the builder.
func (_u *DisorderUpdate) Mutation() *DisorderMutation {
	return _u.mutation
}

// ClearRemedies clears all "remedies" edges to the Remedy entity.
func (_u *DisorderUpdate) ClearRemedies() *DisorderUpdate {
	_u.mutation.ClearRemedies()
	return _u
}

// RemoveRemedyIDs removes the "remedies" edge to Remedy entities by IDs.
func (_u *DisorderUpdate) RemoveRemedyIDs(ids ...int) *DisorderUpdate {
	_u.mutation.RemoveRemedyIDs(ids...)
	return _u
}

// RemoveRemedies removes "remedies" edges to Remedy entities.
func (_u *DisorderUpdate) RemoveRemedies(v ...*Remedy) *DisorderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRemedyIDs(ids...)
}

// ClearAssessments clears all "assessments" edges to the Assessment entity.
func (_u *DisorderUpdate) ClearAssessments() *DisorderUpdate {
	_u.mutation.ClearAssessments()
	return _u
}

// RemoveAssessmentIDs removes the "assessments" edge to Assessment entities by IDs.
func (_u *DisorderUpdate) RemoveAssessmentIDs(ids ...int) *DisorderUpdate {
	_u.mutation.RemoveAssessmentIDs(ids...)
	return _u
}

// RemoveAssessments removes "assessments" edges to Assessment entities.
func (_u *DisorderUpdate) RemoveAssessments(v ...*Assessment) *DisorderUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DisorderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DisorderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DisorderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DisorderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DisorderUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := disorder.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Disorder.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DisorderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(disorder.Table, disorder.Columns, sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(disorder.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(disorder.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(disorder.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(disorder.FieldSymptoms, field.TypeString, value)
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(disorder.FieldSymptoms, field.TypeString)
	}
	if _u.mutation.RemediesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.RemediesTable,
			Columns: []string{disorder.RemediesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRemediesIDs(); len(nodes) > 0 && !_u.mutation.RemediesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.RemediesTable,
			Columns: []string{disorder.RemediesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemediesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.RemediesTable,
			Columns: []string{disorder.RemediesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.AssessmentsTable,
			Columns: []string{disorder.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.AssessmentsTable,
			Columns: []string{disorder.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.AssessmentsTable,
			Columns: []string{disorder.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{disorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DisorderUpdateOne is the builder for updating a single Disorder entity.
type DisorderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DisorderMutation
}

// SetName sets the "name" field.
func (_u *DisorderUpdateOne) SetName(v string) *DisorderUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DisorderUpdateOne) SetNillableName(v *string) *DisorderUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DisorderUpdateOne) SetDescription(v string) *DisorderUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DisorderUpdateOne) SetNillableDescription(v *string) *DisorderUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DisorderUpdateOne) ClearDescription() *DisorderUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSymptoms sets the "symptoms" field.
func (_u *DisorderUpdateOne) SetSymptoms(v string) *DisorderUpdateOne {
	_u.mutation.SetSymptoms(v)
	return _u
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_u *DisorderUpdateOne) SetNillableSymptoms(v *string) *DisorderUpdateOne {
	if v != nil {
		_u.SetSymptoms(*v)
	}
	return _u
}

// ClearSymptoms clears the value of the "symptoms" field.
func (_u *DisorderUpdateOne) ClearSymptoms() *DisorderUpdateOne {
	_u.mutation.ClearSymptoms()
	return _u
}

// AddRemedyIDs adds the "remedies" edge to the Remedy entity by IDs.
func (_u *DisorderUpdateOne) AddRemedyIDs(ids ...int) *DisorderUpdateOne {
	_u.mutation.AddRemedyIDs(ids...)
	return _u
}

// AddRemedies adds the "remedies" edges to the Remedy entity.
func (_u *DisorderUpdateOne) AddRemedies(v ...*Remedy) *DisorderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRemedyIDs(ids...)
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by IDs.
func (_u *DisorderUpdateOne) AddAssessmentIDs(ids ...int) *DisorderUpdateOne {
	_u.mutation.AddAssessmentIDs(ids...)
	return _u
}

// AddAssessments adds the "assessments" edges to the Assessment entity.
func (_u *DisorderUpdateOne) AddAssessments(v ...*Assessment) *DisorderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssessmentIDs(ids...)
}

// Mutation returns the DisorderMutation object of the builder.
func (_u *DisorderUpdateOne) Mutation() *DisorderMutation {
	return _u.mutation
}

// ClearRemedies clears all "remedies" edges to the Remedy entity.
func (_u *DisorderUpdateOne) ClearRemedies() *DisorderUpdateOne {
	_u.mutation.ClearRemedies()
	return _u
}

// RemoveRemedyIDs removes the "remedies" edge to Remedy entities by IDs.
func (_u *DisorderUpdateOne) RemoveRemedyIDs(ids ...int) *DisorderUpdateOne {
	_u.mutation.RemoveRemedyIDs(ids...)
	return _u
}

// RemoveRemedies removes "remedies" edges to Remedy entities.
func (_u *DisorderUpdateOne) RemoveRemedies(v ...*Remedy) *DisorderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRemedyIDs(ids...)
}

// ClearAssessments clears all "assessments" edges to the Assessment entity.
func (_u *DisorderUpdateOne) ClearAssessments() *DisorderUpdateOne {
	_u.mutation.ClearAssessments()
	return _u
}

// RemoveAssessmentIDs removes the "assessments" edge to Assessment entities by IDs.
func (_u *DisorderUpdateOne) RemoveAssessmentIDs(ids ...int) *DisorderUpdateOne {
	_u.mutation.RemoveAssessmentIDs(ids...)
	return _u
}

// RemoveAssessments removes "assessments" edges to Assessment entities.
func (_u *DisorderUpdateOne) RemoveAssessments(v ...*Assessment) *DisorderUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssessmentIDs(ids...)
}

// Where appends a list predicates to the DisorderUpdate builder.
func (_u *DisorderUpdateOne) Where(ps ...predicate.Disorder) *DisorderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DisorderUpdateOne) Select(field string, fields ...string) *DisorderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Disorder entity.
func (_u *DisorderUpdateOne) Save(ctx context.Context) (*Disorder, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DisorderUpdateOne) SaveX(ctx context.Context) *Disorder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DisorderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DisorderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DisorderUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := disorder.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Disorder.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DisorderUpdateOne) sqlSave(ctx context.Context) (_node *Disorder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(disorder.Table, disorder.Columns, sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Disorder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, disorder.FieldID)
		for _, f := range fields {
			if !disorder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != disorder.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(disorder.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(disorder.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(disorder.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Symptoms(); ok {
		_spec.SetField(disorder.FieldSymptoms, field.TypeString, value)
	}
	if _u.mutation.SymptomsCleared() {
		_spec.ClearField(disorder.FieldSymptoms, field.TypeString)
	}
	if _u.mutation.RemediesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.RemediesTable,
			Columns: []string{disorder.RemediesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRemediesIDs(); len(nodes) > 0 && !_u.mutation.RemediesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.RemediesTable,
			Columns: []string{disorder.RemediesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemediesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.RemediesTable,
			Columns: []string{disorder.RemediesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.AssessmentsTable,
			Columns: []string{disorder.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.AssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.AssessmentsTable,
			Columns: []string{disorder.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssessmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   disorder.AssessmentsTable,
			Columns: []string{disorder.AssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Disorder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{disorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
