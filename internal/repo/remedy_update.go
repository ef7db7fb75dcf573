// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/predicate"
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

// RemedyUpdate is the builder for updating Remedy entities.
type RemedyUpdate struct {
	config
	hooks    []Hook
	mutation *RemedyMutation
}

// Where appends a list predicates to the RemedyUpdate builder.
func (_u *RemedyUpdate) Where(ps ...predicate.Remedy) *RemedyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisorderID sets the "disorder_id" field.
func (_u *RemedyUpdate) SetDisorderID(v int) *RemedyUpdate {
	_u.mutation.SetDisorderID(v)
	return _u
}

// SetNillableDisorderID sets the "disorder_id" field if the given value is not nil.
func (_u *RemedyUpdate) SetNillableDisorderID(v *int) *RemedyUpdate {
	if v != nil {
		_u.SetDisorderID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RemedyUpdate) SetTitle(v string) *RemedyUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RemedyUpdate) SetNillableTitle(v *string) *RemedyUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RemedyUpdate) SetDescription(v string) *RemedyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RemedyUpdate) SetNillableDescription(v *string) *RemedyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RemedyUpdate) ClearDescription() *RemedyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *RemedyUpdate) SetCategory(v string) *RemedyUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RemedyUpdate) SetNillableCategory(v *string) *RemedyUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RemedyUpdate) ClearCategory() *RemedyUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetDisorder sets the "disorder" edge to the Disorder entity.
func (_u *RemedyUpdate) SetDisorder(v *Disorder) *RemedyUpdate {
	return _u.SetDisorderID(v.ID)
}

// Mutation returns the RemedyMutation object of the builder.
func (_u *RemedyUpdate) Mutation() *RemedyMutation {
	return _u.mutation
}

// ClearDisorder clears the "disorder" edge to the Disorder entity.
func (_u *RemedyUpdate) ClearDisorder() *RemedyUpdate {
	_u.mutation.ClearDisorder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RemedyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemedyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RemedyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemedyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemedyUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := remedy.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Remedy.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := remedy.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "Remedy.category": %w`, err)}
		}
	}
	if _u.mutation.DisorderCleared() && len(_u.mutation.DisorderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Remedy.disorder"`)
	}
	return nil
}

func (_u *RemedyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remedy.Table, remedy.Columns, sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(remedy.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(remedy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(remedy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(remedy.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(remedy.FieldCategory, field.TypeString)
	}
	if _u.mutation.DisorderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   remedy.DisorderTable,
			Columns: []string{remedy.DisorderColumn},
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
			Table:   remedy.DisorderTable,
			Columns: []string{remedy.DisorderColumn},
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
			err = &NotFoundError{remedy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RemedyUpdateOne is the builder for updating a single Remedy entity.
type RemedyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RemedyMutation
}

// SetDisorderID sets the "disorder_id" field.
func (_u *RemedyUpdateOne) SetDisorderID(v int) *RemedyUpdateOne {
	_u.mutation.SetDisorderID(v)
	return _u
}

// SetNillableDisorderID sets the "disorder_id" field if the given value is not nil.
func (_u *RemedyUpdateOne) SetNillableDisorderID(v *int) *RemedyUpdateOne {
	if v != nil {
		_u.SetDisorderID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RemedyUpdateOne) SetTitle(v string) *RemedyUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RemedyUpdateOne) SetNillableTitle(v *string) *RemedyUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RemedyUpdateOne) SetDescription(v string) *RemedyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RemedyUpdateOne) SetNillableDescription(v *string) *RemedyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RemedyUpdateOne) ClearDescription() *RemedyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *RemedyUpdateOne) SetCategory(v string) *RemedyUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RemedyUpdateOne) SetNillableCategory(v *string) *RemedyUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RemedyUpdateOne) ClearCategory() *RemedyUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetDisorder sets the "disorder" edge to the Disorder entity.
func (_u *RemedyUpdateOne) SetDisorder(v *Disorder) *RemedyUpdateOne {
	return _u.SetDisorderID(v.ID)
}

// Mutation returns the RemedyMutation object of the builder.
func (_u *RemedyUpdateOne) Mutation() *RemedyMutation {
	return _u.mutation
}

// ClearDisorder clears the "disorder" edge to the Disorder entity.
func (_u *RemedyUpdateOne) ClearDisorder() *RemedyUpdateOne {
	_u.mutation.ClearDisorder()
	return _u
}

// Where appends a list predicates to the RemedyUpdate builder.
func (_u *RemedyUpdateOne) Where(ps ...predicate.Remedy) *RemedyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RemedyUpdateOne) Select(field string, fields ...string) *RemedyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Remedy entity.
func (_u *RemedyUpdateOne) Save(ctx context.Context) (*Remedy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemedyUpdateOne) SaveX(ctx context.Context) *Remedy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RemedyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemedyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemedyUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := remedy.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Remedy.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := remedy.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "Remedy.category": %w`, err)}
		}
	}
	if _u.mutation.DisorderCleared() && len(_u.mutation.DisorderIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Remedy.disorder"`)
	}
	return nil
}

func (_u *RemedyUpdateOne) sqlSave(ctx context.Context) (_node *Remedy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remedy.Table, remedy.Columns, sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Remedy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, remedy.FieldID)
		for _, f := range fields {
			if !remedy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != remedy.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(remedy.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(remedy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(remedy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(remedy.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(remedy.FieldCategory, field.TypeString)
	}
	if _u.mutation.DisorderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   remedy.DisorderTable,
			Columns: []string{remedy.DisorderColumn},
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
			Table:   remedy.DisorderTable,
			Columns: []string{remedy.DisorderColumn},
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
	_node = &Remedy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remedy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
