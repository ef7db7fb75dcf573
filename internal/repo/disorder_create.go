// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mindcare/mindcare_backend/internal/repo/assessment"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

// DisorderCreate is the builder for creating a Disorder entity.
type DisorderCreate struct {
	config
	mutation *DisorderMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DisorderCreate) SetCreatedAt(v time.Time) *DisorderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DisorderCreate) SetNillableCreatedAt(v *time.Time) *DisorderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DisorderCreate) SetName(v string) *DisorderCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DisorderCreate) SetDescription(v string) *DisorderCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DisorderCreate) SetNillableDescription(v *string) *DisorderCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSymptoms sets the "symptoms" field.
func (_c *DisorderCreate) SetSymptoms(v string) *DisorderCreate {
	_c.mutation.SetSymptoms(v)
	return _c
}

// SetNillableSymptoms sets the "symptoms" field if the given value is not nil.
func (_c *DisorderCreate) SetNillableSymptoms(v *string) *DisorderCreate {
	if v != nil {
		_c.SetSymptoms(*v)
	}
	return _c
}

// AddRemedyIDs adds the "remedies" edge to the Remedy entity by IDs.
func (_c *DisorderCreate) AddRemedyIDs(ids ...int) *DisorderCreate {
	_c.mutation.AddRemedyIDs(ids...)
	return _c
}

// AddRemedies adds the "remedies" edges to the Remedy entity.
func (_c *DisorderCreate) AddRemedies(v ...*Remedy) *DisorderCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRemedyIDs(ids...)
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by IDs.
func (_c *DisorderCreate) AddAssessmentIDs(ids ...int) *DisorderCreate {
	_c.mutation.AddAssessmentIDs(ids...)
	return _c
}

// AddAssessments adds the "assessments" edges to the Assessment entity.
func (_c *DisorderCreate) AddAssessments(v ...*Assessment) *DisorderCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssessmentIDs(ids...)
}

// Mutation returns the DisorderMutation object of the builder.
func (_c *DisorderCreate) Mutation() *DisorderMutation {
	return _c.mutation
}

// Save creates the Disorder in the database.
func (_c *DisorderCreate) Save(ctx context.Context) (*Disorder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DisorderCreate) SaveX(ctx context.Context) *Disorder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DisorderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DisorderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DisorderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := disorder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DisorderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Disorder.created_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Disorder.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := disorder.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Disorder.name": %w`, err)}
		}
	}
	return nil
}

func (_c *DisorderCreate) sqlSave(ctx context.Context) (*Disorder, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DisorderCreate) createSpec() (*Disorder, *sqlgraph.CreateSpec) {
	var (
		_node = &Disorder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(disorder.Table, sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(disorder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(disorder.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(disorder.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Symptoms(); ok {
		_spec.SetField(disorder.FieldSymptoms, field.TypeString, value)
		_node.Symptoms = value
	}
	if nodes := _c.mutation.RemediesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssessmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DisorderCreateBulk is the builder for creating many Disorder entities in bulk.
type DisorderCreateBulk struct {
	config
	err      error
	builders []*DisorderCreate
}

// Save creates the Disorder entities in the database.
func (_c *DisorderCreateBulk) Save(ctx context.Context) ([]*Disorder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Disorder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DisorderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DisorderCreateBulk) SaveX(ctx context.Context) []*Disorder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DisorderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DisorderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
