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
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentCreate) SetCreatedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCreatedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentCreate) SetSessionID(v string) *AssessmentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *AssessmentCreate) SetAnswers(v string) *AssessmentCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetNillableAnswers sets the "answers" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableAnswers(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetAnswers(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *AssessmentCreate) SetResult(v string) *AssessmentCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableResult(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetSeverityScore sets the "severity_score" field.
func (_c *AssessmentCreate) SetSeverityScore(v float64) *AssessmentCreate {
	_c.mutation.SetSeverityScore(v)
	return _c
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableSeverityScore(v *float64) *AssessmentCreate {
	if v != nil {
		_c.SetSeverityScore(*v)
	}
	return _c
}

// SetDisorderID sets the "disorder_id" field.
func (_c *AssessmentCreate) SetDisorderID(v int) *AssessmentCreate {
	_c.mutation.SetDisorderID(v)
	return _c
}

// SetNillableDisorderID sets the "disorder_id" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableDisorderID(v *int) *AssessmentCreate {
	if v != nil {
		_c.SetDisorderID(*v)
	}
	return _c
}

// SetDisorder sets the "disorder" edge to the Disorder entity.
func (_c *AssessmentCreate) SetDisorder(v *Disorder) *AssessmentCreate {
	return _c.SetDisorderID(v.ID)
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.SeverityScore(); !ok {
		v := assessment.DefaultSeverityScore
		_c.mutation.SetSeverityScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Assessment.created_at"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`repo: missing required field "Assessment.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`repo: validator failed for field "Assessment.session_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := assessment.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "Assessment.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeverityScore(); !ok {
		return &ValidationError{Name: "severity_score", err: errors.New(`repo: missing required field "Assessment.severity_score"`)}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
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

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessment.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(assessment.FieldAnswers, field.TypeString, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(assessment.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.SeverityScore(); ok {
		_spec.SetField(assessment.FieldSeverityScore, field.TypeFloat64, value)
		_node.SeverityScore = value
	}
	if nodes := _c.mutation.DisorderIDs(); len(nodes) > 0 {
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
		_node.DisorderID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
