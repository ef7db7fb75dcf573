// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

// RemedyCreate is the builder for creating a Remedy entity.
type RemedyCreate struct {
	config
	mutation *RemedyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RemedyCreate) SetCreatedAt(v time.Time) *RemedyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RemedyCreate) SetNillableCreatedAt(v *time.Time) *RemedyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDisorderID sets the "disorder_id" field.
func (_c *RemedyCreate) SetDisorderID(v int) *RemedyCreate {
	_c.mutation.SetDisorderID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RemedyCreate) SetTitle(v string) *RemedyCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RemedyCreate) SetDescription(v string) *RemedyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RemedyCreate) SetNillableDescription(v *string) *RemedyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RemedyCreate) SetCategory(v string) *RemedyCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RemedyCreate) SetNillableCategory(v *string) *RemedyCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDisorder sets the "disorder" edge to the Disorder entity.
func (_c *RemedyCreate) SetDisorder(v *Disorder) *RemedyCreate {
	return _c.SetDisorderID(v.ID)
}

// Mutation returns the RemedyMutation object of the builder.
func (_c *RemedyCreate) Mutation() *RemedyMutation {
	return _c.mutation
}

// Save creates the Remedy in the database.
func (_c *RemedyCreate) Save(ctx context.Context) (*Remedy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RemedyCreate) SaveX(ctx context.Context) *Remedy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemedyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemedyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RemedyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := remedy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RemedyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Remedy.created_at"`)}
	}
	if _, ok := _c.mutation.DisorderID(); !ok {
		return &ValidationError{Name: "disorder_id", err: errors.New(`repo: missing required field "Remedy.disorder_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Remedy.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := remedy.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Remedy.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := remedy.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "Remedy.category": %w`, err)}
		}
	}
	if len(_c.mutation.DisorderIDs()) == 0 {
		return &ValidationError{Name: "disorder", err: errors.New(`repo: missing required edge "Remedy.disorder"`)}
	}
	return nil
}

func (_c *RemedyCreate) sqlSave(ctx context.Context) (*Remedy, error) {
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

func (_c *RemedyCreate) createSpec() (*Remedy, *sqlgraph.CreateSpec) {
	var (
		_node = &Remedy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(remedy.Table, sqlgraph.NewFieldSpec(remedy.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(remedy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(remedy.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(remedy.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(remedy.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if nodes := _c.mutation.DisorderIDs(); len(nodes) > 0 {
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
		_node.DisorderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RemedyCreateBulk is the builder for creating many Remedy entities in bulk.
type RemedyCreateBulk struct {
	config
	err      error
	builders []*RemedyCreate
}

// Save creates the Remedy entities in the database.
func (_c *RemedyCreateBulk) Save(ctx context.Context) ([]*Remedy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Remedy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RemedyMutation)
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
func (_c *RemedyCreateBulk) SaveX(ctx context.Context) []*Remedy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemedyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemedyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
