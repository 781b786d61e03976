// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/aiterm"
	"github.com/google/uuid"
)

// AITermCreate is the builder for creating a AITerm entity.
type AITermCreate struct {
	config
	mutation *AITermMutation
	hooks    []Hook
}

// SetTerm sets the "term" field.
func (_c *AITermCreate) SetTerm(v string) *AITermCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetDefinition sets the "definition" field.
func (_c *AITermCreate) SetDefinition(v string) *AITermCreate {
	_c.mutation.SetDefinition(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AITermCreate) SetCategory(v string) *AITermCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *AITermCreate) SetNillableCategory(v *string) *AITermCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AITermCreate) SetDifficulty(v string) *AITermCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *AITermCreate) SetNillableDifficulty(v *string) *AITermCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AITermCreate) SetID(v uuid.UUID) *AITermCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AITermCreate) SetNillableID(v *uuid.UUID) *AITermCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AITermMutation object of the builder.
func (_c *AITermCreate) Mutation() *AITermMutation {
	return _c.mutation
}

// Save creates the AITerm in the database.
func (_c *AITermCreate) Save(ctx context.Context) (*AITerm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AITermCreate) SaveX(ctx context.Context) *AITerm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AITermCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AITermCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AITermCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := aiterm.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := aiterm.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := aiterm.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AITermCreate) check() error {
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "AITerm.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := aiterm.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "AITerm.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Definition(); !ok {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required field "AITerm.definition"`)}
	}
	if v, ok := _c.mutation.Definition(); ok {
		if err := aiterm.DefinitionValidator(v); err != nil {
			return &ValidationError{Name: "definition", err: fmt.Errorf(`ent: validator failed for field "AITerm.definition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AITerm.category"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AITerm.difficulty"`)}
	}
	return nil
}

func (_c *AITermCreate) sqlSave(ctx context.Context) (*AITerm, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AITermCreate) createSpec() (*AITerm, *sqlgraph.CreateSpec) {
	var (
		_node = &AITerm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aiterm.Table, sqlgraph.NewFieldSpec(aiterm.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(aiterm.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Definition(); ok {
		_spec.SetField(aiterm.FieldDefinition, field.TypeString, value)
		_node.Definition = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(aiterm.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(aiterm.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	return _node, _spec
}

// AITermCreateBulk is the builder for creating many AITerm entities in bulk.
type AITermCreateBulk struct {
	config
	err      error
	builders []*AITermCreate
}

// Save creates the AITerm entities in the database.
func (_c *AITermCreateBulk) Save(ctx context.Context) ([]*AITerm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AITerm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AITermMutation)
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
func (_c *AITermCreateBulk) SaveX(ctx context.Context) []*AITerm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AITermCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AITermCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
