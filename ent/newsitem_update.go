// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adilet/learnloop/ent/newsitem"
	"github.com/adilet/learnloop/ent/predicate"
)

// NewsItemUpdate is the builder for updating NewsItem entities.
type NewsItemUpdate struct {
	config
	hooks    []Hook
	mutation *NewsItemMutation
}

// Where appends a list predicates to the NewsItemUpdate builder.
func (_u *NewsItemUpdate) Where(ps ...predicate.NewsItem) *NewsItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPublishedDate sets the "published_date" field.
func (_u *NewsItemUpdate) SetPublishedDate(v string) *NewsItemUpdate {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillablePublishedDate(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *NewsItemUpdate) SetSource(v string) *NewsItemUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableSource(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NewsItemUpdate) SetTitle(v string) *NewsItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableTitle(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *NewsItemUpdate) SetURL(v string) *NewsItemUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableURL(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *NewsItemUpdate) ClearURL() *NewsItemUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetWhatHappened sets the "what_happened" field.
func (_u *NewsItemUpdate) SetWhatHappened(v string) *NewsItemUpdate {
	_u.mutation.SetWhatHappened(v)
	return _u
}

// SetNillableWhatHappened sets the "what_happened" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableWhatHappened(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetWhatHappened(*v)
	}
	return _u
}

// SetWhyItMatters sets the "why_it_matters" field.
func (_u *NewsItemUpdate) SetWhyItMatters(v string) *NewsItemUpdate {
	_u.mutation.SetWhyItMatters(v)
	return _u
}

// SetNillableWhyItMatters sets the "why_it_matters" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableWhyItMatters(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetWhyItMatters(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *NewsItemUpdate) SetTerm(v string) *NewsItemUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableTerm(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// ClearTerm clears the value of the "term" field.
func (_u *NewsItemUpdate) ClearTerm() *NewsItemUpdate {
	_u.mutation.ClearTerm()
	return _u
}

// SetTermExplanation sets the "term_explanation" field.
func (_u *NewsItemUpdate) SetTermExplanation(v string) *NewsItemUpdate {
	_u.mutation.SetTermExplanation(v)
	return _u
}

// SetNillableTermExplanation sets the "term_explanation" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableTermExplanation(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetTermExplanation(*v)
	}
	return _u
}

// ClearTermExplanation clears the value of the "term_explanation" field.
func (_u *NewsItemUpdate) ClearTermExplanation() *NewsItemUpdate {
	_u.mutation.ClearTermExplanation()
	return _u
}

// SetQuiz sets the "quiz" field.
func (_u *NewsItemUpdate) SetQuiz(v []map[string]interface{}) *NewsItemUpdate {
	_u.mutation.SetQuiz(v)
	return _u
}

// AppendQuiz appends value to the "quiz" field.
func (_u *NewsItemUpdate) AppendQuiz(v []map[string]interface{}) *NewsItemUpdate {
	_u.mutation.AppendQuiz(v)
	return _u
}

// ClearQuiz clears the value of the "quiz" field.
func (_u *NewsItemUpdate) ClearQuiz() *NewsItemUpdate {
	_u.mutation.ClearQuiz()
	return _u
}

// Mutation returns the NewsItemMutation object of the builder.
func (_u *NewsItemUpdate) Mutation() *NewsItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NewsItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NewsItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsItemUpdate) check() error {
	if v, ok := _u.mutation.PublishedDate(); ok {
		if err := newsitem.PublishedDateValidator(v); err != nil {
			return &ValidationError{Name: "published_date", err: fmt.Errorf(`ent: validator failed for field "NewsItem.published_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := newsitem.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "NewsItem.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := newsitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "NewsItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WhatHappened(); ok {
		if err := newsitem.WhatHappenedValidator(v); err != nil {
			return &ValidationError{Name: "what_happened", err: fmt.Errorf(`ent: validator failed for field "NewsItem.what_happened": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WhyItMatters(); ok {
		if err := newsitem.WhyItMattersValidator(v); err != nil {
			return &ValidationError{Name: "why_it_matters", err: fmt.Errorf(`ent: validator failed for field "NewsItem.why_it_matters": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newsitem.Table, newsitem.Columns, sqlgraph.NewFieldSpec(newsitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(newsitem.FieldPublishedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(newsitem.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(newsitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(newsitem.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(newsitem.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.WhatHappened(); ok {
		_spec.SetField(newsitem.FieldWhatHappened, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhyItMatters(); ok {
		_spec.SetField(newsitem.FieldWhyItMatters, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(newsitem.FieldTerm, field.TypeString, value)
	}
	if _u.mutation.TermCleared() {
		_spec.ClearField(newsitem.FieldTerm, field.TypeString)
	}
	if value, ok := _u.mutation.TermExplanation(); ok {
		_spec.SetField(newsitem.FieldTermExplanation, field.TypeString, value)
	}
	if _u.mutation.TermExplanationCleared() {
		_spec.ClearField(newsitem.FieldTermExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Quiz(); ok {
		_spec.SetField(newsitem.FieldQuiz, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuiz(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, newsitem.FieldQuiz, value)
		})
	}
	if _u.mutation.QuizCleared() {
		_spec.ClearField(newsitem.FieldQuiz, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newsitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NewsItemUpdateOne is the builder for updating a single NewsItem entity.
type NewsItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NewsItemMutation
}

// SetPublishedDate sets the "published_date" field.
func (_u *NewsItemUpdateOne) SetPublishedDate(v string) *NewsItemUpdateOne {
	_u.mutation.SetPublishedDate(v)
	return _u
}

// SetNillablePublishedDate sets the "published_date" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillablePublishedDate(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetPublishedDate(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *NewsItemUpdateOne) SetSource(v string) *NewsItemUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableSource(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NewsItemUpdateOne) SetTitle(v string) *NewsItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableTitle(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *NewsItemUpdateOne) SetURL(v string) *NewsItemUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableURL(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *NewsItemUpdateOne) ClearURL() *NewsItemUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetWhatHappened sets the "what_happened" field.
func (_u *NewsItemUpdateOne) SetWhatHappened(v string) *NewsItemUpdateOne {
	_u.mutation.SetWhatHappened(v)
	return _u
}

// SetNillableWhatHappened sets the "what_happened" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableWhatHappened(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetWhatHappened(*v)
	}
	return _u
}

// SetWhyItMatters sets the "why_it_matters" field.
func (_u *NewsItemUpdateOne) SetWhyItMatters(v string) *NewsItemUpdateOne {
	_u.mutation.SetWhyItMatters(v)
	return _u
}

// SetNillableWhyItMatters sets the "why_it_matters" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableWhyItMatters(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetWhyItMatters(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *NewsItemUpdateOne) SetTerm(v string) *NewsItemUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableTerm(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// ClearTerm clears the value of the "term" field.
func (_u *NewsItemUpdateOne) ClearTerm() *NewsItemUpdateOne {
	_u.mutation.ClearTerm()
	return _u
}

// SetTermExplanation sets the "term_explanation" field.
func (_u *NewsItemUpdateOne) SetTermExplanation(v string) *NewsItemUpdateOne {
	_u.mutation.SetTermExplanation(v)
	return _u
}

// SetNillableTermExplanation sets the "term_explanation" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableTermExplanation(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetTermExplanation(*v)
	}
	return _u
}

// ClearTermExplanation clears the value of the "term_explanation" field.
func (_u *NewsItemUpdateOne) ClearTermExplanation() *NewsItemUpdateOne {
	_u.mutation.ClearTermExplanation()
	return _u
}

// SetQuiz sets the "quiz" field.
func (_u *NewsItemUpdateOne) SetQuiz(v []map[string]interface{}) *NewsItemUpdateOne {
	_u.mutation.SetQuiz(v)
	return _u
}

// AppendQuiz appends value to the "quiz" field.
func (_u *NewsItemUpdateOne) AppendQuiz(v []map[string]interface{}) *NewsItemUpdateOne {
	_u.mutation.AppendQuiz(v)
	return _u
}

// ClearQuiz clears the value of the "quiz" field.
func (_u *NewsItemUpdateOne) ClearQuiz() *NewsItemUpdateOne {
	_u.mutation.ClearQuiz()
	return _u
}

// Mutation returns the NewsItemMutation object of the builder.
func (_u *NewsItemUpdateOne) Mutation() *NewsItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the NewsItemUpdate builder.
func (_u *NewsItemUpdateOne) Where(ps ...predicate.NewsItem) *NewsItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NewsItemUpdateOne) Select(field string, fields ...string) *NewsItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NewsItem entity.
func (_u *NewsItemUpdateOne) Save(ctx context.Context) (*NewsItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsItemUpdateOne) SaveX(ctx context.Context) *NewsItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NewsItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NewsItemUpdateOne) check() error {
	if v, ok := _u.mutation.PublishedDate(); ok {
		if err := newsitem.PublishedDateValidator(v); err != nil {
			return &ValidationError{Name: "published_date", err: fmt.Errorf(`ent: validator failed for field "NewsItem.published_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := newsitem.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "NewsItem.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := newsitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "NewsItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WhatHappened(); ok {
		if err := newsitem.WhatHappenedValidator(v); err != nil {
			return &ValidationError{Name: "what_happened", err: fmt.Errorf(`ent: validator failed for field "NewsItem.what_happened": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WhyItMatters(); ok {
		if err := newsitem.WhyItMattersValidator(v); err != nil {
			return &ValidationError{Name: "why_it_matters", err: fmt.Errorf(`ent: validator failed for field "NewsItem.why_it_matters": %w`, err)}
		}
	}
	return nil
}

func (_u *NewsItemUpdateOne) sqlSave(ctx context.Context) (_node *NewsItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(newsitem.Table, newsitem.Columns, sqlgraph.NewFieldSpec(newsitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NewsItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newsitem.FieldID)
		for _, f := range fields {
			if !newsitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != newsitem.FieldID {
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
	if value, ok := _u.mutation.PublishedDate(); ok {
		_spec.SetField(newsitem.FieldPublishedDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(newsitem.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(newsitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(newsitem.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(newsitem.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.WhatHappened(); ok {
		_spec.SetField(newsitem.FieldWhatHappened, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhyItMatters(); ok {
		_spec.SetField(newsitem.FieldWhyItMatters, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(newsitem.FieldTerm, field.TypeString, value)
	}
	if _u.mutation.TermCleared() {
		_spec.ClearField(newsitem.FieldTerm, field.TypeString)
	}
	if value, ok := _u.mutation.TermExplanation(); ok {
		_spec.SetField(newsitem.FieldTermExplanation, field.TypeString, value)
	}
	if _u.mutation.TermExplanationCleared() {
		_spec.ClearField(newsitem.FieldTermExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Quiz(); ok {
		_spec.SetField(newsitem.FieldQuiz, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuiz(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, newsitem.FieldQuiz, value)
		})
	}
	if _u.mutation.QuizCleared() {
		_spec.ClearField(newsitem.FieldQuiz, field.TypeJSON)
	}
	_node = &NewsItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newsitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
