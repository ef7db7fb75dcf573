// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mindcare/mindcare_backend/internal/repo/assessment"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/predicate"
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

// DisorderQuery is the builder for querying Disorder entities.
type DisorderQuery struct {
	config
	ctx             *QueryContext
	order           []disorder.OrderOption
	inters          []Interceptor
	predicates      []predicate.Disorder
	withRemedies    *RemedyQuery
	withAssessments *AssessmentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DisorderQuery builder.
func (_q *DisorderQuery) Where(ps ...predicate.Disorder) *DisorderQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DisorderQuery) Limit(limit int) *DisorderQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DisorderQuery) Offset(offset int) *DisorderQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DisorderQuery) Unique(unique bool) *DisorderQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DisorderQuery) Order(o ...disorder.OrderOption) *DisorderQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRemedies chains the current query on the "remedies" edge.
func (_q *DisorderQuery) QueryRemedies() *RemedyQuery {
	query := (&RemedyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(disorder.Table, disorder.FieldID, selector),
			sqlgraph.To(remedy.Table, remedy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, disorder.RemediesTable, disorder.RemediesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssessments chains the current query on the "assessments" edge.
func (_q *DisorderQuery) QueryAssessments() *AssessmentQuery {
	query := (&AssessmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(disorder.Table, disorder.FieldID, selector),
			sqlgraph.To(assessment.Table, assessment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, disorder.AssessmentsTable, disorder.AssessmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Disorder entity from the query.
// Returns a *NotFoundError when no Disorder was found.
func (_q *DisorderQuery) First(ctx context.Context) (*Disorder, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{disorder.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DisorderQuery) FirstX(ctx context.Context) *Disorder {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Disorder ID from the query.
// Returns a *NotFoundError when no Disorder ID was found.
func (_q *DisorderQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{disorder.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DisorderQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Disorder entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Disorder entity is found.
// Returns a *NotFoundError when no Disorder entities are found.
func (_q *DisorderQuery) Only(ctx context.Context) (*Disorder, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{disorder.Label}
	default:
		return nil, &NotSingularError{disorder.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DisorderQuery) OnlyX(ctx context.Context) *Disorder {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Disorder ID in the query.
// Returns a *NotSingularError when more than one Disorder ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DisorderQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{disorder.Label}
	default:
		err = &NotSingularError{disorder.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DisorderQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Disorders.
func (_q *DisorderQuery) All(ctx context.Context) ([]*Disorder, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Disorder, *DisorderQuery]()
	return withInterceptors[[]*Disorder](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DisorderQuery) AllX(ctx context.Context) []*Disorder {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Disorder IDs.
func (_q *DisorderQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(disorder.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DisorderQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DisorderQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DisorderQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DisorderQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DisorderQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DisorderQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DisorderQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DisorderQuery) Clone() *DisorderQuery {
	if _q == nil {
		return nil
	}
	return &DisorderQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]disorder.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Disorder{}, _q.predicates...),
		withRemedies:    _q.withRemedies.Clone(),
		withAssessments: _q.withAssessments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRemedies tells the query-builder to eager-load the nodes that are connected to
// the "remedies" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DisorderQuery) WithRemedies(opts ...func(*RemedyQuery)) *DisorderQuery {
	query := (&RemedyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRemedies = query
	return _q
}

// WithAssessments tells the query-builder to eager-load the nodes that are connected to
// the "assessments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DisorderQuery) WithAssessments(opts ...func(*AssessmentQuery)) *DisorderQuery {
	query := (&AssessmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssessments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Disorder.Query().
//		GroupBy(disorder.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *DisorderQuery) GroupBy(field string, fields ...string) *DisorderGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DisorderGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = disorder.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Disorder.Query().
//		Select(disorder.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *DisorderQuery) Select(fields ...string) *DisorderSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DisorderSelect{DisorderQuery: _q}
	sbuild.label = disorder.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DisorderSelect configured with the given aggregations.
func (_q *DisorderQuery) Aggregate(fns ...AggregateFunc) *DisorderSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DisorderQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !disorder.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DisorderQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Disorder, error) {
	var (
		nodes       = []*Disorder{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRemedies != nil,
			_q.withAssessments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Disorder).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Disorder{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRemedies; query != nil {
		if err := _q.loadRemedies(ctx, query, nodes,
			func(n *Disorder) { n.Edges.Remedies = []*Remedy{} },
			func(n *Disorder, e *Remedy) { n.Edges.Remedies = append(n.Edges.Remedies, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssessments; query != nil {
		if err := _q.loadAssessments(ctx, query, nodes,
			func(n *Disorder) { n.Edges.Assessments = []*Assessment{} },
			func(n *Disorder, e *Assessment) { n.Edges.Assessments = append(n.Edges.Assessments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DisorderQuery) loadRemedies(ctx context.Context, query *RemedyQuery, nodes []*Disorder, init func(*Disorder), assign func(*Disorder, *Remedy)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Disorder)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(remedy.FieldDisorderID)
	}
	query.Where(predicate.Remedy(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(disorder.RemediesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DisorderID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "disorder_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DisorderQuery) loadAssessments(ctx context.Context, query *AssessmentQuery, nodes []*Disorder, init func(*Disorder), assign func(*Disorder, *Assessment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Disorder)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(assessment.FieldDisorderID)
	}
	query.Where(predicate.Assessment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(disorder.AssessmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DisorderID
		if fk == nil {
			return fmt.Errorf(`foreign-key "disorder_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "disorder_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DisorderQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DisorderQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(disorder.Table, disorder.Columns, sqlgraph.NewFieldSpec(disorder.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, disorder.FieldID)
		for i := range fields {
			if fields[i] != disorder.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DisorderQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(disorder.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = disorder.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DisorderGroupBy is the group-by builder for Disorder entities.
type DisorderGroupBy struct {
	selector
	build *DisorderQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DisorderGroupBy) Aggregate(fns ...AggregateFunc) *DisorderGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DisorderGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DisorderQuery, *DisorderGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DisorderGroupBy) sqlScan(ctx context.Context, root *DisorderQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DisorderSelect is the builder for selecting fields of Disorder entities.
type DisorderSelect struct {
	*DisorderQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DisorderSelect) Aggregate(fns ...AggregateFunc) *DisorderSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DisorderSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DisorderQuery, *DisorderSelect](ctx, _s.DisorderQuery, _s, _s.inters, v)
}

func (_s *DisorderSelect) sqlScan(ctx context.Context, root *DisorderQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
