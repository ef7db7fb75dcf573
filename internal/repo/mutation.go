// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mindcare/mindcare_backend/internal/repo/assessment"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/predicate"
	"github.com/mindcare/mindcare_backend/internal/repo/question"
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessment = "Assessment"
	TypeDisorder   = "Disorder"
	TypeQuestion   = "Question"
	TypeRemedy     = "Remedy"
)

// AssessmentMutation represents an operation that mutates the Assessment nodes in the graph.
type AssessmentMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	session_id        *string
	answers           *string
	result            *string
	severity_score    *float64
	addseverity_score *float64
	clearedFields     map[string]struct{}
	disorder          *int
	cleareddisorder   bool
	done              bool
	oldValue          func(context.Context) (*Assessment, error)
	predicates        []predicate.Assessment
}

var _ ent.Mutation = (*AssessmentMutation)(nil)

// assessmentOption allows management of the mutation configuration using functional options.
type assessmentOption func(*AssessmentMutation)

// newAssessmentMutation creates new mutation for the Assessment entity.
func newAssessmentMutation(c config, op Op, opts ...assessmentOption) *AssessmentMutation {
	m := &AssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentID sets the ID field of the mutation.
func withAssessmentID(id int) assessmentOption {
	return func(m *AssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assessment
		)
		m.oldValue = func(ctx context.Context) (*Assessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessment sets the old Assessment of the mutation.
func withAssessment(node *Assessment) assessmentOption {
	return func(m *AssessmentMutation) {
		m.oldValue = func(context.Context) (*Assessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *AssessmentMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AssessmentMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AssessmentMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAnswers sets the "answers" field.
func (m *AssessmentMutation) SetAnswers(s string) {
	m.answers = &s
}

// Answers returns the value of the "answers" field in the mutation.
func (m *AssessmentMutation) Answers() (r string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldAnswers(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// ClearAnswers clears the value of the "answers" field.
func (m *AssessmentMutation) ClearAnswers() {
	m.answers = nil
	m.clearedFields[assessment.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *AssessmentMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[assessment.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *AssessmentMutation) ResetAnswers() {
	m.answers = nil
	delete(m.clearedFields, assessment.FieldAnswers)
}

// SetResult sets the "result" field.
func (m *AssessmentMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *AssessmentMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AssessmentMutation) ClearResult() {
	m.result = nil
	m.clearedFields[assessment.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AssessmentMutation) ResultCleared() bool {
	_, ok := m.clearedFields[assessment.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AssessmentMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, assessment.FieldResult)
}

// SetSeverityScore sets the "severity_score" field.
func (m *AssessmentMutation) SetSeverityScore(f float64) {
	m.severity_score = &f
	m.addseverity_score = nil
}

// SeverityScore returns the value of the "severity_score" field in the mutation.
func (m *AssessmentMutation) SeverityScore() (r float64, exists bool) {
	v := m.severity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityScore returns the old "severity_score" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldSeverityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityScore: %w", err)
	}
	return oldValue.SeverityScore, nil
}

// AddSeverityScore adds f to the "severity_score" field.
func (m *AssessmentMutation) AddSeverityScore(f float64) {
	if m.addseverity_score != nil {
		*m.addseverity_score += f
	} else {
		m.addseverity_score = &f
	}
}

// AddedSeverityScore returns the value that was added to the "severity_score" field in this mutation.
func (m *AssessmentMutation) AddedSeverityScore() (r float64, exists bool) {
	v := m.addseverity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeverityScore resets all changes to the "severity_score" field.
func (m *AssessmentMutation) ResetSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
}

// SetDisorderID sets the "disorder_id" field.
func (m *AssessmentMutation) SetDisorderID(i int) {
	m.disorder = &i
}

// DisorderID returns the value of the "disorder_id" field in the mutation.
func (m *AssessmentMutation) DisorderID() (r int, exists bool) {
	v := m.disorder
	if v == nil {
		return
	}
	return *v, true
}

// OldDisorderID returns the old "disorder_id" field's value of the Assessment entity.
// If the Assessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentMutation) OldDisorderID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisorderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisorderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisorderID: %w", err)
	}
	return oldValue.DisorderID, nil
}

// ClearDisorderID clears the value of the "disorder_id" field.
func (m *AssessmentMutation) ClearDisorderID() {
	m.disorder = nil
	m.clearedFields[assessment.FieldDisorderID] = struct{}{}
}

// DisorderIDCleared returns if the "disorder_id" field was cleared in this mutation.
func (m *AssessmentMutation) DisorderIDCleared() bool {
	_, ok := m.clearedFields[assessment.FieldDisorderID]
	return ok
}

// ResetDisorderID resets all changes to the "disorder_id" field.
func (m *AssessmentMutation) ResetDisorderID() {
	m.disorder = nil
	delete(m.clearedFields, assessment.FieldDisorderID)
}

// ClearDisorder clears the "disorder" edge to the Disorder entity.
func (m *AssessmentMutation) ClearDisorder() {
	m.cleareddisorder = true
	m.clearedFields[assessment.FieldDisorderID] = struct{}{}
}

// DisorderCleared reports if the "disorder" edge to the Disorder entity was cleared.
func (m *AssessmentMutation) DisorderCleared() bool {
	return m.DisorderIDCleared() || m.cleareddisorder
}

// DisorderIDs returns the "disorder" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DisorderID instead. It exists only for internal usage by the builders.
func (m *AssessmentMutation) DisorderIDs() (ids []int) {
	if id := m.disorder; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDisorder resets all changes to the "disorder" edge.
func (m *AssessmentMutation) ResetDisorder() {
	m.disorder = nil
	m.cleareddisorder = false
}

// Where appends a list predicates to the AssessmentMutation builder.
func (m *AssessmentMutation) Where(ps ...predicate.Assessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assessment).
func (m *AssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, assessment.FieldCreatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, assessment.FieldSessionID)
	}
	if m.answers != nil {
		fields = append(fields, assessment.FieldAnswers)
	}
	if m.result != nil {
		fields = append(fields, assessment.FieldResult)
	}
	if m.severity_score != nil {
		fields = append(fields, assessment.FieldSeverityScore)
	}
	if m.disorder != nil {
		fields = append(fields, assessment.FieldDisorderID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldCreatedAt:
		return m.CreatedAt()
	case assessment.FieldSessionID:
		return m.SessionID()
	case assessment.FieldAnswers:
		return m.Answers()
	case assessment.FieldResult:
		return m.Result()
	case assessment.FieldSeverityScore:
		return m.SeverityScore()
	case assessment.FieldDisorderID:
		return m.DisorderID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessment.FieldSessionID:
		return m.OldSessionID(ctx)
	case assessment.FieldAnswers:
		return m.OldAnswers(ctx)
	case assessment.FieldResult:
		return m.OldResult(ctx)
	case assessment.FieldSeverityScore:
		return m.OldSeverityScore(ctx)
	case assessment.FieldDisorderID:
		return m.OldDisorderID(ctx)
	}
	return nil, fmt.Errorf("unknown Assessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessment.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case assessment.FieldAnswers:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case assessment.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case assessment.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityScore(v)
		return nil
	case assessment.FieldDisorderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisorderID(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addseverity_score != nil {
		fields = append(fields, assessment.FieldSeverityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessment.FieldSeverityScore:
		return m.AddedSeverityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessment.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Assessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessment.FieldAnswers) {
		fields = append(fields, assessment.FieldAnswers)
	}
	if m.FieldCleared(assessment.FieldResult) {
		fields = append(fields, assessment.FieldResult)
	}
	if m.FieldCleared(assessment.FieldDisorderID) {
		fields = append(fields, assessment.FieldDisorderID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentMutation) ClearField(name string) error {
	switch name {
	case assessment.FieldAnswers:
		m.ClearAnswers()
		return nil
	case assessment.FieldResult:
		m.ClearResult()
		return nil
	case assessment.FieldDisorderID:
		m.ClearDisorderID()
		return nil
	}
	return fmt.Errorf("unknown Assessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentMutation) ResetField(name string) error {
	switch name {
	case assessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessment.FieldSessionID:
		m.ResetSessionID()
		return nil
	case assessment.FieldAnswers:
		m.ResetAnswers()
		return nil
	case assessment.FieldResult:
		m.ResetResult()
		return nil
	case assessment.FieldSeverityScore:
		m.ResetSeverityScore()
		return nil
	case assessment.FieldDisorderID:
		m.ResetDisorderID()
		return nil
	}
	return fmt.Errorf("unknown Assessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.disorder != nil {
		edges = append(edges, assessment.EdgeDisorder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessment.EdgeDisorder:
		if id := m.disorder; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddisorder {
		edges = append(edges, assessment.EdgeDisorder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentMutation) EdgeCleared(name string) bool {
	switch name {
	case assessment.EdgeDisorder:
		return m.cleareddisorder
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentMutation) ClearEdge(name string) error {
	switch name {
	case assessment.EdgeDisorder:
		m.ClearDisorder()
		return nil
	}
	return fmt.Errorf("unknown Assessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentMutation) ResetEdge(name string) error {
	switch name {
	case assessment.EdgeDisorder:
		m.ResetDisorder()
		return nil
	}
	return fmt.Errorf("unknown Assessment edge %s", name)
}

// DisorderMutation represents an operation that mutates the Disorder nodes in the graph.
type DisorderMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	created_at         *time.Time
	name               *string
	description        *string
	symptoms           *string
	clearedFields      map[string]struct{}
	remedies           map[int]struct{}
	removedremedies    map[int]struct{}
	clearedremedies    bool
	assessments        map[int]struct{}
	removedassessments map[int]struct{}
	clearedassessments bool
	done               bool
	oldValue           func(context.Context) (*Disorder, error)
	predicates         []predicate.Disorder
}

var _ ent.Mutation = (*DisorderMutation)(nil)

// disorderOption allows management of the mutation configuration using functional options.
type disorderOption func(*DisorderMutation)

// newDisorderMutation creates new mutation for the Disorder entity.
func newDisorderMutation(c config, op Op, opts ...disorderOption) *DisorderMutation {
	m := &DisorderMutation{
		config:        c,
		op:            op,
		typ:           TypeDisorder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDisorderID sets the ID field of the mutation.
func withDisorderID(id int) disorderOption {
	return func(m *DisorderMutation) {
		var (
			err   error
			once  sync.Once
			value *Disorder
		)
		m.oldValue = func(ctx context.Context) (*Disorder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Disorder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDisorder sets the old Disorder of the mutation.
func withDisorder(node *Disorder) disorderOption {
	return func(m *DisorderMutation) {
		m.oldValue = func(context.Context) (*Disorder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DisorderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DisorderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DisorderMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DisorderMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Disorder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DisorderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DisorderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Disorder entity.
// If the Disorder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisorderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DisorderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *DisorderMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DisorderMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Disorder entity.
// If the Disorder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisorderMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DisorderMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *DisorderMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DisorderMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Disorder entity.
// If the Disorder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisorderMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DisorderMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[disorder.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DisorderMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[disorder.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DisorderMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, disorder.FieldDescription)
}

// SetSymptoms sets the "symptoms" field.
func (m *DisorderMutation) SetSymptoms(s string) {
	m.symptoms = &s
}

// Symptoms returns the value of the "symptoms" field in the mutation.
func (m *DisorderMutation) Symptoms() (r string, exists bool) {
	v := m.symptoms
	if v == nil {
		return
	}
	return *v, true
}

// OldSymptoms returns the old "symptoms" field's value of the Disorder entity.
// If the Disorder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisorderMutation) OldSymptoms(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymptoms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymptoms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymptoms: %w", err)
	}
	return oldValue.Symptoms, nil
}

// ClearSymptoms clears the value of the "symptoms" field.
func (m *DisorderMutation) ClearSymptoms() {
	m.symptoms = nil
	m.clearedFields[disorder.FieldSymptoms] = struct{}{}
}

// SymptomsCleared returns if the "symptoms" field was cleared in this mutation.
func (m *DisorderMutation) SymptomsCleared() bool {
	_, ok := m.clearedFields[disorder.FieldSymptoms]
	return ok
}

// ResetSymptoms resets all changes to the "symptoms" field.
func (m *DisorderMutation) ResetSymptoms() {
	m.symptoms = nil
	delete(m.clearedFields, disorder.FieldSymptoms)
}

// AddRemedyIDs adds the "remedies" edge to the Remedy entity by ids.
func (m *DisorderMutation) AddRemedyIDs(ids ...int) {
	if m.remedies == nil {
		m.remedies = make(map[int]struct{})
	}
	for i := range ids {
		m.remedies[ids[i]] = struct{}{}
	}
}

// ClearRemedies clears the "remedies" edge to the Remedy entity.
func (m *DisorderMutation) ClearRemedies() {
	m.clearedremedies = true
}

// RemediesCleared reports if the "remedies" edge to the Remedy entity was cleared.
func (m *DisorderMutation) RemediesCleared() bool {
	return m.clearedremedies
}

// RemoveRemedyIDs removes the "remedies" edge to the Remedy entity by IDs.
func (m *DisorderMutation) RemoveRemedyIDs(ids ...int) {
	if m.removedremedies == nil {
		m.removedremedies = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.remedies, ids[i])
		m.removedremedies[ids[i]] = struct{}{}
	}
}

// RemovedRemedies returns the removed IDs of the "remedies" edge to the Remedy entity.
func (m *DisorderMutation) RemovedRemediesIDs() (ids []int) {
	for id := range m.removedremedies {
		ids = append(ids, id)
	}
	return
}

// RemediesIDs returns the "remedies" edge IDs in the mutation.
func (m *DisorderMutation) RemediesIDs() (ids []int) {
	for id := range m.remedies {
		ids = append(ids, id)
	}
	return
}

// ResetRemedies resets all changes to the "remedies" edge.
func (m *DisorderMutation) ResetRemedies() {
	m.remedies = nil
	m.clearedremedies = false
	m.removedremedies = nil
}

// AddAssessmentIDs adds the "assessments" edge to the Assessment entity by ids.
func (m *DisorderMutation) AddAssessmentIDs(ids ...int) {
	if m.assessments == nil {
		m.assessments = make(map[int]struct{})
	}
	for i := range ids {
		m.assessments[ids[i]] = struct{}{}
	}
}

// ClearAssessments clears the "assessments" edge to the Assessment entity.
func (m *DisorderMutation) ClearAssessments() {
	m.clearedassessments = true
}

// AssessmentsCleared reports if the "assessments" edge to the Assessment entity was cleared.
func (m *DisorderMutation) AssessmentsCleared() bool {
	return m.clearedassessments
}

// RemoveAssessmentIDs removes the "assessments" edge to the Assessment entity by IDs.
func (m *DisorderMutation) RemoveAssessmentIDs(ids ...int) {
	if m.removedassessments == nil {
		m.removedassessments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assessments, ids[i])
		m.removedassessments[ids[i]] = struct{}{}
	}
}

// RemovedAssessments returns the removed IDs of the "assessments" edge to the Assessment entity.
func (m *DisorderMutation) RemovedAssessmentsIDs() (ids []int) {
	for id := range m.removedassessments {
		ids = append(ids, id)
	}
	return
}

// AssessmentsIDs returns the "assessments" edge IDs in the mutation.
func (m *DisorderMutation) AssessmentsIDs() (ids []int) {
	for id := range m.assessments {
		ids = append(ids, id)
	}
	return
}

// ResetAssessments resets all changes to the "assessments" edge.
func (m *DisorderMutation) ResetAssessments() {
	m.assessments = nil
	m.clearedassessments = false
	m.removedassessments = nil
}

// Where appends a list predicates to the DisorderMutation builder.
func (m *DisorderMutation) Where(ps ...predicate.Disorder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DisorderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DisorderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Disorder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DisorderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DisorderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Disorder).
func (m *DisorderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DisorderMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, disorder.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, disorder.FieldName)
	}
	if m.description != nil {
		fields = append(fields, disorder.FieldDescription)
	}
	if m.symptoms != nil {
		fields = append(fields, disorder.FieldSymptoms)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DisorderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case disorder.FieldCreatedAt:
		return m.CreatedAt()
	case disorder.FieldName:
		return m.Name()
	case disorder.FieldDescription:
		return m.Description()
	case disorder.FieldSymptoms:
		return m.Symptoms()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DisorderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case disorder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case disorder.FieldName:
		return m.OldName(ctx)
	case disorder.FieldDescription:
		return m.OldDescription(ctx)
	case disorder.FieldSymptoms:
		return m.OldSymptoms(ctx)
	}
	return nil, fmt.Errorf("unknown Disorder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DisorderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case disorder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case disorder.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case disorder.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case disorder.FieldSymptoms:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymptoms(v)
		return nil
	}
	return fmt.Errorf("unknown Disorder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DisorderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DisorderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DisorderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Disorder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DisorderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(disorder.FieldDescription) {
		fields = append(fields, disorder.FieldDescription)
	}
	if m.FieldCleared(disorder.FieldSymptoms) {
		fields = append(fields, disorder.FieldSymptoms)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DisorderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DisorderMutation) ClearField(name string) error {
	switch name {
	case disorder.FieldDescription:
		m.ClearDescription()
		return nil
	case disorder.FieldSymptoms:
		m.ClearSymptoms()
		return nil
	}
	return fmt.Errorf("unknown Disorder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DisorderMutation) ResetField(name string) error {
	switch name {
	case disorder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case disorder.FieldName:
		m.ResetName()
		return nil
	case disorder.FieldDescription:
		m.ResetDescription()
		return nil
	case disorder.FieldSymptoms:
		m.ResetSymptoms()
		return nil
	}
	return fmt.Errorf("unknown Disorder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DisorderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.remedies != nil {
		edges = append(edges, disorder.EdgeRemedies)
	}
	if m.assessments != nil {
		edges = append(edges, disorder.EdgeAssessments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DisorderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case disorder.EdgeRemedies:
		ids := make([]ent.Value, 0, len(m.remedies))
		for id := range m.remedies {
			ids = append(ids, id)
		}
		return ids
	case disorder.EdgeAssessments:
		ids := make([]ent.Value, 0, len(m.assessments))
		for id := range m.assessments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DisorderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedremedies != nil {
		edges = append(edges, disorder.EdgeRemedies)
	}
	if m.removedassessments != nil {
		edges = append(edges, disorder.EdgeAssessments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DisorderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case disorder.EdgeRemedies:
		ids := make([]ent.Value, 0, len(m.removedremedies))
		for id := range m.removedremedies {
			ids = append(ids, id)
		}
		return ids
	case disorder.EdgeAssessments:
		ids := make([]ent.Value, 0, len(m.removedassessments))
		for id := range m.removedassessments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DisorderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedremedies {
		edges = append(edges, disorder.EdgeRemedies)
	}
	if m.clearedassessments {
		edges = append(edges, disorder.EdgeAssessments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DisorderMutation) EdgeCleared(name string) bool {
	switch name {
	case disorder.EdgeRemedies:
		return m.clearedremedies
	case disorder.EdgeAssessments:
		return m.clearedassessments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DisorderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Disorder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DisorderMutation) ResetEdge(name string) error {
	switch name {
	case disorder.EdgeRemedies:
		m.ResetRemedies()
		return nil
	case disorder.EdgeAssessments:
		m.ResetAssessments()
		return nil
	}
	return fmt.Errorf("unknown Disorder edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	created_at     *time.Time
	text           *string
	category       *string
	weight         *int
	addweight      *int
	order_index    *int
	addorder_index *int
	is_active      *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Question, error)
	predicates     []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetCategory sets the "category" field.
func (m *QuestionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *QuestionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *QuestionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[question.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *QuestionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[question.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *QuestionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, question.FieldCategory)
}

// SetWeight sets the "weight" field.
func (m *QuestionMutation) SetWeight(i int) {
	m.weight = &i
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *QuestionMutation) Weight() (r int, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldWeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds i to the "weight" field.
func (m *QuestionMutation) AddWeight(i int) {
	if m.addweight != nil {
		*m.addweight += i
	} else {
		m.addweight = &i
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *QuestionMutation) AddedWeight() (r int, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *QuestionMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *QuestionMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *QuestionMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *QuestionMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *QuestionMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *QuestionMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetIsActive sets the "is_active" field.
func (m *QuestionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *QuestionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *QuestionMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m.category != nil {
		fields = append(fields, question.FieldCategory)
	}
	if m.weight != nil {
		fields = append(fields, question.FieldWeight)
	}
	if m.order_index != nil {
		fields = append(fields, question.FieldOrderIndex)
	}
	if m.is_active != nil {
		fields = append(fields, question.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldText:
		return m.Text()
	case question.FieldCategory:
		return m.Category()
	case question.FieldWeight:
		return m.Weight()
	case question.FieldOrderIndex:
		return m.OrderIndex()
	case question.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldCategory:
		return m.OldCategory(ctx)
	case question.FieldWeight:
		return m.OldWeight(ctx)
	case question.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case question.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case question.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case question.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case question.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, question.FieldWeight)
	}
	if m.addorder_index != nil {
		fields = append(fields, question.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldWeight:
		return m.AddedWeight()
	case question.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case question.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldCategory) {
		fields = append(fields, question.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldCategory:
		m.ResetCategory()
		return nil
	case question.FieldWeight:
		m.ResetWeight()
		return nil
	case question.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case question.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// RemedyMutation represents an operation that mutates the Remedy nodes in the graph.
type RemedyMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	title           *string
	description     *string
	category        *string
	clearedFields   map[string]struct{}
	disorder        *int
	cleareddisorder bool
	done            bool
	oldValue        func(context.Context) (*Remedy, error)
	predicates      []predicate.Remedy
}

var _ ent.Mutation = (*RemedyMutation)(nil)

// remedyOption allows management of the mutation configuration using functional options.
type remedyOption func(*RemedyMutation)

// newRemedyMutation creates new mutation for the Remedy entity.
func newRemedyMutation(c config, op Op, opts ...remedyOption) *RemedyMutation {
	m := &RemedyMutation{
		config:        c,
		op:            op,
		typ:           TypeRemedy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRemedyID sets the ID field of the mutation.
func withRemedyID(id int) remedyOption {
	return func(m *RemedyMutation) {
		var (
			err   error
			once  sync.Once
			value *Remedy
		)
		m.oldValue = func(ctx context.Context) (*Remedy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Remedy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRemedy sets the old Remedy of the mutation.
func withRemedy(node *Remedy) remedyOption {
	return func(m *RemedyMutation) {
		m.oldValue = func(context.Context) (*Remedy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RemedyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RemedyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RemedyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RemedyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Remedy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RemedyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RemedyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Remedy entity.
// If the Remedy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemedyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RemedyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDisorderID sets the "disorder_id" field.
func (m *RemedyMutation) SetDisorderID(i int) {
	m.disorder = &i
}

// DisorderID returns the value of the "disorder_id" field in the mutation.
func (m *RemedyMutation) DisorderID() (r int, exists bool) {
	v := m.disorder
	if v == nil {
		return
	}
	return *v, true
}

// OldDisorderID returns the old "disorder_id" field's value of the Remedy entity.
// If the Remedy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemedyMutation) OldDisorderID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisorderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisorderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisorderID: %w", err)
	}
	return oldValue.DisorderID, nil
}

// ResetDisorderID resets all changes to the "disorder_id" field.
func (m *RemedyMutation) ResetDisorderID() {
	m.disorder = nil
}

// SetTitle sets the "title" field.
func (m *RemedyMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RemedyMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Remedy entity.
// If the Remedy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemedyMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RemedyMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RemedyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RemedyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Remedy entity.
// If the Remedy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemedyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RemedyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[remedy.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RemedyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[remedy.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RemedyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, remedy.FieldDescription)
}

// SetCategory sets the "category" field.
func (m *RemedyMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *RemedyMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Remedy entity.
// If the Remedy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemedyMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *RemedyMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[remedy.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *RemedyMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[remedy.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *RemedyMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, remedy.FieldCategory)
}

// ClearDisorder clears the "disorder" edge to the Disorder entity.
func (m *RemedyMutation) ClearDisorder() {
	m.cleareddisorder = true
	m.clearedFields[remedy.FieldDisorderID] = struct{}{}
}

// DisorderCleared reports if the "disorder" edge to the Disorder entity was cleared.
func (m *RemedyMutation) DisorderCleared() bool {
	return m.cleareddisorder
}

// DisorderIDs returns the "disorder" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DisorderID instead. It exists only for internal usage by the builders.
func (m *RemedyMutation) DisorderIDs() (ids []int) {
	if id := m.disorder; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDisorder resets all changes to the "disorder" edge.
func (m *RemedyMutation) ResetDisorder() {
	m.disorder = nil
	m.cleareddisorder = false
}

// Where appends a list predicates to the RemedyMutation builder.
func (m *RemedyMutation) Where(ps ...predicate.Remedy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RemedyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RemedyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Remedy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RemedyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RemedyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Remedy).
func (m *RemedyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RemedyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, remedy.FieldCreatedAt)
	}
	if m.disorder != nil {
		fields = append(fields, remedy.FieldDisorderID)
	}
	if m.title != nil {
		fields = append(fields, remedy.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, remedy.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, remedy.FieldCategory)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RemedyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case remedy.FieldCreatedAt:
		return m.CreatedAt()
	case remedy.FieldDisorderID:
		return m.DisorderID()
	case remedy.FieldTitle:
		return m.Title()
	case remedy.FieldDescription:
		return m.Description()
	case remedy.FieldCategory:
		return m.Category()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RemedyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case remedy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case remedy.FieldDisorderID:
		return m.OldDisorderID(ctx)
	case remedy.FieldTitle:
		return m.OldTitle(ctx)
	case remedy.FieldDescription:
		return m.OldDescription(ctx)
	case remedy.FieldCategory:
		return m.OldCategory(ctx)
	}
	return nil, fmt.Errorf("unknown Remedy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RemedyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case remedy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case remedy.FieldDisorderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisorderID(v)
		return nil
	case remedy.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case remedy.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case remedy.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	}
	return fmt.Errorf("unknown Remedy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RemedyMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RemedyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RemedyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Remedy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RemedyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(remedy.FieldDescription) {
		fields = append(fields, remedy.FieldDescription)
	}
	if m.FieldCleared(remedy.FieldCategory) {
		fields = append(fields, remedy.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RemedyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RemedyMutation) ClearField(name string) error {
	switch name {
	case remedy.FieldDescription:
		m.ClearDescription()
		return nil
	case remedy.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Remedy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RemedyMutation) ResetField(name string) error {
	switch name {
	case remedy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case remedy.FieldDisorderID:
		m.ResetDisorderID()
		return nil
	case remedy.FieldTitle:
		m.ResetTitle()
		return nil
	case remedy.FieldDescription:
		m.ResetDescription()
		return nil
	case remedy.FieldCategory:
		m.ResetCategory()
		return nil
	}
	return fmt.Errorf("unknown Remedy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RemedyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.disorder != nil {
		edges = append(edges, remedy.EdgeDisorder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RemedyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case remedy.EdgeDisorder:
		if id := m.disorder; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RemedyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RemedyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RemedyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddisorder {
		edges = append(edges, remedy.EdgeDisorder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RemedyMutation) EdgeCleared(name string) bool {
	switch name {
	case remedy.EdgeDisorder:
		return m.cleareddisorder
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RemedyMutation) ClearEdge(name string) error {
	switch name {
	case remedy.EdgeDisorder:
		m.ClearDisorder()
		return nil
	}
	return fmt.Errorf("unknown Remedy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RemedyMutation) ResetEdge(name string) error {
	switch name {
	case remedy.EdgeDisorder:
		m.ResetDisorder()
		return nil
	}
	return fmt.Errorf("unknown Remedy edge %s", name)
}
