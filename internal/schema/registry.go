package schema

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// Operation names.
const (
	OpFindUnique = "findUnique"
	OpFindFirst  = "findFirst"
	OpFindMany   = "findMany"
	OpCreate     = "create"
	OpCreateMany = "createMany"
	OpUpdate     = "update"
	OpUpdateMany = "updateMany"
	OpUpsert     = "upsert"
	OpDelete     = "delete"
	OpDeleteMany = "deleteMany"
	OpCount      = "count"
	OpAggregate  = "aggregate"
	OpGroupBy    = "groupBy"
)

// Model names.
const (
	ModelUser           = "user"
	ModelProject        = "project"
	ModelBudget         = "budget"
	ModelTeam           = "team"
	ModelMilestone      = "milestone"
	ModelChecklistItem  = "checklistItem"
	ModelDocument       = "document"
	ModelSiteImage      = "siteImage"
	ModelOutgoingLetter = "outgoingLetter"
	ModelIncomingLetter = "incomingLetter"
	ModelReport         = "report"
)

// Model describes one registered model.
type Model struct {
	Name  string
	Table string
}

type decodeFunc func(data []byte) (*Operation, error)

type runner interface {
	run(ctx context.Context, e Engine) (any, error)
}

// Registry maps (model, operation) pairs to their argument decoders.
type Registry struct {
	models map[string]Model
	ops    map[string]map[string]decodeFunc
}

// NewRegistry returns a registry with every model and operation registered.
func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]Model),
		ops:    make(map[string]map[string]decodeFunc),
	}

	registerModel[UserWhereInput, UserWhereUniqueInput, UserOrderByInput, UserScalarField, NoNumericField,
		UserScalarWhereWithAggregatesInput, UserCreateInput, UserUpdateInput, UserUpdateInput](r, ModelUser, usersTable)
	registerModel[ProjectWhereInput, ProjectWhereUniqueInput, ProjectOrderByInput, ProjectScalarField, NoNumericField,
		ProjectScalarWhereWithAggregatesInput, ProjectCreateInput, ProjectUpdateInput, ProjectUpdateData](r, ModelProject, projectsTable)
	registerModel[BudgetWhereInput, BudgetWhereUniqueInput, BudgetOrderByInput, BudgetScalarField, BudgetNumericField,
		BudgetScalarWhereWithAggregatesInput, BudgetCreateInput, BudgetUpdateInput, BudgetUpdateData](r, ModelBudget, budgetsTable)
	registerModel[TeamWhereInput, TeamWhereUniqueInput, TeamOrderByInput, TeamScalarField, TeamNumericField,
		TeamScalarWhereWithAggregatesInput, TeamCreateInput, TeamUpdateInput, TeamUpdateData](r, ModelTeam, teamsTable)
	registerModel[MilestoneWhereInput, MilestoneWhereUniqueInput, MilestoneOrderByInput, MilestoneScalarField, NoNumericField,
		MilestoneScalarWhereWithAggregatesInput, MilestoneCreateInput, MilestoneUpdateInput, MilestoneUpdateData](r, ModelMilestone, milestonesTable)
	registerModel[ChecklistItemWhereInput, ChecklistItemWhereUniqueInput, ChecklistItemOrderByInput, ChecklistItemScalarField, NoNumericField,
		ChecklistItemScalarWhereWithAggregatesInput, ChecklistItemCreateInput, ChecklistItemUpdateInput, ChecklistItemUpdateData](r, ModelChecklistItem, checklistItemsTable)
	registerModel[DocumentWhereInput, DocumentWhereUniqueInput, DocumentOrderByInput, DocumentScalarField, NoNumericField,
		DocumentScalarWhereWithAggregatesInput, DocumentCreateInput, DocumentUpdateInput, DocumentUpdateData](r, ModelDocument, documentsTable)
	registerModel[SiteImageWhereInput, SiteImageWhereUniqueInput, SiteImageOrderByInput, SiteImageScalarField, NoNumericField,
		SiteImageScalarWhereWithAggregatesInput, SiteImageCreateInput, SiteImageUpdateInput, SiteImageUpdateData](r, ModelSiteImage, siteImagesTable)
	registerModel[OutgoingLetterWhereInput, OutgoingLetterWhereUniqueInput, OutgoingLetterOrderByInput, OutgoingLetterScalarField, NoNumericField,
		OutgoingLetterScalarWhereWithAggregatesInput, OutgoingLetterCreateInput, OutgoingLetterUpdateInput, OutgoingLetterUpdateData](r, ModelOutgoingLetter, outgoingLettersTable)
	registerModel[IncomingLetterWhereInput, IncomingLetterWhereUniqueInput, IncomingLetterOrderByInput, IncomingLetterScalarField, NoNumericField,
		IncomingLetterScalarWhereWithAggregatesInput, IncomingLetterCreateInput, IncomingLetterUpdateInput, IncomingLetterUpdateData](r, ModelIncomingLetter, incomingLettersTable)
	registerModel[ReportWhereInput, ReportWhereUniqueInput, ReportOrderByInput, ReportScalarField, NoNumericField,
		ReportScalarWhereWithAggregatesInput, ReportCreateInput, ReportUpdateInput, ReportUpdateData](r, ModelReport, reportsTable)

	return r
}

// registerModel wires every operation of one model. W, WU and O are its where,
// where-unique and order-by inputs; F and N its scalar and numeric field sets;
// H its having input; C, U and UD its create, update and updateMany payloads.
func registerModel[
	W whereInput, WU uniqueInput, O orderInput, F, N scalarField, H whereInput,
	C, U, UD writeInput,
](r *Registry, name, table string) {
	r.models[name] = Model{Name: name, Table: table}
	r.ops[name] = map[string]decodeFunc{
		OpFindUnique: entry[FindUniqueArgs[WU]](),
		OpFindFirst:  entry[FindFirstArgs[W, O, WU, F]](),
		OpFindMany:   entry[FindManyArgs[W, O, WU, F]](),
		OpCreate:     entry[CreateArgs[C]](),
		OpCreateMany: entry[CreateManyArgs[C]](),
		OpUpdate:     entry[UpdateArgs[U, WU]](),
		OpUpdateMany: entry[UpdateManyArgs[UD, W]](),
		OpUpsert:     entry[UpsertArgs[C, U, WU]](),
		OpDelete:     entry[DeleteArgs[WU]](),
		OpDeleteMany: entry[DeleteManyArgs[W]](),
		OpCount:      entry[CountArgs[W, O, WU]](),
		OpAggregate:  entry[AggregateArgs[W, O, WU, F, N]](),
		OpGroupBy:    entry[GroupByArgs[W, F, N, H]](),
	}
}

func entry[A any, PA interface {
	*A
	runner
}]() decodeFunc {
	return func(data []byte) (*Operation, error) {
		args, err := Decode[A](data)
		if err != nil {
			return nil, err
		}
		return &Operation{Args: args, run: PA(args).run}, nil
	}
}

// Decode validates the arguments of an operation on a model. Unknown models
// and operations wrap domain.ErrNotFound; invalid arguments are returned as
// *domain.ValidationError. An empty body is read as {}.
func (r *Registry) Decode(model, op string, data []byte) (*Operation, error) {
	ops, ok := r.ops[model]
	if !ok {
		return nil, fmt.Errorf("model %q: %w", model, domain.ErrNotFound)
	}
	dec, ok := ops[op]
	if !ok {
		return nil, fmt.Errorf("operation %q on %s: %w", op, model, domain.ErrNotFound)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	o, err := dec(data)
	if err != nil {
		return nil, err
	}
	o.Model, o.Name = model, op
	return o, nil
}

// Models returns the registered models ordered by name.
func (r *Registry) Models() []Model {
	out := make([]Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Operations returns the operation names in a stable order.
func Operations() []string {
	return []string{
		OpFindUnique, OpFindFirst, OpFindMany,
		OpCreate, OpCreateMany,
		OpUpdate, OpUpdateMany, OpUpsert,
		OpDelete, OpDeleteMany,
		OpCount, OpAggregate, OpGroupBy,
	}
}
