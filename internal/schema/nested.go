package schema

// Nested relation writes. C, U, W and WU stand for the related model's create,
// update, where and where-unique shapes.

type ConnectOrCreate[C, WU any] struct {
	Where  *WU `json:"where" validate:"required"`
	Create *C  `json:"create" validate:"required"`
}

type UpsertOne[C, U any] struct {
	Create *C `json:"create" validate:"required"`
	Update *U `json:"update" validate:"required"`
}

type UpsertWithWhere[C, U, WU any] struct {
	Where  *WU `json:"where" validate:"required"`
	Update *U  `json:"update" validate:"required"`
	Create *C  `json:"create" validate:"required"`
}

type UpdateWithWhere[U, WU any] struct {
	Where *WU `json:"where" validate:"required"`
	Data  *U  `json:"data" validate:"required"`
}

type UpdateManyWithWhere[U, W any] struct {
	Where *W `json:"where" validate:"required"`
	Data  *U `json:"data" validate:"required"`
}

type CreateManyEnvelope[C any] struct {
	Data           OneOrMany[C] `json:"data" validate:"required,dive"`
	SkipDuplicates *bool        `json:"skipDuplicates,omitempty"`
}

// NestedCreateOne links a to-one relation while creating.
type NestedCreateOne[C, WU any] struct {
	Create          *C                      `json:"create,omitempty"`
	ConnectOrCreate *ConnectOrCreate[C, WU] `json:"connectOrCreate,omitempty"`
	Connect         *WU                     `json:"connect,omitempty"`
}

// NestedUpdateOne changes a required to-one relation while updating.
type NestedUpdateOne[C, U, WU any] struct {
	Create          *C                      `json:"create,omitempty"`
	ConnectOrCreate *ConnectOrCreate[C, WU] `json:"connectOrCreate,omitempty"`
	Upsert          *UpsertOne[C, U]        `json:"upsert,omitempty"`
	Connect         *WU                     `json:"connect,omitempty"`
	Update          *U                      `json:"update,omitempty"`
}

// NestedOptionalOne changes an optional to-one relation while updating.
type NestedOptionalOne[C, U, WU any] struct {
	Create          *C                      `json:"create,omitempty"`
	ConnectOrCreate *ConnectOrCreate[C, WU] `json:"connectOrCreate,omitempty"`
	Upsert          *UpsertOne[C, U]        `json:"upsert,omitempty"`
	Disconnect      *bool                   `json:"disconnect,omitempty"`
	Delete          *bool                   `json:"delete,omitempty"`
	Connect         *WU                     `json:"connect,omitempty"`
	Update          *U                      `json:"update,omitempty"`
}

// NestedCreateMany populates a to-many relation while creating.
type NestedCreateMany[C, WU any] struct {
	Create          OneOrMany[C]                      `json:"create,omitempty" validate:"omitempty,dive"`
	ConnectOrCreate OneOrMany[ConnectOrCreate[C, WU]] `json:"connectOrCreate,omitempty" validate:"omitempty,dive"`
	CreateMany      *CreateManyEnvelope[C]            `json:"createMany,omitempty"`
	Connect         OneOrMany[WU]                     `json:"connect,omitempty" validate:"omitempty,dive"`
}

// NestedUpdateMany changes a to-many relation while updating.
type NestedUpdateMany[C, U, W, WU any] struct {
	Create          OneOrMany[C]                         `json:"create,omitempty" validate:"omitempty,dive"`
	ConnectOrCreate OneOrMany[ConnectOrCreate[C, WU]]    `json:"connectOrCreate,omitempty" validate:"omitempty,dive"`
	Upsert          OneOrMany[UpsertWithWhere[C, U, WU]] `json:"upsert,omitempty" validate:"omitempty,dive"`
	CreateMany      *CreateManyEnvelope[C]               `json:"createMany,omitempty"`
	Set             OneOrMany[WU]                        `json:"set,omitempty" validate:"omitempty,dive"`
	Disconnect      OneOrMany[WU]                        `json:"disconnect,omitempty" validate:"omitempty,dive"`
	Delete          OneOrMany[WU]                        `json:"delete,omitempty" validate:"omitempty,dive"`
	Connect         OneOrMany[WU]                        `json:"connect,omitempty" validate:"omitempty,dive"`
	Update          OneOrMany[UpdateWithWhere[U, WU]]    `json:"update,omitempty" validate:"omitempty,dive"`
	UpdateMany      OneOrMany[UpdateManyWithWhere[U, W]] `json:"updateMany,omitempty" validate:"omitempty,dive"`
	DeleteMany      OneOrMany[W]                         `json:"deleteMany,omitempty" validate:"omitempty,dive"`
}

// valuer is a create payload without relation fields.
type valuer interface {
	values() map[string]any
}

// child describes the table and foreign key of a relation owned by the
// written row.
type child struct {
	field string
	table string
	fk    string
}

func (c child) rows(w *Write, items []map[string]any, skipDuplicates bool) {
	if len(items) == 0 {
		return
	}
	w.Children = append(w.Children, ChildWrite{
		Table:          c.table,
		ForeignKey:     c.fk,
		Rows:           items,
		SkipDuplicates: skipDuplicates,
	})
}

func valuesOf[C valuer](items []C) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, it.values())
	}
	return out
}

func createOne[C valuer, WU any](w *Write, c child, n *NestedCreateOne[C, WU]) {
	if n == nil {
		return
	}
	if n.Create != nil {
		c.rows(w, []map[string]any{(*n.Create).values()}, false)
	}
	pending(w, c.field, []flag{
		{"connectOrCreate", n.ConnectOrCreate != nil},
		{"connect", n.Connect != nil},
	})
}

func updateOptionalOne[C valuer, U, WU any](w *Write, c child, n *NestedOptionalOne[C, U, WU]) {
	if n == nil {
		return
	}
	if n.Create != nil {
		c.rows(w, []map[string]any{(*n.Create).values()}, false)
	}
	pending(w, c.field, []flag{
		{"connectOrCreate", n.ConnectOrCreate != nil},
		{"upsert", n.Upsert != nil},
		{"disconnect", n.Disconnect != nil},
		{"delete", n.Delete != nil},
		{"connect", n.Connect != nil},
		{"update", n.Update != nil},
	})
}

func createMany[C valuer, WU any](w *Write, c child, n *NestedCreateMany[C, WU]) {
	if n == nil {
		return
	}
	c.rows(w, valuesOf(n.Create), false)
	if n.CreateMany != nil {
		c.rows(w, valuesOf(n.CreateMany.Data), boolValue(n.CreateMany.SkipDuplicates))
	}
	pending(w, c.field, []flag{
		{"connectOrCreate", n.ConnectOrCreate != nil},
		{"connect", n.Connect != nil},
	})
}

func updateMany[C valuer, U, W, WU any](w *Write, c child, n *NestedUpdateMany[C, U, W, WU]) {
	if n == nil {
		return
	}
	c.rows(w, valuesOf(n.Create), false)
	if n.CreateMany != nil {
		c.rows(w, valuesOf(n.CreateMany.Data), boolValue(n.CreateMany.SkipDuplicates))
	}
	pending(w, c.field, []flag{
		{"connectOrCreate", n.ConnectOrCreate != nil},
		{"upsert", n.Upsert != nil},
		{"set", n.Set != nil},
		{"disconnect", n.Disconnect != nil},
		{"delete", n.Delete != nil},
		{"connect", n.Connect != nil},
		{"update", n.Update != nil},
		{"updateMany", n.UpdateMany != nil},
		{"deleteMany", n.DeleteMany != nil},
	})
}

type flag struct {
	op  string
	set bool
}

func pending(w *Write, field string, flags []flag) {
	for _, f := range flags {
		if f.set {
			w.nested(field, f.op)
		}
	}
}

// linkProject resolves the owning project of a child row. The unchecked
// projectId or a connect by id become the foreign key; the other operations
// are reported as nested.
func linkProject(w *Write, id *UUID, connect *ProjectWhereUniqueInput, others []flag) {
	switch {
	case id != nil:
		w.Values["project_id"] = *id
	case connect != nil && connect.ID != nil:
		w.Values["project_id"] = *connect.ID
	case connect != nil:
		w.nested("project", "connect")
	}
	pending(w, "project", others)
}

func (n *NestedCreateOne[C, WU]) parent() (*WU, []flag) {
	if n == nil {
		return nil, nil
	}
	return n.Connect, []flag{
		{"create", n.Create != nil},
		{"connectOrCreate", n.ConnectOrCreate != nil},
	}
}

func (n *NestedUpdateOne[C, U, WU]) parent() (*WU, []flag) {
	if n == nil {
		return nil, nil
	}
	return n.Connect, []flag{
		{"create", n.Create != nil},
		{"connectOrCreate", n.ConnectOrCreate != nil},
		{"upsert", n.Upsert != nil},
		{"update", n.Update != nil},
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
