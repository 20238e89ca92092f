package records

import (
	"context"
	"sync"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

var _ schema.Engine = &engineMock{}

type engineMock struct {
	FindUniqueFunc func(ctx context.Context, where sq.Sqlizer) (any, error)
	FindFirstFunc  func(ctx context.Context, q schema.Query) (any, error)
	FindManyFunc   func(ctx context.Context, q schema.Query) (any, error)
	CreateFunc     func(ctx context.Context, w schema.Write) (any, error)
	CreateManyFunc func(ctx context.Context, rows []schema.Write, skipDuplicates bool) (int64, error)
	UpdateFunc     func(ctx context.Context, where sq.Sqlizer, w schema.Write) (any, error)
	UpdateManyFunc func(ctx context.Context, where sq.Sqlizer, w schema.Write) (int64, error)
	UpsertFunc     func(ctx context.Context, where sq.Sqlizer, create schema.Write, update schema.Write) (any, error)
	DeleteFunc     func(ctx context.Context, where sq.Sqlizer) (any, error)
	DeleteManyFunc func(ctx context.Context, where sq.Sqlizer) (int64, error)
	CountFunc      func(ctx context.Context, q schema.Query) (int64, error)
	AggregateFunc  func(ctx context.Context, q schema.Query, a schema.Aggregation) (map[string]any, error)
	GroupByFunc    func(ctx context.Context, q schema.Query, g schema.Grouping) ([]map[string]any, error)

	calls struct {
		FindUnique []struct {
			Ctx   context.Context
			Where sq.Sqlizer
		}
		FindFirst []struct {
			Ctx context.Context
			Q   schema.Query
		}
		FindMany []struct {
			Ctx context.Context
			Q   schema.Query
		}
		Create []struct {
			Ctx context.Context
			W   schema.Write
		}
		CreateMany []struct {
			Ctx            context.Context
			Rows           []schema.Write
			SkipDuplicates bool
		}
		Update []struct {
			Ctx   context.Context
			Where sq.Sqlizer
			W     schema.Write
		}
		UpdateMany []struct {
			Ctx   context.Context
			Where sq.Sqlizer
			W     schema.Write
		}
		Upsert []struct {
			Ctx    context.Context
			Where  sq.Sqlizer
			Create schema.Write
			Update schema.Write
		}
		Delete []struct {
			Ctx   context.Context
			Where sq.Sqlizer
		}
		DeleteMany []struct {
			Ctx   context.Context
			Where sq.Sqlizer
		}
		Count []struct {
			Ctx context.Context
			Q   schema.Query
		}
		Aggregate []struct {
			Ctx context.Context
			Q   schema.Query
			A   schema.Aggregation
		}
		GroupBy []struct {
			Ctx context.Context
			Q   schema.Query
			G   schema.Grouping
		}
	}
	lockFindUnique sync.RWMutex
	lockFindFirst  sync.RWMutex
	lockFindMany   sync.RWMutex
	lockCreate     sync.RWMutex
	lockCreateMany sync.RWMutex
	lockUpdate     sync.RWMutex
	lockUpdateMany sync.RWMutex
	lockUpsert     sync.RWMutex
	lockDelete     sync.RWMutex
	lockDeleteMany sync.RWMutex
	lockCount      sync.RWMutex
	lockAggregate  sync.RWMutex
	lockGroupBy    sync.RWMutex
}

func (mock *engineMock) FindUnique(ctx context.Context, where sq.Sqlizer) (any, error) {
	if mock.FindUniqueFunc == nil {
		panic("engineMock.FindUniqueFunc: method is nil but Engine.FindUnique was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where sq.Sqlizer
	}{Ctx: ctx, Where: where}
	mock.lockFindUnique.Lock()
	mock.calls.FindUnique = append(mock.calls.FindUnique, callInfo)
	mock.lockFindUnique.Unlock()
	return mock.FindUniqueFunc(ctx, where)
}

func (mock *engineMock) FindUniqueCalls() []struct {
	Ctx   context.Context
	Where sq.Sqlizer
} {
	mock.lockFindUnique.RLock()
	calls := mock.calls.FindUnique
	mock.lockFindUnique.RUnlock()
	return calls
}

func (mock *engineMock) FindFirst(ctx context.Context, q schema.Query) (any, error) {
	if mock.FindFirstFunc == nil {
		panic("engineMock.FindFirstFunc: method is nil but Engine.FindFirst was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   schema.Query
	}{Ctx: ctx, Q: q}
	mock.lockFindFirst.Lock()
	mock.calls.FindFirst = append(mock.calls.FindFirst, callInfo)
	mock.lockFindFirst.Unlock()
	return mock.FindFirstFunc(ctx, q)
}

func (mock *engineMock) FindFirstCalls() []struct {
	Ctx context.Context
	Q   schema.Query
} {
	mock.lockFindFirst.RLock()
	calls := mock.calls.FindFirst
	mock.lockFindFirst.RUnlock()
	return calls
}

func (mock *engineMock) FindMany(ctx context.Context, q schema.Query) (any, error) {
	if mock.FindManyFunc == nil {
		panic("engineMock.FindManyFunc: method is nil but Engine.FindMany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   schema.Query
	}{Ctx: ctx, Q: q}
	mock.lockFindMany.Lock()
	mock.calls.FindMany = append(mock.calls.FindMany, callInfo)
	mock.lockFindMany.Unlock()
	return mock.FindManyFunc(ctx, q)
}

func (mock *engineMock) FindManyCalls() []struct {
	Ctx context.Context
	Q   schema.Query
} {
	mock.lockFindMany.RLock()
	calls := mock.calls.FindMany
	mock.lockFindMany.RUnlock()
	return calls
}

func (mock *engineMock) Create(ctx context.Context, w schema.Write) (any, error) {
	if mock.CreateFunc == nil {
		panic("engineMock.CreateFunc: method is nil but Engine.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   schema.Write
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *engineMock) CreateCalls() []struct {
	Ctx context.Context
	W   schema.Write
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *engineMock) CreateMany(ctx context.Context, rows []schema.Write, skipDuplicates bool) (int64, error) {
	if mock.CreateManyFunc == nil {
		panic("engineMock.CreateManyFunc: method is nil but Engine.CreateMany was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		Rows           []schema.Write
		SkipDuplicates bool
	}{Ctx: ctx, Rows: rows, SkipDuplicates: skipDuplicates}
	mock.lockCreateMany.Lock()
	mock.calls.CreateMany = append(mock.calls.CreateMany, callInfo)
	mock.lockCreateMany.Unlock()
	return mock.CreateManyFunc(ctx, rows, skipDuplicates)
}

func (mock *engineMock) CreateManyCalls() []struct {
	Ctx            context.Context
	Rows           []schema.Write
	SkipDuplicates bool
} {
	mock.lockCreateMany.RLock()
	calls := mock.calls.CreateMany
	mock.lockCreateMany.RUnlock()
	return calls
}

func (mock *engineMock) Update(ctx context.Context, where sq.Sqlizer, w schema.Write) (any, error) {
	if mock.UpdateFunc == nil {
		panic("engineMock.UpdateFunc: method is nil but Engine.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where sq.Sqlizer
		W     schema.Write
	}{Ctx: ctx, Where: where, W: w}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, where, w)
}

func (mock *engineMock) UpdateCalls() []struct {
	Ctx   context.Context
	Where sq.Sqlizer
	W     schema.Write
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *engineMock) UpdateMany(ctx context.Context, where sq.Sqlizer, w schema.Write) (int64, error) {
	if mock.UpdateManyFunc == nil {
		panic("engineMock.UpdateManyFunc: method is nil but Engine.UpdateMany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where sq.Sqlizer
		W     schema.Write
	}{Ctx: ctx, Where: where, W: w}
	mock.lockUpdateMany.Lock()
	mock.calls.UpdateMany = append(mock.calls.UpdateMany, callInfo)
	mock.lockUpdateMany.Unlock()
	return mock.UpdateManyFunc(ctx, where, w)
}

func (mock *engineMock) UpdateManyCalls() []struct {
	Ctx   context.Context
	Where sq.Sqlizer
	W     schema.Write
} {
	mock.lockUpdateMany.RLock()
	calls := mock.calls.UpdateMany
	mock.lockUpdateMany.RUnlock()
	return calls
}

func (mock *engineMock) Upsert(ctx context.Context, where sq.Sqlizer, create schema.Write, update schema.Write) (any, error) {
	if mock.UpsertFunc == nil {
		panic("engineMock.UpsertFunc: method is nil but Engine.Upsert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Where  sq.Sqlizer
		Create schema.Write
		Update schema.Write
	}{Ctx: ctx, Where: where, Create: create, Update: update}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, where, create, update)
}

func (mock *engineMock) UpsertCalls() []struct {
	Ctx    context.Context
	Where  sq.Sqlizer
	Create schema.Write
	Update schema.Write
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *engineMock) Delete(ctx context.Context, where sq.Sqlizer) (any, error) {
	if mock.DeleteFunc == nil {
		panic("engineMock.DeleteFunc: method is nil but Engine.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where sq.Sqlizer
	}{Ctx: ctx, Where: where}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, where)
}

func (mock *engineMock) DeleteCalls() []struct {
	Ctx   context.Context
	Where sq.Sqlizer
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *engineMock) DeleteMany(ctx context.Context, where sq.Sqlizer) (int64, error) {
	if mock.DeleteManyFunc == nil {
		panic("engineMock.DeleteManyFunc: method is nil but Engine.DeleteMany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where sq.Sqlizer
	}{Ctx: ctx, Where: where}
	mock.lockDeleteMany.Lock()
	mock.calls.DeleteMany = append(mock.calls.DeleteMany, callInfo)
	mock.lockDeleteMany.Unlock()
	return mock.DeleteManyFunc(ctx, where)
}

func (mock *engineMock) DeleteManyCalls() []struct {
	Ctx   context.Context
	Where sq.Sqlizer
} {
	mock.lockDeleteMany.RLock()
	calls := mock.calls.DeleteMany
	mock.lockDeleteMany.RUnlock()
	return calls
}

func (mock *engineMock) Count(ctx context.Context, q schema.Query) (int64, error) {
	if mock.CountFunc == nil {
		panic("engineMock.CountFunc: method is nil but Engine.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   schema.Query
	}{Ctx: ctx, Q: q}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, q)
}

func (mock *engineMock) CountCalls() []struct {
	Ctx context.Context
	Q   schema.Query
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *engineMock) Aggregate(ctx context.Context, q schema.Query, a schema.Aggregation) (map[string]any, error) {
	if mock.AggregateFunc == nil {
		panic("engineMock.AggregateFunc: method is nil but Engine.Aggregate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   schema.Query
		A   schema.Aggregation
	}{Ctx: ctx, Q: q, A: a}
	mock.lockAggregate.Lock()
	mock.calls.Aggregate = append(mock.calls.Aggregate, callInfo)
	mock.lockAggregate.Unlock()
	return mock.AggregateFunc(ctx, q, a)
}

func (mock *engineMock) AggregateCalls() []struct {
	Ctx context.Context
	Q   schema.Query
	A   schema.Aggregation
} {
	mock.lockAggregate.RLock()
	calls := mock.calls.Aggregate
	mock.lockAggregate.RUnlock()
	return calls
}

func (mock *engineMock) GroupBy(ctx context.Context, q schema.Query, g schema.Grouping) ([]map[string]any, error) {
	if mock.GroupByFunc == nil {
		panic("engineMock.GroupByFunc: method is nil but Engine.GroupBy was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   schema.Query
		G   schema.Grouping
	}{Ctx: ctx, Q: q, G: g}
	mock.lockGroupBy.Lock()
	mock.calls.GroupBy = append(mock.calls.GroupBy, callInfo)
	mock.lockGroupBy.Unlock()
	return mock.GroupByFunc(ctx, q, g)
}

func (mock *engineMock) GroupByCalls() []struct {
	Ctx context.Context
	Q   schema.Query
	G   schema.Grouping
} {
	mock.lockGroupBy.RLock()
	calls := mock.calls.GroupBy
	mock.lockGroupBy.RUnlock()
	return calls
}
