package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

var _ recordsService = &recordsServiceMock{}

type recordsServiceMock struct {
	ExecuteFunc  func(ctx context.Context, model string, op string, body []byte) (any, error)
	ValidateFunc func(model string, op string, body []byte) (*schema.Operation, error)

	calls struct {
		Execute []struct {
			Ctx   context.Context
			Model string
			Op    string
			Body  []byte
		}
		Validate []struct {
			Model string
			Op    string
			Body  []byte
		}
	}
	lockExecute  sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *recordsServiceMock) Execute(ctx context.Context, model string, op string, body []byte) (any, error) {
	if mock.ExecuteFunc == nil {
		panic("recordsServiceMock.ExecuteFunc: method is nil but recordsService.Execute was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Model string
		Op    string
		Body  []byte
	}{Ctx: ctx, Model: model, Op: op, Body: body}
	mock.lockExecute.Lock()
	mock.calls.Execute = append(mock.calls.Execute, callInfo)
	mock.lockExecute.Unlock()
	return mock.ExecuteFunc(ctx, model, op, body)
}

func (mock *recordsServiceMock) ExecuteCalls() []struct {
	Ctx   context.Context
	Model string
	Op    string
	Body  []byte
} {
	mock.lockExecute.RLock()
	calls := mock.calls.Execute
	mock.lockExecute.RUnlock()
	return calls
}

func (mock *recordsServiceMock) Validate(model string, op string, body []byte) (*schema.Operation, error) {
	if mock.ValidateFunc == nil {
		panic("recordsServiceMock.ValidateFunc: method is nil but recordsService.Validate was just called")
	}
	callInfo := struct {
		Model string
		Op    string
		Body  []byte
	}{Model: model, Op: op, Body: body}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(model, op, body)
}

func (mock *recordsServiceMock) ValidateCalls() []struct {
	Model string
	Op    string
	Body  []byte
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
