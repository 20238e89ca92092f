package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/sitebook-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
	}
	lockLogin sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}
