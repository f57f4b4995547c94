package login

import (
	"context"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/lifecycle"
	"physiocare-client/internal/pkg/observable"
	"physiocare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is Response on success and Message on error.
type State struct {
	Status   Status
	Response *responses.Login
	Message  string
}

func Idle() State {
	return State{Status: StatusIdle}
}

type LoginViewState struct {
	Repository contracts.PhysioCareRepository
	Log        *zap.Logger

	scope *lifecycle.Scope
	state *observable.Value[State]
}

func NewLoginViewState(ctx context.Context, repository contracts.PhysioCareRepository, logger *zap.Logger) *LoginViewState {
	return &LoginViewState{
		Repository: repository,
		Log:        logger,
		scope:      lifecycle.NewScope(ctx),
		state:      observable.NewValue(Idle()),
	}
}

func (vs *LoginViewState) State() observable.Observable[State] {
	return vs.state
}

func (vs *LoginViewState) Login(username, password string) {
	vs.scope.Launch(func(ctx context.Context) {
		ctx, requestID := utils.WithRequestID(ctx)
		vs.Log.Info("LoginViewState.Login called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		vs.scope.Commit(func() { vs.state.Set(State{Status: StatusLoading}) })

		response, err := vs.Repository.Login(ctx, username, password)
		if err != nil {
			message := exceptions.ClientMessage(err)
			if message == "" {
				message = constvars.ErrClientLoginUnknownError
			}
			vs.scope.Commit(func() { vs.state.Set(State{Status: StatusError, Message: message}) })
			return
		}

		vs.scope.Commit(func() { vs.state.Set(State{Status: StatusSuccess, Response: response}) })
	})
}

func (vs *LoginViewState) Logout() {
	vs.scope.Launch(func(ctx context.Context) {
		if err := vs.Repository.Logout(ctx); err != nil {
			vs.Log.Error("LoginViewState.Logout error clearing session", zap.Error(err))
		}
		vs.scope.Commit(func() { vs.state.Set(Idle()) })
	})
}

// Consume returns the current state and resets it to Idle.
func (vs *LoginViewState) Consume() State {
	var current State
	vs.scope.Commit(func() {
		current = vs.state.Get()
		if current.Status != StatusIdle {
			vs.state.Set(Idle())
		}
	})
	return current
}

func (vs *LoginViewState) Wait() {
	vs.scope.Wait()
}

func (vs *LoginViewState) Close() {
	vs.scope.Close()
}
