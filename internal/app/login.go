package app

import (
	"context"

	"github.com/Spok95/yard-terminal/internal/auth"
)

// Login проверяет учётные данные, поднимает флаг auth и выпускает токен.
func (s *Session) Login(ctx context.Context, svc *auth.Service, login, password string) (string, error) {
	if err := svc.Check(login, password); err != nil {
		s.log.Warn("login rejected", "login", login)
		return "", err
	}
	token, err := svc.Issue(login)
	if err != nil {
		return "", err
	}
	err = s.mutate(ctx, []Key{KeyAuth}, func(st *State) (Event, error) {
		st.Authenticated = true
		return Event{Kind: EventAuth, Payload: true}, nil
	})
	return token, err
}

func (s *Session) Logout(ctx context.Context) error {
	return s.mutate(ctx, []Key{KeyAuth}, func(st *State) (Event, error) {
		st.Authenticated = false
		return Event{Kind: EventAuth, Payload: false}, nil
	})
}

func (s *Session) Authenticated() (ok bool) {
	s.read(func(st *State) { ok = st.Authenticated })
	return ok
}
