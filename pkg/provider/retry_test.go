package provider_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/social-data-provider/pkg/provider"
)

type fakeAuth struct {
	loggedIn   bool
	loginOK    bool
	loginErr   error
	loginCalls int
}

func (f *fakeAuth) LoggedIn() bool { return f.loggedIn }

func (f *fakeAuth) Login(_ context.Context) (bool, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return false, f.loginErr
	}
	if f.loginOK {
		f.loggedIn = true
	}
	return f.loginOK, nil
}

func TestRetryAfterLogin(t *testing.T) {
	t.Parallel()

	errExpired := fmt.Errorf("%w: token expired", provider.ErrAuthRequired)

	tests := []struct {
		name        string
		auth        *fakeAuth
		opErrs      []error
		wantValue   int
		wantErr     error
		wantLogins  int
		wantOpCalls int
	}{
		{
			name:        "authenticated runs op once without login",
			auth:        &fakeAuth{loggedIn: true},
			opErrs:      []error{nil},
			wantValue:   1,
			wantLogins:  0,
			wantOpCalls: 1,
		},
		{
			name:        "unauthenticated logs in once then runs op once",
			auth:        &fakeAuth{loginOK: true},
			opErrs:      []error{nil},
			wantValue:   1,
			wantLogins:  1,
			wantOpCalls: 1,
		},
		{
			name:        "rejected login never runs op",
			auth:        &fakeAuth{loginOK: false},
			wantErr:     provider.ErrNotAuthenticated,
			wantLogins:  1,
			wantOpCalls: 0,
		},
		{
			name:        "login error is returned",
			auth:        &fakeAuth{loginErr: provider.ErrNoActiveSession},
			wantErr:     provider.ErrNoActiveSession,
			wantLogins:  1,
			wantOpCalls: 0,
		},
		{
			name:        "expired token triggers one login and one retry",
			auth:        &fakeAuth{loggedIn: true, loginOK: true},
			opErrs:      []error{errExpired, nil},
			wantValue:   2,
			wantLogins:  1,
			wantOpCalls: 2,
		},
		{
			name:        "second auth failure is not retried again",
			auth:        &fakeAuth{loggedIn: true, loginOK: true},
			opErrs:      []error{errExpired, errExpired},
			wantErr:     provider.ErrAuthRequired,
			wantLogins:  1,
			wantOpCalls: 2,
		},
		{
			name:        "other op errors are returned without login",
			auth:        &fakeAuth{loggedIn: true, loginOK: true},
			opErrs:      []error{errors.New("boom")},
			wantErr:     errors.New("boom"),
			wantLogins:  0,
			wantOpCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			op := func(_ context.Context) (int, error) {
				err := tt.opErrs[calls]
				calls++
				if err != nil {
					return 0, err
				}
				return calls, nil
			}

			got, err := provider.RetryAfterLogin(context.Background(), tt.auth, op)

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantValue, got)
			case errors.Is(tt.wantErr, provider.ErrNotAuthenticated),
				errors.Is(tt.wantErr, provider.ErrNoActiveSession),
				errors.Is(tt.wantErr, provider.ErrAuthRequired):
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.EqualError(t, err, tt.wantErr.Error())
			}

			assert.Equal(t, tt.wantLogins, tt.auth.loginCalls)
			assert.Equal(t, tt.wantOpCalls, calls)
		})
	}
}
