package voice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManagerReusesSessionPerID(t *testing.T) {
	calls := 0
	mgr, err := NewManager(func(sessionID string) (*Session, error) {
		calls++
		return NewSession(EngineBridge{}, Handlers{}, nil, nil)
	})
	require.NoError(t, err)

	first, err := mgr.ForSession("s1")
	require.NoError(t, err)
	again, err := mgr.ForSession("s1")
	require.NoError(t, err)
	require.Same(t, first, again)
	require.Equal(t, 1, calls)

	other, err := mgr.ForSession("s2")
	require.NoError(t, err)
	require.NotSame(t, first, other)
	require.Equal(t, 2, calls)
}

func TestManagerFactoryFailureNotCached(t *testing.T) {
	fail := true
	mgr, err := NewManager(func(sessionID string) (*Session, error) {
		if fail {
			return nil, fmt.Errorf("boom")
		}
		return NewSession(EngineBridge{}, Handlers{}, nil, nil)
	})
	require.NoError(t, err)

	_, err = mgr.ForSession("s1")
	require.Error(t, err)

	fail = false
	sess, err := mgr.ForSession("s1")
	require.NoError(t, err)
	require.NotNil(t, sess)
}

func TestNewManagerRequiresFactory(t *testing.T) {
	_, err := NewManager(nil)
	require.Error(t, err)
}
