package rbac

import (
	"testing"

	"librarydesk/apperr"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	adminOnly := []string{"admin"}
	anyRole := []string{"admin", "user"}

	require.NoError(t, Check(adminOnly, "admin"))
	require.NoError(t, Check(adminOnly, "ADMIN"))
	require.NoError(t, Check(anyRole, " User "))

	err := Check(adminOnly, "")
	require.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	err = Check(adminOnly, "   ")
	require.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	err = Check(adminOnly, "user")
	require.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	err = Check(anyRole, "guest")
	require.Equal(t, apperr.Forbidden, apperr.KindOf(err))
}
