package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/internal/audit"
	"adminpanel/internal/database"
)

func TestService_LogAndList(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := audit.NewService(db)
	require.NoError(t, svc.LogAction(audit.ActionPostDelete, "post_id=42", true, "10.0.0.1"))
	require.NoError(t, svc.LogAction(audit.ActionUserDelete, "user_id=5: Permission denied", false, "10.0.0.2"))

	logs, err := svc.Recent(10)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	assert.Equal(t, audit.ActionUserDelete, logs[0].Action)
	assert.False(t, logs[0].Success)
	assert.Equal(t, "10.0.0.2", logs[0].IPAddress)
	assert.Equal(t, audit.ActionPostDelete, logs[1].Action)
	assert.True(t, logs[1].Success)

	logs, err = svc.Recent(1)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
