package cli

import (
	"testing"
	"time"

	"github.com/arjunshenoy/funnelcast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorResolution(t *testing.T) {
	t.Setenv("FUNNELCAST_ROLE", "")
	t.Setenv("FUNNELCAST_USER", "")

	app := &App{}
	actor, err := app.actor()
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGM, actor.Role, "defaults to GM")

	app.roleFlag = "manager"
	app.userFlag = "Amey"
	actor, err = app.actor()
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, actor.Role)
	assert.Equal(t, "Amey", actor.Name)

	app.roleFlag = "ceo"
	_, err = app.actor()
	assert.Error(t, err)
}

func TestActorResolutionEnvFallback(t *testing.T) {
	t.Setenv("FUNNELCAST_ROLE", "sm")
	t.Setenv("FUNNELCAST_USER", "Rohan")

	app := &App{}
	actor, err := app.actor()
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSM, actor.Role)
	assert.Equal(t, "Rohan", actor.Name)

	// Flags win over the environment.
	app.roleFlag = "gm"
	actor, err = app.actor()
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGM, actor.Role)
}

func TestParseView(t *testing.T) {
	v, err := parseView("net")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewNet, v)

	v, err = parseView("gross")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewGross, v)

	_, err = parseView("grossish")
	assert.Error(t, err)
}

func TestResolveChannelID(t *testing.T) {
	p := domain.NewProject("id", "Skyline", "Mumbai", "Amey", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC))

	id, err := resolveChannelID(p, "google")
	require.NoError(t, err)
	assert.Equal(t, "google", id)

	id, err = resolveChannelID(p, "meta (fb/insta)")
	require.NoError(t, err)
	assert.Equal(t, "fb", id, "name match is case-insensitive")

	_, err = resolveChannelID(p, "tiktok")
	assert.Error(t, err)
}
