package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tramo/internal/testutil"
)

func TestApp_StoresUpdatedModel(t *testing.T) {
	a := testutil.NewTestApp(t)
	session, err := a.NewSession(6)
	require.NoError(t, err)

	tuiApp := New(context.Background(), session, a.Config)
	assert.Nil(t, tuiApp.Init())

	_, _ = tuiApp.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, tuiApp.GetModel().UiState.Width())

	_, _ = tuiApp.Update(tea.KeyPressMsg{Code: 'o', Text: "o"})
	assert.Equal(t, 1, session.Table().Len())

	view := tuiApp.View()
	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "tramo")
}
