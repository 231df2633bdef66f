package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadcrumbs(t *testing.T) {
	assert.Empty(t, Breadcrumbs(nil))
	assert.Empty(t, Breadcrumbs([]string{"Início"}))
	assert.Equal(t, "Início › PIX › Boletos", Breadcrumbs([]string{"Início", "PIX", "Boletos"}))
}

func TestHeaderView(t *testing.T) {
	h := NewHeader()
	h.SetWidth(60)
	h.SetTitle("Boletos", "")

	h.SetNavigation(false, []string{"Início"})
	v := h.View()
	assert.Contains(t, v, "Boletos")
	assert.NotContains(t, v, "←")
	assert.NotContains(t, v, BreadcrumbSeparator)

	h.SetNavigation(true, []string{"Início", "Boletos"})
	v = h.View()
	assert.Contains(t, v, "←")
	assert.Contains(t, v, "Início › Boletos")
}

func TestParseCommand(t *testing.T) {
	c, ok := ParseCommand("  GO  Boletos ")
	require.True(t, ok)
	assert.Equal(t, "go", c.Name)
	assert.Equal(t, "Boletos", c.Arg())

	_, ok = ParseCommand("   ")
	assert.False(t, ok)
}

func TestCommandBarRecall(t *testing.T) {
	cb := NewCommandBar()
	cb.Open()
	cb.input.SetValue("go PIX")
	assert.Equal(t, "go PIX", cb.Submit())
	assert.False(t, cb.IsActive())

	cb.Open()
	cb.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "go PIX", cb.input.Value())
	cb.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, cb.input.Value())
}

func TestFormFocusAndValues(t *testing.T) {
	f := NewForm()
	f.SetWidth(40)
	f.Open("PIX", []Field{
		{Name: "key", Label: "Chave"},
		{Name: "amount", Label: "Valor", CharLimit: 4},
	})
	require.True(t, f.IsActive())
	assert.False(t, f.OnLastField())

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ana")})
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, f.OnLastField())
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("123456")})

	assert.Equal(t, "ana", f.Value("key"))
	assert.Equal(t, "1234", f.Value("amount"))
	assert.Empty(t, f.Value("missing"))

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, f.OnLastField(), "focus wraps around")

	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.IsActive())
}

func TestFormSecretField(t *testing.T) {
	f := NewForm()
	f.SetWidth(40)
	f.Open("Entrar", []Field{{Name: "password", Label: "Senha", Secret: true}})
	f.SetValue("password", "123456")

	assert.Equal(t, "123456", f.Value("password"))
	assert.NotContains(t, f.View(), "123456")
}

func TestHistoryPanelCursor(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	hp := NewHistoryPanel()
	hp.now = func() time.Time { return now }
	hp.SetSize(30, 10)
	hp.SetItems([]HistoryItem{
		{Screen: "Dashboard", Label: "Início", At: now.Add(-2 * time.Hour)},
		{Screen: "PIX", Label: "PIX", At: now.Add(-5 * time.Minute)},
		{Screen: "Bills", Label: "Boletos", At: now},
	}, 10)
	hp.Show()

	sel, ok := hp.Selected()
	require.True(t, ok)
	assert.Equal(t, "Bills", sel.Screen)

	hp.CursorUp()
	sel, _ = hp.Selected()
	assert.Equal(t, "PIX", sel.Screen)

	assert.False(t, hp.HandleGKey())
	assert.True(t, hp.HandleGKey())
	sel, _ = hp.Selected()
	assert.Equal(t, "Dashboard", sel.Screen)

	v := hp.View()
	assert.Contains(t, v, "Histórico 3/10")
	assert.Contains(t, v, "2h")
	assert.Contains(t, v, "5min")
}

func TestTabBarAt(t *testing.T) {
	tb := NewTabBar([]Tab{{Screen: "Dashboard", Label: "Início"}, {Screen: "PIX", Label: "PIX"}})

	s, ok := tb.At(2)
	require.True(t, ok)
	assert.Equal(t, "PIX", s)
	_, ok = tb.At(0)
	assert.False(t, ok)
	_, ok = tb.At(3)
	assert.False(t, ok)

	tb.SetLabels(func(screen string) string { return "x" + screen })
	tb.SetActive("PIX")
	assert.Equal(t, "PIX", tb.Active())
	assert.Contains(t, tb.View(), "xDashboard")
}

func TestTimeAgo(t *testing.T) {
	assert.Equal(t, "agora", timeAgo(10*time.Second))
	assert.Equal(t, "3min", timeAgo(3*time.Minute))
	assert.Equal(t, "5h", timeAgo(5*time.Hour))
	assert.Equal(t, "2d", timeAgo(49*time.Hour))
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Ajuda\n\n| Tecla | Ação |\n|---|---|\n| `H` | voltar |\n", 60)
	assert.Contains(t, out, "Ajuda")
	assert.Contains(t, out, "voltar")

	// Width changes rebuild the cached renderer.
	assert.Contains(t, RenderMarkdown("texto", 30), "texto")
	assert.Equal(t, 30, cachedRendererWidth)
}
