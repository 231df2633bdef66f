package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/vidyasagar/xbank/internal/theme"
)

// helpMarkdown lists the keybindings and commands as markdown for glamour.
func helpMarkdown(keys KeyMap) string {
	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Navegação", []key.Binding{keys.Tab, keys.Transactions, keys.Bills, keys.Back, keys.BackOrHome}},
		{"Rolagem", []key.Binding{keys.ScrollDown, keys.ScrollUp, keys.HalfPageDown, keys.HalfPageUp, keys.GotoTop, keys.GotoBottom}},
		{"Ações", []key.Binding{keys.Edit, keys.Filter, keys.SelectBill, keys.PayBill, keys.ToggleBalance, keys.ToggleProtection, keys.Logout}},
		{"Modos", []key.Binding{keys.CommandMode, keys.HistoryToggle, keys.Help, keys.Quit}},
	}

	var sb strings.Builder
	sb.WriteString("# XBank\n\n")
	for _, s := range sections {
		sb.WriteString("## " + s.name + "\n\n")
		sb.WriteString("| Tecla | Ação |\n|---|---|\n")
		for _, b := range s.bindings {
			h := b.Help()
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", h.Key, h.Desc))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Comandos\n\n")
	sb.WriteString("| Comando | Ação |\n|---|---|\n")
	commands := [][2]string{
		{":go <tela>", "abre uma tela (Dashboard, PIX, Bills, Extrato, ...)"},
		{":back", "volta uma tela"},
		{":home", "vai para o início"},
		{":history", "mostra o histórico de navegação"},
		{":pay [n]", "paga o boleto selecionado (ou o n-ésimo)"},
		{":protect", "liga ou desliga a proteção anti-apostas"},
		{":theme <nome>", "troca o tema (" + strings.Join(theme.List(), ", ") + ")"},
		{":lang <código>", "troca o idioma (pt-BR, en)"},
		{":logout", "encerra a sessão"},
		{":quit", "sai do XBank"},
	}
	for _, c := range commands {
		sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", c[0], c[1]))
	}
	sb.WriteString("\nPressione `esc` para fechar a ajuda.\n")
	return sb.String()
}
