package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmDecision int

const (
	decisionQuit confirmDecision = iota
	decisionAccept
	decisionRegenerate
)

// confirmMessage shows the generated commit message and waits for the user
// to accept it, ask for another one, or abort.
func confirmMessage(message string) (confirmDecision, error) {
	model := confirmModel{message: message}
	program := tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return decisionQuit, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return final.(confirmModel).decision, nil
}

type confirmModel struct {
	message  string
	decision confirmDecision
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "enter":
		m.decision = decisionAccept
		return m, tea.Quit
	case "r":
		m.decision = decisionRegenerate
		return m, tea.Quit
	case "n", "q", "esc", "ctrl+c":
		m.decision = decisionQuit
		return m, tea.Quit
	}
	return m, nil
}

var (
	messageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m confirmModel) View() string {
	prompt := promptStyle.Render("y/enter commit  -  r regenerate  -  n/q abort")
	return lipgloss.JoinVertical(lipgloss.Left,
		messageStyle.Render(m.message),
		prompt,
	) + "\n"
}
