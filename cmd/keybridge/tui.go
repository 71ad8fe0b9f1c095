package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keybridge/bridge"
)

const maxRecent = 10

type eventMsg bridge.Event
type quitMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	accelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	relStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tuiModel struct {
	bound  map[uint32]boundHotkey
	recent []string
	count  int
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case quitMsg:
		return m, tea.Quit
	case eventMsg:
		ev := bridge.Event(msg)
		bh, ok := m.bound[ev.ID]
		if !ok {
			return m, nil
		}
		m.count++
		style := pressStyle
		if ev.Phase == bridge.Released {
			style = relStyle
		}
		line := fmt.Sprintf("%s %s", accelStyle.Render(bh.binding.Accel), style.Render(ev.Phase.String()))
		m.recent = append(m.recent, line)
		if len(m.recent) > maxRecent {
			m.recent = m.recent[len(m.recent)-maxRecent:]
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("keybridge") + dimStyle.Render("  global hotkey monitor") + "\n\n")

	ids := make([]uint32, 0, len(m.bound))
	for id := range m.bound {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		bh := m.bound[id]
		b.WriteString(fmt.Sprintf("  %s %s\n",
			accelStyle.Render(fmt.Sprintf("%-18s", bh.binding.Accel)),
			actionStyle.Render(bh.binding.Action)))
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("events: %d", m.count)) + "\n")
	for _, line := range m.recent {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("q to quit") + "\n")
	return b.String()
}

func runTUI(bound map[uint32]boundHotkey, events <-chan bridge.Event, sigCh <-chan os.Signal) {
	p := tea.NewProgram(tuiModel{bound: bound})

	go func() {
		for {
			select {
			case <-sigCh:
				p.Send(quitMsg{})
				return
			case ev := <-events:
				bh, ok := bound[ev.ID]
				if ok && perform(bh.binding, ev) {
					p.Send(quitMsg{})
					return
				}
				p.Send(eventMsg(ev))
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
	}
}
