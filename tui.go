package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	frameStyle  = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// stage tracks where the prompt loop is: the command prompt, or one of the
// steps of the add flow.
type stage int

const (
	stageCommand stage = iota
	stageAddID
	stageAddTitle
	stageAddKind
	stageAddLines
)

type draft struct {
	id    string
	title string
	kind  Kind
	lines []string
}

type promptModel struct {
	store *Store
	sel   *Selector
	doc   *StorageDocument

	input  textinput.Model
	stage  stage
	draft  draft
	output string
	quit   bool
}

func initialPrompt(store *Store, sel *Selector, doc *StorageDocument) promptModel {
	in := textinput.New()
	in.Placeholder = "next, random, collections, history, progress, add, quit"
	in.Focus()
	return promptModel{store: store, sel: sel, doc: doc, input: in}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) View() string {
	header := titleStyle.Render("Affirmations")
	hint := dimStyle.Render(m.hint())
	out := m.output
	if out != "" {
		out += "\n"
	}
	return frameStyle.Render(header + "\n\n" + out + "\n" + m.input.View() + "\n" + hint)
}

func (m promptModel) hint() string {
	switch m.stage {
	case stageAddID:
		return "collection id (no spaces)"
	case stageAddTitle:
		return "collection title"
	case stageAddKind:
		return "kind: affirmations, song_lyrics, poem (default affirmations)"
	case stageAddLines:
		return "paste lines, empty line to finish"
	}
	return "(enter=run command, ctrl+c=quit)"
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "enter":
			value := m.input.Value()
			m.input.SetValue("")
			return m.submit(value)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) submit(value string) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageAddID:
		m.draft.id = strings.TrimSpace(value)
		m.stage = stageAddTitle
	case stageAddTitle:
		m.draft.title = strings.TrimSpace(value)
		m.stage = stageAddKind
	case stageAddKind:
		k := Kind(strings.TrimSpace(value))
		if k == "" {
			k = KindAffirmations
		}
		m.draft.kind = k
		m.stage = stageAddLines
		m.output = dimStyle.Render("Paste your content:")
	case stageAddLines:
		if strings.TrimSpace(value) != "" {
			m.draft.lines = append(m.draft.lines, value)
			return m, nil
		}
		m.finishAdd()
		m.stage = stageCommand
	default:
		return m.runCommand(strings.ToLower(strings.TrimSpace(value)))
	}
	return m, nil
}

func (m *promptModel) finishAdd() {
	n, err := Import(m.doc, m.draft.id, m.draft.title, m.draft.kind, strings.Join(m.draft.lines, "\n"))
	m.draft = draft{}
	if err != nil {
		m.output = errStyle.Render(err.Error())
		return
	}
	if err := m.store.Save(m.doc); err != nil {
		m.output = errStyle.Render(err.Error())
		return
	}
	m.output = activeStyle.Render(fmt.Sprintf("Added %d lines.", n))
}

func (m promptModel) runCommand(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "quit", "exit", "q":
		m.quit = true
		return m, tea.Quit
	case "next", "n", "":
		m.fetch(ModeSequential)
	case "random", "r":
		m.fetch(ModeRandom)
	case "collections", "c":
		m.output = renderCollections(m.doc)
	case "history", "h":
		m.output = renderHistory(m.doc, 10)
	case "progress", "p":
		m.output = renderProgress(m.doc)
	case "add", "a":
		m.stage = stageAddID
		m.output = ""
	default:
		m.output = dimStyle.Render("Unknown command. Try: next, random, collections, history, progress, add, quit")
	}
	return m, nil
}

func (m *promptModel) fetch(mode Mode) {
	line, err := m.sel.Next(m.doc, m.doc.ActiveID, mode)
	if err != nil {
		m.output = errStyle.Render(err.Error())
		return
	}
	if err := m.store.Save(m.doc); err != nil {
		m.output = errStyle.Render(err.Error())
		return
	}
	m.output = lineStyle.Render(line)
}

// RunPrompt starts the interactive loop over a loaded document.
func RunPrompt(store *Store, sel *Selector, doc *StorageDocument) error {
	p := tea.NewProgram(initialPrompt(store, sel, doc))
	_, err := p.Run()
	return err
}

func renderCollections(doc *StorageDocument) string {
	infos := Collections(doc)
	if len(infos) == 0 {
		return dimStyle.Render("No collections yet.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Collections") + "\n")
	for _, ci := range infos {
		marker := "  "
		if ci.Active {
			marker = activeStyle.Render("* ")
		}
		b.WriteString(fmt.Sprintf("%s%s (%s) - %d lines, at %d/%d\n",
			marker, ci.Title, ci.Kind, ci.LineCount, ci.Cursor, ci.LineCount))
		if ci.Description != "" {
			b.WriteString(dimStyle.Render("    "+ci.Description) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderHistory(doc *StorageDocument, n int) string {
	entries := RecentHistory(doc, n)
	if len(entries) == 0 {
		return dimStyle.Render("No history yet.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Last %d affirmations", len(entries))) + "\n")
	for i, e := range entries {
		b.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, e.Title, e.Line))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderProgress(doc *StorageDocument) string {
	info, ok := ActiveProgress(doc)
	if !ok {
		return dimStyle.Render("No current collection selected.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Current progress") + "\n")
	b.WriteString(fmt.Sprintf("Collection: %s\n", info.Title))
	b.WriteString(fmt.Sprintf("Progress: %d/%d lines, cycle %d\n", info.Cursor, info.Total, info.CycleCount))
	if info.NextLine != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Next: %q", truncate(info.NextLine, 50))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
