package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"edudesk/internal/api"
	"edudesk/internal/session"
	"edudesk/internal/ui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the portal and store the session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.NewStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore()
	if err != nil {
		return err
	}

	form := newLoginForm()
	final, err := tea.NewProgram(form).Run()
	if err != nil {
		return fmt.Errorf("run login form: %w", err)
	}
	m := final.(*loginForm)
	if m.aborted {
		return errors.New("login cancelled")
	}

	client := api.NewClient(api.Config{
		BaseURL: viper.GetString("api_url"),
		Timeout: viper.GetDuration("timeout"),
	})
	result, err := client.SignIn(cmd.Context(), m.email(), m.password())
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("sign in failed: %s", apiErr.Message)
		}
		return fmt.Errorf("sign in: %w", err)
	}

	if err := store.Save(session.Session{
		AccessToken: result.AccessToken,
		StudentID:   result.Student.ID,
		Email:       result.Student.Email,
		Name:        result.Student.Name,
	}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Printf("Signed in as %s (%s).\n", result.Student.Name, result.Student.Email)
	return nil
}

// loginForm is a two-field credential prompt. The password input
// echoes dots; enter on the password line submits.
type loginForm struct {
	inputs  [2]textinput.Model
	focus   int
	aborted bool
}

func newLoginForm() *loginForm {
	email := textinput.New()
	email.Placeholder = "you@campus.edu"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 40

	return &loginForm{inputs: [2]textinput.Model{email, password}}
}

func (m *loginForm) email() string    { return strings.TrimSpace(m.inputs[0].Value()) }
func (m *loginForm) password() string { return m.inputs[1].Value() }

func (m *loginForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "tab", "shift+tab":
			m.setFocus((m.focus + 1) % 2)
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.setFocus(1)
				return m, nil
			}
			if m.email() == "" || m.password() == "" {
				return m, nil
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginForm) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *loginForm) View() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("Sign in to edudesk") + "\n\n")
	for i, label := range []string{"Email", "Password"} {
		style := ui.Styles.Label
		if i == m.focus {
			style = ui.Styles.Selected
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString(m.inputs[i].View() + "\n")
	}
	b.WriteString("\n" + ui.Styles.Hint.Render("Enter: submit  Tab: move  Esc: cancel"))
	return b.String()
}
