package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	errorS  lipgloss.Style
	prompt  lipgloss.Style
	dim     lipgloss.Style
}

func newStyles() styles {
	return styles{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		errorS:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
