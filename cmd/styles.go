package cmd

import "github.com/charmbracelet/lipgloss"

var headerText = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
var whiteText = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
var grayText = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
var greenIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).PaddingRight(1)

var bannerBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(1, 2)
