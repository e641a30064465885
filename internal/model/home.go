// Package model holds the static content shown by the dashboard screens.
package model

// HomeMilestones seed the Home tab's financial milestone checklist.
var HomeMilestones = []string{
	"Create your profile",
	"Set monthly savings goal",
	"Build personalized budget",
	"Complete financial assessment",
	"Create wellness roadmap",
}

// Priority colors a reminder dot.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityNormal
)

// Reminder is an upcoming item on the Home tab.
type Reminder struct {
	Title    string
	When     string
	Priority Priority
}

// Reminders are shown under "Upcoming Reminders".
var Reminders = []Reminder{
	{Title: "Set monthly savings goal", When: "Tomorrow, 9:00 am", Priority: PriorityHigh},
	{Title: "Build personalized budget", When: "Oct 20, 10:00 am", Priority: PriorityNormal},
}

// QuickAction is a Home tab shortcut.
type QuickAction struct {
	Label string
	Key   string
}

// QuickActions are listed under "Quick Actions".
var QuickActions = []QuickAction{
	{Label: "Set Monthly Goal", Key: "g"},
	{Label: "Build Personalized Budget", Key: "b"},
}
