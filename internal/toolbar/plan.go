package toolbar

// ControlPlan is the visibility assignment for a single inline control.
type ControlPlan struct {
	ID      string
	Label   string
	Icon    string
	Visible bool
}

// EntryPlan is a single overflow menu entry.
type EntryPlan struct {
	ID    string
	Label string
	Icon  string
}

// RenderPlan is the computed visibility assignment handed to the rendering
// surface. Exactly one presentation of each action is visible: its inline
// control when expanded, its menu entry when collapsed.
type RenderPlan struct {
	Mode Mode

	// Controls lists every action's inline control in registry order
	Controls []ControlPlan

	// TriggerVisible is true iff the mode is collapsed
	TriggerVisible bool

	// Entries lists the overflow menu entries in registry order.
	// Nil when the mode is expanded; the menu is not rendered at all.
	Entries []EntryPlan
}

// BuildPlan computes the render plan for a mode over an ordered action set.
func BuildPlan(mode Mode, actions []Action) RenderPlan {
	plan := RenderPlan{
		Mode:           mode,
		Controls:       make([]ControlPlan, 0, len(actions)),
		TriggerVisible: mode == ModeCollapsed,
	}

	for _, a := range actions {
		plan.Controls = append(plan.Controls, ControlPlan{
			ID:      a.ID,
			Label:   a.Label,
			Icon:    a.Icon,
			Visible: mode == ModeExpanded,
		})
	}

	if mode == ModeCollapsed {
		plan.Entries = make([]EntryPlan, 0, len(actions))
		for _, a := range actions {
			plan.Entries = append(plan.Entries, EntryPlan{
				ID:    a.ID,
				Label: a.Label,
				Icon:  a.Icon,
			})
		}
	}

	return plan
}
