// Package tui provides the terminal product browser for stockctl.
//
// The browser is a Bubble Tea program that shows the catalog as a
// scrollable table, with keyboard and mouse navigation, multi-step input
// dialogs for every mutation and query, and overlays for product details,
// key help and the activity log.
//
// # Architecture
//
// The TUI follows a Model-View-Controller pattern:
//
//   - Model: browser state, the current query, the dialog in progress
//   - View: renders the table, the help and status lines and the overlays
//   - Controller: turns key, mouse and resize messages into state changes
//
// # Core Components
//
// Model (internal/tui/model/):
//   - ViewState holds rows, selection and scroll offset and keeps them clamped
//   - Dialog walks the user through one field at a time on a textinput
//   - Reload re-evaluates the query against the store after every change
//
// View (internal/tui/view/):
//   - Render lays out the title, the table and the two bottom lines
//   - Overlays for details, help and logs are centred with lipgloss.Place
//
// Controller (internal/tui/controller/):
//   - mainControllerDispatch routes every tea.Msg
//   - Dialog completion calls the catalog and reports the outcome in the
//     status line
//   - NewProgram wires the model into a tea.Program with mouse support
//
// # Layout
//
// Five terminal rows are reserved: the title, the column header, the
// separator, the help line and the status line. The table fills the rest.
// When the window shrinks the selection and offset are re-clamped so the
// selected row stays visible.
//
// # Logging
//
// While the browser runs, pkg/logging delivers entries on a channel. The
// controller appends them to the activity log shown by the log overlay
// (key L). Debug entries are kept only with --debug.
//
// # Usage
//
//	p, err := controller.NewProgram(model.TUIConfig{Store: store, Currency: "€"})
//	if err != nil {
//		return err
//	}
//	_, err = p.Run()
package tui
