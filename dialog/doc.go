// Package dialog describes modal message boxes and file pickers without
// drawing them.
//
// A MessageBox or FileBox is plain data: window type, icon, default button,
// title and content, or a list of file filters and a starting directory. The
// caller supplies a Renderer that turns the descriptor into a real window on
// its platform and reports what the user did. This package checks that the
// answer is one the descriptor allows.
//
// The enum values match the Windows MB_* and ID* constants so a Windows
// renderer can pass Flags() straight to MessageBoxW and feed the return code
// to BoxReturnFromCode.
//
// # Example Usage
//
//	box := dialog.NewMessageBox("Delete files", "Remove 3 files permanently?").
//	    WithWindow(dialog.YesNo).
//	    WithIcon(dialog.IconWarning).
//	    WithDefaultButton(dialog.DefaultButtonTwo)
//
//	answer, err := box.Show(ctx, renderer)
//	if err == nil && answer == dialog.ReturnYes {
//	    // delete
//	}
package dialog
