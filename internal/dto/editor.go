package dto

// EditorMode distinguishes the two states the activity form can be in.
type EditorMode string

const (
	// EditorModeCreate means the form describes a brand new activity.
	EditorModeCreate EditorMode = "create"
	// EditorModeEdit means the form edits the activity named by ActivityID.
	EditorModeEdit EditorMode = "edit"
)

// EditorState is the explicit form state the front end owns and threads
// through activity saves. The core never holds it between calls.
type EditorState struct {
	Mode       EditorMode `json:"mode"`
	ActivityID string     `json:"activity_id,omitempty"`
}

// NewEditor returns the state for creating a new activity.
func NewEditor() EditorState {
	return EditorState{Mode: EditorModeCreate}
}

// EditEditor returns the state for editing an existing activity.
func EditEditor(activityID string) EditorState {
	return EditorState{Mode: EditorModeEdit, ActivityID: activityID}
}
