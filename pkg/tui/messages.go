package tui

import "github.com/K4-001/NutriPinoy/pkg/catalog"

// catalogLoadedMsg ends the loading state. Exactly one of collection
// and err is set; a nil err moves the model to ready, anything else to
// failed. There is no retry path from failed.
type catalogLoadedMsg struct {
	collection *catalog.Collection
	err        error
}

// dishSelectedMsg requests the detail pane for one dish. It is emitted
// by the keyboard handler and by mouse clicks on a card; the key is
// looked up against the full collection, not the filtered view, so a
// selection made just before a refilter still resolves.
type dishSelectedMsg struct {
	key string
}
