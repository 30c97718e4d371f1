package web

import "sotchelper/internal/helper"

// MainViewModel contains data for rendering the landing page.
type MainViewModel struct {
	Message  string
	Username string
}

// HelperViewModel contains data for rendering the helper form.
type HelperViewModel struct {
	Title        string
	Roll         string   // formatted total; empty before the first roll
	Ladder       string
	Faces        []string // glyphs of the last throw
	FatePoints   string
	Tracks       []TrackView
	Consequences []ConsequenceView
}

// TrackView is one row of stress boxes.
type TrackView struct {
	Key   string
	Label string
	Boxes []BoxView
}

// BoxView is one stress box. Value is the marker the browser last sent for
// it, echoed back untouched.
type BoxView struct {
	ID     string
	Number int
	Value  string
}

// Checked reports whether the box carries a marker.
func (b BoxView) Checked() bool { return b.Value != "" }

// ConsequenceView is one consequence slot and its current text.
type ConsequenceView struct {
	Key   string
	Label string
	Text  string
}

// RegisterViewModel contains data for rendering the registration form.
type RegisterViewModel struct {
	Username string
	ErrorMsg string
}

func makeHelperViewModel(sheet *helper.Sheet, st helper.State, roll string, faces []string) HelperViewModel {
	vm := HelperViewModel{
		Title:      sheet.Title,
		Roll:       roll,
		Faces:      faces,
		FatePoints: st.FatePoints,
	}
	for _, tr := range sheet.Tracks {
		tv := TrackView{Key: tr.Key, Label: tr.Label}
		for i, id := range tr.BoxIDs() {
			tv.Boxes = append(tv.Boxes, BoxView{ID: id, Number: i + 1, Value: st.Boxes[id]})
		}
		vm.Tracks = append(vm.Tracks, tv)
	}
	for _, c := range sheet.Consequences {
		vm.Consequences = append(vm.Consequences, ConsequenceView{
			Key:   c.Key,
			Label: c.Label,
			Text:  st.Consequences[c.Key],
		})
	}
	return vm
}
