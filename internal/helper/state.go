package helper

import "sotchelper/internal/dice"

// Form is the read side of submitted form values. url.Values satisfies it;
// missing keys read as "".
type Form interface {
	Get(key string) string
}

// Roller throws the dice for a submission.
type Roller func() (int, [dice.Dice]dice.Face)

// StateFromForm collects the sheet's fields from a submission. Every field is
// optional and copied as-is. Fields the sheet does not name (such as a
// zero-numbered box) are ignored.
func (s *Sheet) StateFromForm(form Form) State {
	st := State{
		Boxes:        make(map[string]string, len(s.BoxIDs())),
		Consequences: make(map[string]string, len(s.Consequences)),
		FatePoints:   form.Get(FatePointsField),
	}
	for _, id := range s.BoxIDs() {
		st.Boxes[id] = form.Get(id)
	}
	for _, c := range s.Consequences {
		st.Consequences[c.Key] = form.Get(c.Key)
	}
	return st
}

// Submit echoes the submitted state and rolls once.
func (s *Sheet) Submit(form Form, roll Roller) Result {
	if roll == nil {
		roll = dice.RollFourDetailed
	}
	total, faces := roll()
	glyphs := make([]string, len(faces))
	for i, f := range faces {
		glyphs[i] = f.Glyph()
	}
	return Result{
		State:  s.StateFromForm(form),
		Total:  total,
		Roll:   dice.FormatRoll(total),
		Ladder: dice.Ladder(total),
		Faces:  glyphs,
	}
}

// Checked reports whether a box was submitted with any marker.
func (st State) Checked(id string) bool {
	return st.Boxes[id] != ""
}
