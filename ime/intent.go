package ime

// Intent describes an activity launch request.
type Intent struct {
	Action string
	Extras map[string]string
}

// StartSpellCheckGestureCommandIntent returns the intent that opens the spell
// check gesture settings. This keyboard variant has none, so ok is always false.
func StartSpellCheckGestureCommandIntent() (intent *Intent, ok bool) {
	return nil, false
}
