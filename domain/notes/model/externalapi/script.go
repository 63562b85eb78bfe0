package externalapi

// NoteScript is a compiled note script handle. Hash is the root commitment of
// the compiled program, Procedures lists the fully qualified library procedures
// it executes, in call order.
type NoteScript struct {
	Hash       Digest
	Procedures []string
}

// Equal returns whether s equals to other
func (s *NoteScript) Equal(other *NoteScript) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Hash != other.Hash || len(s.Procedures) != len(other.Procedures) {
		return false
	}
	for i, procedure := range s.Procedures {
		if procedure != other.Procedures[i] {
			return false
		}
	}
	return true
}
