package externalapi

// NoteMetadata is the sender/tag/asset-count header of a note.
type NoteMetadata struct {
	Sender    AccountID
	Tag       Felt
	NumAssets Felt
}

// Word packs the metadata as [sender, tag, numAssets, 0]
func (m *NoteMetadata) Word() Word {
	return Word{m.Sender.Felt(), m.Tag, m.NumAssets, ZeroFelt}
}

// Equal returns whether m equals to other
func (m *NoteMetadata) Equal(other *NoteMetadata) bool {
	if m == nil || other == nil {
		return m == other
	}
	return *m == *other
}
