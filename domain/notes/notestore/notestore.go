package notestore

import (
	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/utils/noteserialization"
	"github.com/kaspanet/notestub/infrastructure/db/database/ldb"
	"github.com/pkg/errors"
)

var stubBucket = []byte("stubs/")

// ErrNotFound denotes that the requested stub is not in the store
var ErrNotFound = ldb.ErrNotFound

// NoteStore persists verified note stubs keyed by their hash. Stored stubs
// are kept in their serialized word layout and verified again on every read.
type NoteStore struct {
	db      *ldb.LevelDB
	decoder model.StubDecoder
}

// Open opens, or creates, the store at path
func Open(path string, decoder model.StubDecoder) (*NoteStore, error) {
	db, err := ldb.NewLevelDB(path)
	if err != nil {
		return nil, err
	}
	return &NoteStore{db: db, decoder: decoder}, nil
}

// Close closes the underlying database
func (s *NoteStore) Close() error {
	return s.db.Close()
}

func stubKey(hash externalapi.Digest) []byte {
	key := make([]byte, 0, len(stubBucket)+externalapi.DigestSize)
	key = append(key, stubBucket...)
	return append(key, hash.Bytes()...)
}

// Put stores stub under its hash
func (s *NoteStore) Put(stub *externalapi.NoteStub) (externalapi.Digest, error) {
	hash := stub.Hash()
	err := s.db.Put(stubKey(hash), noteserialization.WordsToBytes(noteserialization.EncodeStub(stub)))
	if err != nil {
		return externalapi.Digest{}, err
	}
	log.Debugf("Stored stub %s", hash)
	return hash, nil
}

// Get loads and verifies the stub stored under hash
func (s *NoteStore) Get(hash externalapi.Digest) (*externalapi.NoteStub, error) {
	data, err := s.db.Get(stubKey(hash))
	if err != nil {
		return nil, err
	}
	words, err := noteserialization.BytesToWords(data)
	if err != nil {
		return nil, errors.Wrapf(err, "stored stub %s is corrupted", hash)
	}
	stub, err := s.decoder.DecodeStub(words)
	if err != nil {
		return nil, errors.Wrapf(err, "stored stub %s failed verification", hash)
	}
	if stub.Hash() != hash {
		return nil, errors.Errorf("stub stored under %s has hash %s", hash, stub.Hash())
	}
	return stub, nil
}

// Has returns whether a stub is stored under hash
func (s *NoteStore) Has(hash externalapi.Digest) (bool, error) {
	return s.db.Has(stubKey(hash))
}

// Delete removes the stub stored under hash, if any
func (s *NoteStore) Delete(hash externalapi.Digest) error {
	return s.db.Delete(stubKey(hash))
}

// Hashes returns the hashes of all stored stubs
func (s *NoteStore) Hashes() ([]externalapi.Digest, error) {
	keys, err := s.db.Keys(stubBucket)
	if err != nil {
		return nil, err
	}
	hashes := make([]externalapi.Digest, 0, len(keys))
	for _, key := range keys {
		words, err := noteserialization.BytesToWords(key[len(stubBucket):])
		if err != nil || len(words) != 1 {
			return nil, errors.Errorf("malformed stub key %x", key)
		}
		hashes = append(hashes, externalapi.DigestFromWord(words[0]))
	}
	return hashes, nil
}
