package font

import "errors"
import "strconv"

// A collection of loaded faces accessible by path.
//
// Loading the same path twice returns the same face, so glyphs cached
// for it stay valid for everyone sharing the face.
type Library struct {
	faces map[string]*SFNTFace
}

// Creates a new, empty [Library].
func NewLibrary() *Library {
	return &Library {
		faces: make(map[string]*SFNTFace),
	}
}

// Returns the current number of faces in the library.
func (self *Library) Size() int { return len(self.faces) }

// Loads the face at the given path and index, or returns the
// face that was already loaded for them.
func (self *Library) Load(path string, index int) (*SFNTFace, error) {
	key := libraryKey(path, index)
	face, found := self.faces[key]
	if found { return face, nil }

	face, err := Load(path, index)
	if err != nil { return nil, err }
	self.faces[key] = face
	return face, nil
}

// The equivalent of [Library.Load]() for raw font bytes. The name
// is used as the path component of the library key.
func (self *Library) LoadFromBytes(name string, fontBytes []byte, index int) (*SFNTFace, error) {
	key := libraryKey(name, index)
	face, found := self.faces[key]
	if found { return face, nil }

	face, err := LoadFromBytes(fontBytes, index)
	if err != nil { return nil, err }
	self.faces[key] = face
	return face, nil
}

// Returns false if the face can't be removed due to not being found.
func (self *Library) Remove(key string) bool {
	_, found := self.faces[key]
	if !found { return false }
	delete(self.faces, key)
	return true
}

// Special error that can be used with [Library.EachFace]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachFace() early break")

// Calls the given function for each face in the library, passing their
// keys and faces as arguments, in pseudo-random order.
func (self *Library) EachFace(faceFunc func(string, *SFNTFace) error) error {
	for key, face := range self.faces {
		err := faceFunc(key, face)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

func libraryKey(path string, index int) string {
	if index == 0 { return path }
	return path + "#" + strconv.Itoa(index)
}
