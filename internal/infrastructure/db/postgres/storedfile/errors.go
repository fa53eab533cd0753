package storedfile

import "errors"

var ErrFilenameAlreadyExists = errors.New("filename already exists")
