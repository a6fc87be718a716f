package guard

import "github.com/google/uuid"

// Empty fails with *ArgumentError if input is uuid.Nil.
func Empty(g Guard, input uuid.UUID, param string, opts ...Option) (uuid.UUID, error) {
	if err := Use(g); err != nil {
		return uuid.Nil, err
	}
	if input == uuid.Nil {
		return uuid.Nil, NewArgumentError(param, Message(MsgEmpty, opts...))
	}
	return input, nil
}

// NullOrEmptyUUID fails with *NullError if input is nil, then behaves like Empty.
func NullOrEmptyUUID(g Guard, input *uuid.UUID, param string, opts ...Option) (uuid.UUID, error) {
	if _, err := Null(g, input, param); err != nil {
		return uuid.Nil, err
	}
	return Empty(g, *input, param, opts...)
}
