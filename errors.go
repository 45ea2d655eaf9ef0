package qflip

import "errors"

/*
ErrInvalidArgument is wrapped by every error that reports a caller
contract violation, such as a negative shot count or a sweep without
steps. Test for it with errors.Is.
*/
var ErrInvalidArgument = errors.New("invalid argument")
