package io

import (
	"errors"

	"github.com/ezrec/lce/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize  = errors.New(f("image larger than its block"))
	ErrImageEmpty = errors.New(f("image empty"))
)
