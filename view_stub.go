//go:build !view

package main

import "errors"

var errViewUnavailable = errors.New("viewer support is not enabled; rebuild with -tags view")

func showSlice(_ string, _ [][]float32) error { return errViewUnavailable }
