// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlerProvided = errors.New("no http handler provided")
	errListening         = errors.New("error binding listen address")
)
