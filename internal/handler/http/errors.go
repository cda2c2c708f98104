// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidToken is written as the body of every 401 response sent by the
// auth middleware.
var ErrInvalidToken = errors.New("get out!")
