// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrBuildingOpenAPI is returned by NewHandler when the OpenAPI document of
// the routes cannot be generated.
var ErrBuildingOpenAPI = errors.New("error building OpenAPI document")
