// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package database

import "errors"

// ErrNotFound indicates no document matched the lookup. Handlers map it to
// HTTP 404.
var ErrNotFound = errors.New("document not found")
