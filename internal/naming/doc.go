// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package naming turns client-supplied filenames into safe on-disk names.
//
// [Sanitize] reduces a raw name to a single path segment made of
// [A-Za-z0-9._-]. [Disambiguate] inserts a random UUID between the stem and
// the extension so that two uploads of the same file never share a stored
// name, without checking the disk first.
package naming
